package record

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Category is one of the fixed tracking domains.
type Category string

const (
	CategoryCrisis      Category = "crisis"
	CategoryDiary       Category = "diary"
	CategoryMedication  Category = "medication"
	CategoryAppointment Category = "appointment"
	CategoryActivity    Category = "activity"
	CategoryMeal        Category = "meal"
)

func Categories() []Category {
	return []Category{
		CategoryCrisis,
		CategoryDiary,
		CategoryMedication,
		CategoryAppointment,
		CategoryActivity,
		CategoryMeal,
	}
}

func (Category) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(CategoryCrisis),
			string(CategoryDiary),
			string(CategoryMedication),
			string(CategoryAppointment),
			string(CategoryActivity),
			string(CategoryMeal),
		},
		Description: "Tracking category",
		Examples:    []any{CategoryDiary},
	}
}

func (c Category) Validate() error {
	switch c {
	case CategoryCrisis, CategoryDiary, CategoryMedication,
		CategoryAppointment, CategoryActivity, CategoryMeal:
		return nil
	}
	return fmt.Errorf("unknown category: %s", c)
}

func (c Category) String() string {
	return string(c)
}

// StorageKey is the key the legacy registros.json file used for this
// category. Persistence layers use it so old data files keep loading.
func (c Category) StorageKey() string {
	switch c {
	case CategoryCrisis:
		return "crises"
	case CategoryDiary:
		return "diario"
	case CategoryMedication:
		return "medicamentos"
	case CategoryAppointment:
		return "consultas"
	case CategoryActivity:
		return "atividades"
	case CategoryMeal:
		return "alimentacao"
	default:
		return string(c)
	}
}

// ParseCategory accepts both the API names and the legacy storage keys.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) || s == c.StorageKey() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCategory, s)
}
