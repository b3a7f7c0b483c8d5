package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	for _, c := range Categories() {
		assert.NoError(t, c.Validate(), c)
	}
	assert.Error(t, Category("mood").Validate())
	assert.Error(t, Category("").Validate())
}

func TestCategory_StorageKey(t *testing.T) {
	tests := []struct {
		category Category
		key      string
	}{
		{CategoryCrisis, "crises"},
		{CategoryDiary, "diario"},
		{CategoryMedication, "medicamentos"},
		{CategoryAppointment, "consultas"},
		{CategoryActivity, "atividades"},
		{CategoryMeal, "alimentacao"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.category.StorageKey())
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("diary")
	require.NoError(t, err)
	assert.Equal(t, CategoryDiary, c)

	// Legacy storage keys parse too.
	c, err = ParseCategory("diario")
	require.NoError(t, err)
	assert.Equal(t, CategoryDiary, c)

	_, err = ParseCategory("mood")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalogs(t *testing.T) {
	assert.True(t, ValidCrisis("Crise Focal", "Sensorial"))
	assert.False(t, ValidCrisis("Crise Focal", "Ausência"))
	assert.False(t, ValidCrisis("Crise Inventada", "Sensorial"))

	assert.True(t, ValidMeal("Sopas", "Canja"))
	assert.False(t, ValidMeal("Sopas", "Banana"))

	assert.True(t, ValidMood("Bom"))
	assert.True(t, ValidMood("Neutro"))
	assert.True(t, ValidMood("Ruim"))
	assert.False(t, ValidMood("bom"))
	assert.False(t, ValidMood(""))
}
