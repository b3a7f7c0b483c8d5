package record

// Record is one timestamped entry in a user's tracking category. Records are
// append-only: once written they are never edited or deleted.
type Record struct {
	ID       string            `json:"id"`
	Username string            `json:"-"`
	Category Category          `json:"-"`
	Date     string            `json:"date"`           // YYYY-MM-DD, server-assigned
	Time     string            `json:"time,omitempty"` // HH:MM:SS
	Fields   map[string]string `json:"fields"`
}

// Field keys, matching the legacy file format per category.
const (
	FieldCrisisType    = "crise"
	FieldCrisisSubtype = "subcrise"

	FieldMood = "humor"
	FieldText = "texto"

	FieldName      = "nome"
	FieldDoseMg    = "mg"
	FieldFrequency = "freq"
	FieldPurchase  = "compra"

	// The legacy consultas entries kept the appointment schedule under
	// "data"/"hora", the same keys the record's own creation date uses in
	// every other category. New appointments store the schedule under
	// distinct keys; legacy entries load with the schedule as the record
	// date, which is how the old summary counted them anyway.
	FieldSpecialty       = "esp"
	FieldAppointmentDate = "data_consulta"
	FieldAppointmentTime = "hora_consulta"

	FieldDuration  = "tempo"
	FieldIntensity = "intensidade"

	FieldFoodGroup = "tipo"
	FieldFoodItem  = "sub"
)
