package record

import "github.com/JackchrisO/Synapse/internal/domain/record"

type listInput struct {
	Category string `path:"category" doc:"Record category" enum:"crisis,diary,medication,appointment,activity,meal"`
	User     string `query:"user" doc:"List another account's records; requires the bootstrap session"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Records []RecordView `json:"records"`
	Status  string       `json:"status"`
	Error   string       `json:"error,omitempty"`
}

// RecordView is the wire shape of one stored entry.
type RecordView struct {
	ID     string            `json:"id"`
	Date   string            `json:"date" doc:"Creation date, YYYY-MM-DD"`
	Time   string            `json:"time,omitempty" doc:"Creation time, HH:MM:SS"`
	Fields map[string]string `json:"fields"`
}

func viewFromRecord(rec record.Record) RecordView {
	return RecordView{
		ID:     rec.ID,
		Date:   rec.Date,
		Time:   rec.Time,
		Fields: rec.Fields,
	}
}

type output struct {
	Body response
}

type response struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ==================== Crisis ====================

type createCrisisInput struct {
	Body createCrisisRequest
}

type createCrisisRequest struct {
	Type      string `json:"type" doc:"Crisis type from the catalog" minLength:"1"`
	Subtype   string `json:"subtype" doc:"Crisis subtype from the catalog" minLength:"1"`
	Duration  string `json:"duration,omitempty" doc:"Approximate duration"`
	Intensity string `json:"intensity,omitempty" doc:"Perceived intensity"`
}

func (r createCrisisRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldCrisisType:    r.Type,
		record.FieldCrisisSubtype: r.Subtype,
		record.FieldDuration:      r.Duration,
		record.FieldIntensity:     r.Intensity,
	})
}

// ==================== Diary ====================

type createDiaryInput struct {
	Body createDiaryRequest
}

type createDiaryRequest struct {
	Mood string `json:"mood" doc:"Mood of the day" enum:"Bom,Neutro,Ruim"`
	Text string `json:"text,omitempty" doc:"Free-form diary entry"`
}

func (r createDiaryRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldMood: r.Mood,
		record.FieldText: r.Text,
	})
}

type createDiaryOutput struct {
	Body DiaryResponse
}

// DiaryResponse extends the create response with the content scan
// verdict, so the client can show the support advisory immediately.
type DiaryResponse struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Flagged bool   `json:"flagged"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ==================== Medication ====================

type createMedicationInput struct {
	Body createMedicationRequest
}

type createMedicationRequest struct {
	Name      string `json:"name" doc:"Medication name" minLength:"1"`
	DoseMg    string `json:"dose_mg,omitempty" doc:"Dose in milligrams"`
	Frequency string `json:"frequency,omitempty" doc:"Doses per day"`
	Purchase  string `json:"purchase_date,omitempty" doc:"Next purchase date"`
}

func (r createMedicationRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldName:      r.Name,
		record.FieldDoseMg:    r.DoseMg,
		record.FieldFrequency: r.Frequency,
		record.FieldPurchase:  r.Purchase,
	})
}

// ==================== Appointment ====================

type createAppointmentInput struct {
	Body createAppointmentRequest
}

type createAppointmentRequest struct {
	Name      string `json:"name" doc:"Doctor name" minLength:"1"`
	Specialty string `json:"specialty,omitempty" doc:"Medical specialty"`
	Date      string `json:"date,omitempty" doc:"Scheduled date, YYYY-MM-DD"`
	Time      string `json:"time,omitempty" doc:"Scheduled time, HH:MM"`
}

func (r createAppointmentRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldName:            r.Name,
		record.FieldSpecialty:       r.Specialty,
		record.FieldAppointmentDate: r.Date,
		record.FieldAppointmentTime: r.Time,
	})
}

// ==================== Activity ====================

type createActivityInput struct {
	Body createActivityRequest
}

type createActivityRequest struct {
	Name      string `json:"name" doc:"Activity name" minLength:"1"`
	Duration  string `json:"duration,omitempty" doc:"Duration in minutes"`
	Intensity string `json:"intensity,omitempty" doc:"Perceived intensity"`
}

func (r createActivityRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldName:      r.Name,
		record.FieldDuration:  r.Duration,
		record.FieldIntensity: r.Intensity,
	})
}

// ==================== Meal ====================

type createMealInput struct {
	Body createMealRequest
}

type createMealRequest struct {
	Group string `json:"group" doc:"Food group from the catalog" minLength:"1"`
	Item  string `json:"item" doc:"Food item from the catalog" minLength:"1"`
}

func (r createMealRequest) toFields() map[string]string {
	return dropEmpty(map[string]string{
		record.FieldFoodGroup: r.Group,
		record.FieldFoodItem:  r.Item,
	})
}

func dropEmpty(fields map[string]string) map[string]string {
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	return fields
}
