package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        "/api/records/{category}",
		Summary:     "Listar registros de uma categoria",
		Tags:        []string{"records"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createCrisisOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-crisis",
		Method:      http.MethodPost,
		Path:        "/api/records/crisis",
		Summary:     "Registrar crise",
		Description: "Registra uma crise com tipo e subtipo do catálogo.",
		Tags:        []string{"records", "crisis"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createDiaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-diary",
		Method:      http.MethodPost,
		Path:        "/api/records/diary",
		Summary:     "Registrar entrada de diário",
		Description: "Registra humor e texto livre. O texto passa pela triagem de conteúdo sensível.",
		Tags:        []string{"records", "diary"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createMedicationOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-medication",
		Method:      http.MethodPost,
		Path:        "/api/records/medication",
		Summary:     "Registrar medicamento",
		Tags:        []string{"records", "medication"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createAppointmentOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-appointment",
		Method:      http.MethodPost,
		Path:        "/api/records/appointment",
		Summary:     "Registrar consulta",
		Tags:        []string{"records", "appointment"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createActivityOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-activity",
		Method:      http.MethodPost,
		Path:        "/api/records/activity",
		Summary:     "Registrar atividade física",
		Tags:        []string{"records", "activity"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createMealOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create-meal",
		Method:      http.MethodPost,
		Path:        "/api/records/meal",
		Summary:     "Registrar alimentação",
		Tags:        []string{"records", "meal"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
