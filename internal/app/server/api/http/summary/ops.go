package summary

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) summarizeOp() huma.Operation {
	return huma.Operation{
		OperationID: "summary",
		Method:      http.MethodGet,
		Path:        "/api/summary",
		Summary:     "Resumo de registros por categoria",
		Description: "Conta os registros de cada categoria dentro da janela de dias informada.",
		Tags:        []string{"summary"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
