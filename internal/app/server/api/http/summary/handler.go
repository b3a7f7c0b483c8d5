package summary

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware/auth"
	"github.com/JackchrisO/Synapse/internal/domain/summary"
)

type Handler struct {
	service    summary.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service summary.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.summarizeOp(), h.summarize)
}

func (h *Handler) summarize(ctx context.Context, input *summarizeInput) (*summarizeOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	username := sess.Username
	if input.User != "" && input.User != sess.Username {
		// Only the bootstrap session may look at other accounts.
		if !sess.Bootstrap {
			return nil, huma.Error403Forbidden("Forbidden")
		}
		username = input.User
	}

	sum, err := h.service.Summarize(ctx, username, input.Days)
	if err != nil {
		return &summarizeOutput{
			Body: Response{Status: "Error", Error: err.Error()},
		}, nil
	}

	counts := make(map[string]int, len(sum.Counts))
	for category, n := range sum.Counts {
		counts[category.String()] = n
	}

	return &summarizeOutput{
		Body: Response{
			Username:   sum.Username,
			WindowDays: sum.WindowDays,
			From:       sum.From,
			To:         sum.To,
			Counts:     counts,
			Status:     "Ok",
		},
	}, nil
}
