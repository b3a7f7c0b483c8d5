package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware/auth"
	"github.com/JackchrisO/Synapse/internal/domain/alert"
	"github.com/JackchrisO/Synapse/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Typed create handlers, one per category.
	huma.Register(api, h.createCrisisOp(), h.createCrisis)
	huma.Register(api, h.createDiaryOp(), h.createDiary)
	huma.Register(api, h.createMedicationOp(), h.createMedication)
	huma.Register(api, h.createAppointmentOp(), h.createAppointment)
	huma.Register(api, h.createActivityOp(), h.createActivity)
	huma.Register(api, h.createMealOp(), h.createMeal)

	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	category, err := record.ParseCategory(input.Category)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	username := sess.Username
	if input.User != "" && input.User != sess.Username {
		// Only the bootstrap session may read other accounts.
		if !sess.Bootstrap {
			return nil, huma.Error403Forbidden("Forbidden")
		}
		username = input.User
	}

	records, err := h.service.List(ctx, username, category)
	if err != nil {
		return &listOutput{
			Body: ListResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, viewFromRecord(rec))
	}

	return &listOutput{
		Body: ListResponse{Records: views, Status: "Ok"},
	}, nil
}

func (h *Handler) createCrisis(ctx context.Context, input *createCrisisInput) (*output, error) {
	return h.append(ctx, record.CategoryCrisis, input.Body.toFields())
}

func (h *Handler) createDiary(ctx context.Context, input *createDiaryInput) (*createDiaryOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := h.service.Append(ctx, sess.Username, record.CategoryDiary, input.Body.toFields())
	if err != nil {
		return h.diaryError(err)
	}

	resp := DiaryResponse{ID: id, Status: "Ok"}
	if alert.Scan(input.Body.Text) {
		resp.Flagged = true
		resp.Message = alert.SupportMessage
		h.log.Warn("diary entry flagged by content scan", "username", sess.Username)
	}

	return &createDiaryOutput{Body: resp}, nil
}

func (h *Handler) createMedication(ctx context.Context, input *createMedicationInput) (*output, error) {
	return h.append(ctx, record.CategoryMedication, input.Body.toFields())
}

func (h *Handler) createAppointment(ctx context.Context, input *createAppointmentInput) (*output, error) {
	return h.append(ctx, record.CategoryAppointment, input.Body.toFields())
}

func (h *Handler) createActivity(ctx context.Context, input *createActivityInput) (*output, error) {
	return h.append(ctx, record.CategoryActivity, input.Body.toFields())
}

func (h *Handler) createMeal(ctx context.Context, input *createMealInput) (*output, error) {
	return h.append(ctx, record.CategoryMeal, input.Body.toFields())
}

func (h *Handler) append(ctx context.Context, category record.Category, fields map[string]string) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := h.service.Append(ctx, sess.Username, category, fields)
	if errors.Is(err, record.ErrInvalidInput) {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if err != nil {
		return &output{
			Body: response{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &output{
		Body: response{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) diaryError(err error) (*createDiaryOutput, error) {
	if errors.Is(err, record.ErrInvalidInput) {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	return &createDiaryOutput{
		Body: DiaryResponse{Status: "Error", Error: err.Error()},
	}, nil
}
