package summary

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware/auth"
	"github.com/JackchrisO/Synapse/internal/domain/record"
	"github.com/JackchrisO/Synapse/internal/domain/session"
	"github.com/JackchrisO/Synapse/internal/domain/summary"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Summarize(ctx context.Context, username string, windowDays int) (summary.Summary, error) {
	args := m.Called(ctx, username, windowDays)
	return args.Get(0).(summary.Summary), args.Error(1)
}

func newTestHandler(service summary.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{})
}

func sessionContext(sess session.Session) context.Context {
	return auth.WithSession(context.Background(), sess)
}

func TestHandler_summarize(t *testing.T) {
	svc := new(MockService)
	svc.On("Summarize", mock.Anything, "maria", 7).Return(summary.Summary{
		Username:   "maria",
		WindowDays: 7,
		From:       "2026-08-22",
		To:         "2026-08-29",
		Counts: map[record.Category]int{
			record.CategoryCrisis: 2,
			record.CategoryDiary:  5,
		},
	}, nil)

	h := newTestHandler(svc)
	out, err := h.summarize(sessionContext(session.Session{Username: "maria"}), &summarizeInput{Days: 7})

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	assert.Equal(t, "maria", out.Body.Username)
	assert.Equal(t, 2, out.Body.Counts["crisis"])
	assert.Equal(t, 5, out.Body.Counts["diary"])
	svc.AssertExpectations(t)
}

func TestHandler_summarize_OtherUserRequiresBootstrap(t *testing.T) {
	h := newTestHandler(new(MockService))

	_, err := h.summarize(sessionContext(session.Session{Username: "maria"}), &summarizeInput{
		Days: 7,
		User: "joão",
	})

	assert.Error(t, err)
}

func TestHandler_summarize_BootstrapMaySummarizeAnyUser(t *testing.T) {
	svc := new(MockService)
	svc.On("Summarize", mock.Anything, "joão", 30).Return(summary.Summary{
		Username:   "joão",
		WindowDays: 30,
		Counts:     map[record.Category]int{},
	}, nil)

	h := newTestHandler(svc)
	out, err := h.summarize(sessionContext(session.Session{Username: "admin", Bootstrap: true}), &summarizeInput{
		Days: 30,
		User: "joão",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	assert.Equal(t, "joão", out.Body.Username)
	svc.AssertExpectations(t)
}

func TestHandler_summarize_Unauthenticated(t *testing.T) {
	h := newTestHandler(new(MockService))

	_, err := h.summarize(context.Background(), &summarizeInput{Days: 7})

	assert.Error(t, err)
}
