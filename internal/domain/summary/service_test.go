package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/record"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Append(ctx context.Context, rec *record.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordRepository) List(ctx context.Context, username string, category record.Category) ([]record.Record, error) {
	args := m.Called(ctx, username, category)
	return args.Get(0).([]record.Record), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo record.Repository) *Service {
	s := NewService(repo, slog.Default())
	s.now = fixedNow
	return s
}

func emptyExcept(repo *MockRecordRepository, username string, category record.Category, records []record.Record) {
	for _, c := range record.Categories() {
		if c == category {
			repo.On("List", mock.Anything, username, c).Return(records, nil)
		} else {
			repo.On("List", mock.Anything, username, c).Return([]record.Record{}, nil)
		}
	}
}

func TestService_Summarize_Window(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	// One diary entry today, one 10 days ago: only today's is counted in a
	// 7-day window.
	emptyExcept(repo, "maria", record.CategoryDiary, []record.Record{
		{ID: "1", Date: "2026-08-29"},
		{ID: "2", Date: "2026-08-19"},
	})

	sum, err := service.Summarize(context.Background(), "maria", 7)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Counts[record.CategoryDiary])
	assert.Equal(t, "2026-08-22", sum.From)
	assert.Equal(t, "2026-08-29", sum.To)
	assert.Equal(t, 7, sum.WindowDays)
}

func TestService_Summarize_WindowBoundsInclusive(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	emptyExcept(repo, "maria", record.CategoryCrisis, []record.Record{
		{ID: "start", Date: "2026-08-22"},
		{ID: "end", Date: "2026-08-29"},
		{ID: "before", Date: "2026-08-21"},
	})

	sum, err := service.Summarize(context.Background(), "maria", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Counts[record.CategoryCrisis])
}

func TestService_Summarize_MedicationsAreWindowed(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	emptyExcept(repo, "maria", record.CategoryMedication, []record.Record{
		{ID: "old", Date: "2025-01-01"},
		{ID: "recent", Date: "2026-08-28"},
	})

	sum, err := service.Summarize(context.Background(), "maria", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Counts[record.CategoryMedication])
}

func TestService_Summarize_MalformedDateAborts(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	emptyExcept(repo, "maria", record.CategoryDiary, []record.Record{
		{ID: "ok", Date: "2026-08-29"},
		{ID: "bad", Date: "29/08/2026"},
	})

	_, err := service.Summarize(context.Background(), "maria", 7)
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestService_Summarize_UndatedRecordsIgnored(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	emptyExcept(repo, "maria", record.CategoryMedication, []record.Record{
		{ID: "legacy"},
		{ID: "dated", Date: "2026-08-29"},
	})

	sum, err := service.Summarize(context.Background(), "maria", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Counts[record.CategoryMedication])
}

func TestService_Summarize_AllCategoriesPresent(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	for _, c := range record.Categories() {
		repo.On("List", mock.Anything, "maria", c).Return([]record.Record{}, nil)
	}

	sum, err := service.Summarize(context.Background(), "maria", 7)
	require.NoError(t, err)

	assert.Len(t, sum.Counts, len(record.Categories()))
	for _, c := range record.Categories() {
		assert.Equal(t, 0, sum.Counts[c])
	}
}

func TestService_Summarize_NegativeWindow(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	_, err := service.Summarize(context.Background(), "maria", -1)
	assert.Error(t, err)
}

func TestService_Summarize_ZeroWindowIsToday(t *testing.T) {
	repo := new(MockRecordRepository)
	service := newTestService(repo)

	emptyExcept(repo, "maria", record.CategoryDiary, []record.Record{
		{ID: "today", Date: "2026-08-29"},
		{ID: "yesterday", Date: "2026-08-28"},
	})

	sum, err := service.Summarize(context.Background(), "maria", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Counts[record.CategoryDiary])
}
