package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/record"
)

var ErrMalformedDate = errors.New("malformed record date")

// Summary is the per-category record count inside a trailing date window.
type Summary struct {
	Username   string                  `json:"username"`
	WindowDays int                     `json:"window_days"`
	From       string                  `json:"from"` // YYYY-MM-DD, inclusive
	To         string                  `json:"to"`   // YYYY-MM-DD, inclusive
	Counts     map[record.Category]int `json:"counts"`
}

type Servicer interface {
	Summarize(ctx context.Context, username string, windowDays int) (Summary, error)
}

type Service struct {
	records record.Repository
	now     func() time.Time
	log     *slog.Logger
}

func NewService(records record.Repository, log *slog.Logger) *Service {
	return &Service{
		records: records,
		now:     time.Now,
		log:     log.With("component", "summary_service"),
	}
}

// Summarize counts the user's records per category whose date falls within
// [today-windowDays, today]. Every category is windowed the same way,
// medications included; one mobile prototype counted medications all-time,
// which is treated here as a bug. A record with an unparsable date aborts
// the whole summary. Records written without a date (some legacy
// medication and activity entries) simply fall outside every window.
func (s *Service) Summarize(ctx context.Context, username string, windowDays int) (Summary, error) {
	if windowDays < 0 {
		return Summary{}, fmt.Errorf("window days must not be negative: %d", windowDays)
	}

	today := s.now()
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -windowDays)

	counts := make(map[record.Category]int, len(record.Categories()))
	for _, category := range record.Categories() {
		records, err := s.records.List(ctx, username, category)
		if err != nil {
			return Summary{}, fmt.Errorf("list %s records: %w", category, err)
		}

		n := 0
		for _, rec := range records {
			if rec.Date == "" {
				continue
			}
			day, err := time.ParseInLocation(time.DateOnly, rec.Date, time.UTC)
			if err != nil {
				return Summary{}, fmt.Errorf("%w: %s record %s has date %q", ErrMalformedDate, category, rec.ID, rec.Date)
			}
			if !day.Before(start) && !day.After(end) {
				n++
			}
		}
		counts[category] = n
	}

	return Summary{
		Username:   username,
		WindowDays: windowDays,
		From:       start.Format(time.DateOnly),
		To:         end.Format(time.DateOnly),
		Counts:     counts,
	}, nil
}
