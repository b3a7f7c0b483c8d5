package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/user"
)

type Servicer interface {
	Append(ctx context.Context, username string, category Category, fields map[string]string) (string, error)
	List(ctx context.Context, username string, category Category) ([]Record, error)
}

type Service struct {
	repo  Repository
	users user.Repository
	now   func() time.Time
	log   *slog.Logger
}

func NewService(repo Repository, users user.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		now:   time.Now,
		log:   log.With("component", "record_service"),
	}
}

// Append validates the fields for the category, stamps the server date and
// time, and appends the record. The referenced account must exist; the
// mobile prototypes skipped that check and could write orphaned records.
func (s *Service) Append(ctx context.Context, username string, category Category, fields map[string]string) (string, error) {
	if err := category.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	}

	if err := validateFields(category, fields); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrUnknownUser
		}
		return "", fmt.Errorf("check account: %w", err)
	}

	now := s.now()
	rec := &Record{
		ID:       uuid.NewString(),
		Username: username,
		Category: category,
		Date:     now.Format(time.DateOnly),
		Time:     now.Format(time.TimeOnly),
		Fields:   cloneFields(fields),
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		s.log.Error("failed to append record", "username", username, "category", category, "error", err)
		return "", fmt.Errorf("append record: %w", err)
	}

	s.log.Info("record appended", "username", username, "category", category, "record_id", rec.ID)
	return rec.ID, nil
}

func (s *Service) List(ctx context.Context, username string, category Category) ([]Record, error) {
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	}

	records, err := s.repo.List(ctx, username, category)
	if err != nil {
		s.log.Error("failed to list records", "username", username, "category", category, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func validateFields(category Category, fields map[string]string) error {
	switch category {
	case CategoryCrisis:
		if !ValidCrisis(fields[FieldCrisisType], fields[FieldCrisisSubtype]) {
			return fmt.Errorf("crisis type %q / subtype %q not in catalog", fields[FieldCrisisType], fields[FieldCrisisSubtype])
		}
	case CategoryDiary:
		if !ValidMood(fields[FieldMood]) {
			return fmt.Errorf("mood must be one of %v", Moods)
		}
	case CategoryMedication:
		if fields[FieldName] == "" {
			return fmt.Errorf("medication name is required")
		}
	case CategoryAppointment:
		if fields[FieldName] == "" {
			return fmt.Errorf("doctor name is required")
		}
	case CategoryActivity:
		if fields[FieldName] == "" {
			return fmt.Errorf("activity name is required")
		}
	case CategoryMeal:
		if !ValidMeal(fields[FieldFoodGroup], fields[FieldFoodItem]) {
			return fmt.Errorf("food group %q / item %q not in catalog", fields[FieldFoodGroup], fields[FieldFoodItem])
		}
	}
	return nil
}

func cloneFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
