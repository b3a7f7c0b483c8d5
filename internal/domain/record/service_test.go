package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, rec *Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, username string, category Category) ([]Record, error) {
	args := m.Called(ctx, username, category)
	return args.Get(0).([]Record), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, account *user.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Account), args.Error(1)
}

func newTestService(repo Repository, users user.Repository) *Service {
	s := NewService(repo, users, slog.Default())
	s.now = func() time.Time {
		return time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	}
	return s
}

func existingUser(users *MockUserRepository, username string) {
	users.On("FindByUsername", mock.Anything, username).
		Return(&user.Account{Username: username}, nil)
}

func TestService_Append_Diary(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	existingUser(users, "maria")
	repo.On("Append", mock.Anything, mock.MatchedBy(func(r *Record) bool {
		return r.ID != "" &&
			r.Username == "maria" &&
			r.Category == CategoryDiary &&
			r.Date == "2026-08-29" &&
			r.Time == "14:30:05" &&
			r.Fields[FieldMood] == "Bom"
	})).Return(nil)

	id, err := service.Append(context.Background(), "maria", CategoryDiary, map[string]string{
		FieldMood: "Bom",
		FieldText: "hoje foi um bom dia",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	repo.AssertExpectations(t)
}

func TestService_Append_UnknownUser(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, user.ErrNotFound)

	_, err := service.Append(context.Background(), "ghost", CategoryDiary, map[string]string{
		FieldMood: "Bom",
	})
	assert.ErrorIs(t, err, ErrUnknownUser)
	repo.AssertNotCalled(t, "Append")
}

func TestService_Append_FieldValidation(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		fields   map[string]string
		wantErr  bool
	}{
		{
			name:     "valid crisis from catalog",
			category: CategoryCrisis,
			fields:   map[string]string{FieldCrisisType: "Crise Generalizada", FieldCrisisSubtype: "Ausência"},
		},
		{
			name:     "crisis subtype from wrong type",
			category: CategoryCrisis,
			fields:   map[string]string{FieldCrisisType: "Crise Generalizada", FieldCrisisSubtype: "Sensorial"},
			wantErr:  true,
		},
		{
			name:     "diary mood not in set",
			category: CategoryDiary,
			fields:   map[string]string{FieldMood: "Ótimo"},
			wantErr:  true,
		},
		{
			name:     "diary with empty text is fine",
			category: CategoryDiary,
			fields:   map[string]string{FieldMood: "Neutro"},
		},
		{
			name:     "medication needs a name",
			category: CategoryMedication,
			fields:   map[string]string{FieldDoseMg: "500"},
			wantErr:  true,
		},
		{
			name:     "medication with name",
			category: CategoryMedication,
			fields:   map[string]string{FieldName: "Carbamazepina", FieldDoseMg: "200", FieldFrequency: "2"},
		},
		{
			name:     "valid meal from catalog",
			category: CategoryMeal,
			fields:   map[string]string{FieldFoodGroup: "Frutas", FieldFoodItem: "Banana"},
		},
		{
			name:     "meal item from wrong group",
			category: CategoryMeal,
			fields:   map[string]string{FieldFoodGroup: "Frutas", FieldFoodItem: "Pizza"},
			wantErr:  true,
		},
		{
			name:     "appointment needs doctor name",
			category: CategoryAppointment,
			fields:   map[string]string{FieldSpecialty: "Neurologia"},
			wantErr:  true,
		},
		{
			name:     "activity with name",
			category: CategoryActivity,
			fields:   map[string]string{FieldName: "Caminhada", FieldDuration: "30", FieldIntensity: "Leve"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			users := new(MockUserRepository)
			service := newTestService(repo, users)

			existingUser(users, "maria")
			repo.On("Append", mock.Anything, mock.Anything).Return(nil)

			_, err := service.Append(context.Background(), "maria", tt.category, tt.fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				repo.AssertNotCalled(t, "Append")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Append_UnknownCategory(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	_, err := service.Append(context.Background(), "maria", Category("mood"), nil)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	users.AssertNotCalled(t, "FindByUsername")
}

func TestService_Append_CopiesFields(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	existingUser(users, "maria")

	var stored *Record
	repo.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*Record)
	}).Return(nil)

	fields := map[string]string{FieldMood: "Bom"}
	_, err := service.Append(context.Background(), "maria", CategoryDiary, fields)
	require.NoError(t, err)

	fields[FieldMood] = "Ruim"
	assert.Equal(t, "Bom", stored.Fields[FieldMood])
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	expected := []Record{
		{ID: "1", Date: "2026-08-27", Fields: map[string]string{FieldMood: "Bom"}},
		{ID: "2", Date: "2026-08-28", Fields: map[string]string{FieldMood: "Ruim"}},
	}
	repo.On("List", mock.Anything, "maria", CategoryDiary).Return(expected, nil)

	records, err := service.List(context.Background(), "maria", CategoryDiary)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestService_List_UnknownCategory(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	service := newTestService(repo, users)

	_, err := service.List(context.Background(), "maria", Category("humor"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
