package turfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

type turfRepoMock struct {
	createFn        func(ctx context.Context, turf *domain.Turf) (*domain.Turf, error)
	updateErr       error
	updated         *domain.Turf
	getByIDFn       func(ctx context.Context, id int64) (*domain.Turf, error)
	listFn          func(ctx context.Context, filter domain.TurfFilter) ([]*domain.Turf, error)
	listCategories  func(ctx context.Context) ([]*domain.TurfCategory, error)
	getHoursFn      func(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error)
	replacedHours   []*domain.OperatingHours
	replaceHoursErr error
}

func (m *turfRepoMock) Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	return m.createFn(ctx, turf)
}

func (m *turfRepoMock) Update(ctx context.Context, turf *domain.Turf) error {
	m.updated = turf
	return m.updateErr
}

func (m *turfRepoMock) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return m.getByIDFn(ctx, id)
}

func (m *turfRepoMock) List(ctx context.Context, filter domain.TurfFilter) ([]*domain.Turf, error) {
	return m.listFn(ctx, filter)
}

func (m *turfRepoMock) ListCategories(ctx context.Context) ([]*domain.TurfCategory, error) {
	return m.listCategories(ctx)
}

func (m *turfRepoMock) GetOperatingHours(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error) {
	return m.getHoursFn(ctx, turfID)
}

func (m *turfRepoMock) ReplaceOperatingHours(ctx context.Context, turfID int64, hours []*domain.OperatingHours) error {
	m.replacedHours = hours
	return m.replaceHoursErr
}

type txManagerMock struct{}

func (m *txManagerMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *txManagerMock) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func sampleTurf() *domain.Turf {
	return &domain.Turf{
		ID:                     3,
		OwnerID:                100,
		Name:                   "Green Field Arena",
		City:                   "Mumbai",
		Length:                 40,
		Width:                  20,
		PricePerHour:           1000,
		WeekendPriceMultiplier: 1.5,
		Status:                 domain.TurfActive,
	}
}

func TestSearch_FilterNormalization(t *testing.T) {
	var captured domain.TurfFilter
	repo := &turfRepoMock{
		listFn: func(ctx context.Context, filter domain.TurfFilter) ([]*domain.Turf, error) {
			captured = filter
			return []*domain.Turf{sampleTurf()}, nil
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	resp, err := svc.Search(context.Background(), &models.SearchTurfsRequest{
		Query:  "arena",
		SortBy: "bogus_key",
		Limit:  5000,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Turfs, 1)

	// Неизвестная сортировка заменяется сортировкой по имени, лимит ограничен
	assert.Equal(t, domain.SortByName, captured.SortBy)
	assert.Equal(t, uint64(domain.MaxSearchLimit), captured.Limit)
	assert.Equal(t, "arena", captured.Query)
}

func TestGetByID_DetailWithSchedule(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error) {
			return []*domain.OperatingHours{
				{TurfID: 3, Weekday: 0, OpeningTime: "06:00", ClosingTime: "22:00", IsAvailable: true},
			}, nil
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	resp, err := svc.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, 800, resp.Area)
	assert.Equal(t, 1500.0, resp.WeekendPricePerHour)
	require.Len(t, resp.OperatingHours, 1)
	assert.Equal(t, "06:00", resp.OperatingHours[0].OpeningTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func validTurfInput() models.TurfInput {
	return models.TurfInput{
		Name:                   "Green Field Arena",
		Description:            "5-a-side football turf",
		CategoryID:             1,
		Address:                "12 MG Road",
		City:                   "Mumbai",
		State:                  "Maharashtra",
		Pincode:                "400001",
		SurfaceType:            "artificial",
		Length:                 40,
		Width:                  20,
		Capacity:               10,
		PricePerHour:           1000,
		WeekendPriceMultiplier: 1.5,
	}
}

func TestCreate_AssignsOwnerAndActivates(t *testing.T) {
	var captured *domain.Turf
	repo := &turfRepoMock{
		createFn: func(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
			captured = turf
			turf.ID = 77
			return turf, nil
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	resp, err := svc.Create(context.Background(), &models.CreateTurfRequest{
		OwnerID:   100,
		TurfInput: validTurfInput(),
	})

	require.NoError(t, err)
	require.NotNil(t, captured)

	// Владельцем становится вызывающий пользователь, площадка сразу активна
	assert.Equal(t, int64(100), captured.OwnerID)
	assert.Equal(t, domain.TurfActive, captured.Status)
	assert.Equal(t, domain.SurfaceArtificial, captured.SurfaceType)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, int64(100), resp.OwnerID)
	assert.Equal(t, "Green Field Arena", resp.Name)
	assert.Equal(t, 1000.0, resp.PricePerHour)
	assert.Empty(t, resp.OperatingHours)
}

func TestCreate_DefaultsWeekendMultiplier(t *testing.T) {
	var captured *domain.Turf
	repo := &turfRepoMock{
		createFn: func(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
			captured = turf
			turf.ID = 78
			return turf, nil
		},
	}

	input := validTurfInput()
	input.WeekendPriceMultiplier = 0

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	_, err := svc.Create(context.Background(), &models.CreateTurfRequest{
		OwnerID:   100,
		TurfInput: input,
	})

	require.NoError(t, err)
	assert.Equal(t, 1.0, captured.WeekendPriceMultiplier)
}

func TestCreate_Validation(t *testing.T) {
	repo := &turfRepoMock{
		createFn: func(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
			t.Fatal("repository must not be called on invalid input")
			return nil, nil
		},
	}
	svc := NewService(repo, &txManagerMock{}, &noopLogger{})

	tests := []struct {
		name   string
		mutate func(in *models.TurfInput)
	}{
		{name: "blank name", mutate: func(in *models.TurfInput) { in.Name = "   " }},
		{name: "blank address", mutate: func(in *models.TurfInput) { in.Address = "" }},
		{name: "blank city", mutate: func(in *models.TurfInput) { in.City = "" }},
		{name: "missing category", mutate: func(in *models.TurfInput) { in.CategoryID = 0 }},
		{name: "unknown surface type", mutate: func(in *models.TurfInput) { in.SurfaceType = "carpet" }},
		{name: "zero length", mutate: func(in *models.TurfInput) { in.Length = 0 }},
		{name: "negative width", mutate: func(in *models.TurfInput) { in.Width = -5 }},
		{name: "zero capacity", mutate: func(in *models.TurfInput) { in.Capacity = 0 }},
		{name: "zero price", mutate: func(in *models.TurfInput) { in.PricePerHour = 0 }},
		{name: "weekend multiplier below one", mutate: func(in *models.TurfInput) { in.WeekendPriceMultiplier = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTurfInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), &models.CreateTurfRequest{
				OwnerID:   100,
				TurfInput: input,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_Success(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
		getHoursFn: func(ctx context.Context, turfID int64) ([]*domain.OperatingHours, error) {
			return []*domain.OperatingHours{
				{TurfID: 3, Weekday: 0, OpeningTime: "06:00", ClosingTime: "22:00", IsAvailable: true},
			}, nil
		},
	}

	input := validTurfInput()
	input.Name = "Blue Turf Arena"
	input.PricePerHour = 1200

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	resp, err := svc.Update(context.Background(), &models.UpdateTurfRequest{
		TurfID:    3,
		UserID:    100,
		TurfInput: input,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	assert.Equal(t, int64(3), repo.updated.ID)
	assert.Equal(t, "Blue Turf Arena", repo.updated.Name)
	assert.Equal(t, 1200.0, repo.updated.PricePerHour)
	// Владелец сохраняется исходный
	assert.Equal(t, int64(100), repo.updated.OwnerID)

	assert.Equal(t, "Blue Turf Arena", resp.Name)
	require.Len(t, resp.OperatingHours, 1)
}

func TestUpdate_NotOwner(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	_, err := svc.Update(context.Background(), &models.UpdateTurfRequest{
		TurfID:    3,
		UserID:    42,
		TurfInput: validTurfInput(),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdate_TurfNotFound(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	_, err := svc.Update(context.Background(), &models.UpdateTurfRequest{
		TurfID:    99,
		UserID:    100,
		TurfInput: validTurfInput(),
	})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestUpdateAvailability_Success(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
		TurfID: 3,
		UserID: 100,
		Hours: []models.OperatingHoursInput{
			{Weekday: 0, OpeningTime: "06:00", ClosingTime: "22:00", IsAvailable: true},
			{Weekday: 6, OpeningTime: "08:00", ClosingTime: "20:00", IsAvailable: false},
		},
	})

	require.NoError(t, err)
	require.Len(t, repo.replacedHours, 2)
	assert.Equal(t, int64(3), repo.replacedHours[0].TurfID)
	assert.Equal(t, 6, repo.replacedHours[1].Weekday)
	assert.False(t, repo.replacedHours[1].IsAvailable)
}

func TestUpdateAvailability_NotOwner(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
		TurfID: 3,
		UserID: 42,
		Hours: []models.OperatingHoursInput{
			{Weekday: 0, OpeningTime: "06:00", ClosingTime: "22:00", IsAvailable: true},
		},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateAvailability_ScheduleValidation(t *testing.T) {
	repo := &turfRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) { return sampleTurf(), nil },
	}
	svc := NewService(repo, &txManagerMock{}, &noopLogger{})

	tests := []struct {
		name  string
		hours []models.OperatingHoursInput
	}{
		{name: "empty schedule", hours: nil},
		{
			name: "weekday out of range",
			hours: []models.OperatingHoursInput{
				{Weekday: 7, OpeningTime: "06:00", ClosingTime: "22:00"},
			},
		},
		{
			name: "duplicate weekday",
			hours: []models.OperatingHoursInput{
				{Weekday: 1, OpeningTime: "06:00", ClosingTime: "22:00"},
				{Weekday: 1, OpeningTime: "08:00", ClosingTime: "20:00"},
			},
		},
		{
			name: "malformed opening time",
			hours: []models.OperatingHoursInput{
				{Weekday: 1, OpeningTime: "6am", ClosingTime: "22:00"},
			},
		},
		{
			name: "opening after closing",
			hours: []models.OperatingHoursInput{
				{Weekday: 1, OpeningTime: "22:00", ClosingTime: "06:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateAvailability(context.Background(), &models.UpdateAvailabilityRequest{
				TurfID: 3,
				UserID: 100,
				Hours:  tt.hours,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListCategories(t *testing.T) {
	repo := &turfRepoMock{
		listCategories: func(ctx context.Context) ([]*domain.TurfCategory, error) {
			return []*domain.TurfCategory{
				{ID: 1, Name: "Football"},
				{ID: 2, Name: "Cricket"},
			}, nil
		},
	}

	svc := NewService(repo, &txManagerMock{}, &noopLogger{})
	resp, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Categories, 2)
	assert.Equal(t, "Football", resp.Categories[0].Name)
}
