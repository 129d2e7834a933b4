package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/repo"
	"github.com/pkordes/trip-logbook/backend/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	list    func(ctx context.Context) ([]domain.Trip, error)
	getByID func(ctx context.Context, id string) (domain.Trip, error)
	count   func(ctx context.Context) (int, error)
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Count(ctx context.Context) (int, error) {
	return m.count(ctx)
}
func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Origin:          "San Francisco, CA",
		Destination:     "Los Angeles, CA",
		ModeOfTransport: domain.ModeCar,
		Departure:       "2025-06-01T09:00",
		Travelers:       []domain.Traveler{{ID: "1", Name: "John Doe"}},
	}
}

// echoRepo echoes writes back and reports a collection of size n.
func echoRepo(n int) *mockTripRepo {
	return &mockTripRepo{
		count:  func(_ context.Context) (int, error) { return n, nil },
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

func tripAt(id string, created time.Time) domain.Trip {
	t := validTrip()
	t.ID = id
	t.CreatedAt = created
	return t
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoRepo(2))

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	id, err := uuid.Parse(got.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, 3, got.TripNumber)
	assert.Equal(t, "San Francisco, CA", got.Origin)
}

func TestTripService_Create_KeepsClientTripNumber(t *testing.T) {
	r := echoRepo(0)
	r.count = func(_ context.Context) (int, error) {
		t.Fatal("count must not be called when tripNumber is set")
		return 0, nil
	}
	svc := service.NewTripService(r)

	trip := validTrip()
	trip.TripNumber = 42

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, 42, got.TripNumber)
}

func TestTripService_Create_CountFails_NumbersAsOne(t *testing.T) {
	r := echoRepo(0)
	r.count = func(_ context.Context) (int, error) { return 0, domain.ErrUpstream }
	svc := service.NewTripService(r)

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, 1, got.TripNumber)
}

func TestTripService_Create_IDsAreUnique(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	a, err := svc.Create(context.Background(), validTrip())
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), validTrip())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestTripService_Create_DropsBlankTravelers(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	trip := validTrip()
	trip.Travelers = []domain.Traveler{
		{ID: "1", Name: "John Doe"},
		{ID: "2", Name: "   "},
		{ID: "3", Name: ""},
		{ID: "4", Name: "Jane Roe"},
	}

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	require.Len(t, got.Travelers, 2)
	assert.Equal(t, "John Doe", got.Travelers[0].Name)
	assert.Equal(t, "Jane Roe", got.Travelers[1].Name)
}

func TestTripService_Create_NoTravelers_EmptySlice(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	trip := validTrip()
	trip.Travelers = nil

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.NotNil(t, got.Travelers)
	assert.Empty(t, got.Travelers)
}

func TestTripService_Create_Invalid(t *testing.T) {
	cases := map[string]func(*domain.Trip){
		"blank origin":  func(tr *domain.Trip) { tr.Origin = "   " },
		"unknown mode":  func(tr *domain.Trip) { tr.ModeOfTransport = "Boat" },
		"empty mode":    func(tr *domain.Trip) { tr.ModeOfTransport = "" },
		"negative num":  func(tr *domain.Trip) { tr.TripNumber = -1 },
		"bad latitude":  func(tr *domain.Trip) { tr.LocationCoords = &domain.Coordinates{Lat: 95, Lng: 0} },
		"bad longitude": func(tr *domain.Trip) { tr.LocationCoords = &domain.Coordinates{Lat: 0, Lng: -200} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := &mockTripRepo{
				create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
					t.Fatal("invalid trip must not reach the repo")
					return domain.Trip{}, nil
				},
			}
			svc := service.NewTripService(r)

			trip := validTrip()
			mutate(&trip)

			_, err := svc.Create(context.Background(), trip)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTripService_Create_ValidationMessageNamesField(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	trip := validTrip()
	trip.ModeOfTransport = "Boat"

	_, err := svc.Create(context.Background(), trip)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "modeOfTransport must be one of: Car, Bike, Train, Cycle, Walk, Other")
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("store exploded")
	r := echoRepo(0)
	r.create = func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
		return domain.Trip{}, repoErr
	}
	svc := service.NewTripService(r)

	_, err := svc.Create(context.Background(), validTrip())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID tests ---------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	want := tripAt("abc", time.Now())
	r := &mockTripRepo{
		getByID: func(_ context.Context, id string) (domain.Trip, error) {
			assert.Equal(t, "abc", id)
			return want, nil
		},
	}
	svc := service.NewTripService(r)

	got, err := svc.GetByID(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(r)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List tests ------------------------------------------------------------

func TestTripService_List_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{
				tripAt("old", base),
				tripAt("new", base.Add(2*time.Hour)),
				tripAt("mid", base.Add(time.Hour)),
			}, nil
		},
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), domain.TripFilter{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
}

// TestTripService_List_UnknownCreatedAtLast verifies trips whose stored
// createdAt could not be read come after every dated trip.
func TestTripService_List_UnknownCreatedAtLast(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	legacy := tripAt("legacy", time.Time{})
	legacy.CreatedAtText = `""`
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{legacy, tripAt("old", base), tripAt("new", base.Add(time.Hour))}, nil
		},
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), domain.TripFilter{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
	assert.Equal(t, "legacy", got[2].ID)
}

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), domain.TripFilter{})

	require.NoError(t, err)
	// Should return an empty slice, not nil, so callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_RepoError_EmptySlice(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{}, domain.ErrUpstream
		},
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), domain.TripFilter{})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_List_Filters(t *testing.T) {
	now := time.Now()
	car := tripAt("car", now)
	train := tripAt("train", now.Add(-time.Minute))
	train.ModeOfTransport = domain.ModeTrain
	train.Origin = "Oslo"
	train.Destination = "Bergen"
	train.Notes = "Flåm detour"
	train.Travelers = []domain.Traveler{{ID: "1", Name: "Ingrid"}}

	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return []domain.Trip{car, train}, nil },
	}
	svc := service.NewTripService(r)

	cases := []struct {
		name   string
		filter domain.TripFilter
		want   []string
	}{
		{"mode", domain.TripFilter{Mode: domain.ModeTrain}, []string{"train"}},
		{"origin case-insensitive", domain.TripFilter{Query: "oSLo"}, []string{"train"}},
		{"destination", domain.TripFilter{Query: "angeles"}, []string{"car"}},
		{"notes", domain.TripFilter{Query: "detour"}, []string{"train"}},
		{"traveler name", domain.TripFilter{Query: "ingrid"}, []string{"train"}},
		{"query and mode disjoint", domain.TripFilter{Query: "oslo", Mode: domain.ModeCar}, []string{}},
		{"blank query matches all", domain.TripFilter{Query: "  "}, []string{"car", "train"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tc.filter)

			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, tr := range got {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestTripService_List_UnknownMode(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	got, err := svc.List(context.Background(), domain.TripFilter{Mode: "Boat"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotNil(t, got)
}

func TestTripService_List_Paginated(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trips := make([]domain.Trip, 5)
	for i := range trips {
		trips[i] = tripAt(string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
	}
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil },
	}
	svc := service.NewTripService(r)

	page, limit := 2, 2
	p := domain.NewPaginationParams(&page, &limit)
	got, err := svc.List(context.Background(), domain.TripFilter{Page: &p})

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first: e d | c b | a
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	page = 9
	p = domain.NewPaginationParams(&page, &limit)
	got, err = svc.List(context.Background(), domain.TripFilter{Page: &p})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Count tests -----------------------------------------------------------

func TestTripService_Count(t *testing.T) {
	svc := service.NewTripService(echoRepo(4))

	got, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.TripCount{Count: 4, NextTripNumber: 5}, got)
}

func TestTripService_Count_Error(t *testing.T) {
	r := &mockTripRepo{
		count: func(_ context.Context) (int, error) { return 0, domain.ErrConfig },
	}
	svc := service.NewTripService(r)

	_, err := svc.Count(context.Background())

	assert.ErrorIs(t, err, domain.ErrConfig)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_Valid(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	trip := tripAt("abc", time.Now())
	trip.Destination = "San Diego, CA"
	trip.Travelers = append(trip.Travelers, domain.Traveler{ID: "2", Name: " "})

	got, err := svc.Update(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, "San Diego, CA", got.Destination)
	assert.Len(t, got.Travelers, 1)
}

func TestTripService_Update_MissingID(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	_, err := svc.Update(context.Background(), validTrip())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_BlankOrigin(t *testing.T) {
	svc := service.NewTripService(echoRepo(0))

	trip := tripAt("abc", time.Now())
	trip.Origin = ""

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_NotFound(t *testing.T) {
	r := &mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(r)

	_, err := svc.Update(context.Background(), tripAt("missing", time.Now()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	r := &mockTripRepo{
		delete: func(_ context.Context, id string) error {
			assert.Equal(t, "abc", id)
			return nil
		},
	}
	svc := service.NewTripService(r)

	err := svc.Delete(context.Background(), "abc")

	assert.NoError(t, err)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	r := &mockTripRepo{
		delete: func(_ context.Context, _ string) error { return domain.ErrNotFound },
	}
	svc := service.NewTripService(r)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_Delete_BlankID(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	err := svc.Delete(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
