package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	providerRepo "devseva/database/repository/provider"
	"devseva/models"
)

type fakeProviderRepo struct {
	provider *models.Provider
	err      error
}

func (f *fakeProviderRepo) Create(ctx context.Context, p *models.Provider) error { return nil }
func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.provider == nil || f.provider.ID != id {
		return nil, providerRepo.ErrNotFound
	}
	return f.provider, nil
}
func (f *fakeProviderRepo) UpdateWeeklySchedule(ctx context.Context, id string, s models.WeeklySchedule) error {
	return nil
}
func (f *fakeProviderRepo) UpdateSessionPolicy(ctx context.Context, id string, p models.SessionPolicy) error {
	return nil
}
func (f *fakeProviderRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return nil
}
func (f *fakeProviderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return nil
}

type fakeReservationRepo struct {
	reservations []models.Reservation
	err          error

	lastFrom    time.Time
	lastTo      time.Time
	lastExclude string
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *models.Reservation) error { return nil }
func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) FetchActiveInRange(ctx context.Context, providerID string, from, to time.Time, excludeID string) ([]models.Reservation, error) {
	f.lastFrom, f.lastTo, f.lastExclude = from, to, excludeID
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.ID != excludeID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReservationRepo) UpdateInterval(ctx context.Context, id string, start, end time.Time) error {
	return nil
}
func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return nil
}
func (f *fakeReservationRepo) ListByProvider(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return nil, nil
}

func newTestEngine(t *testing.T, reservations []models.Reservation) (*DefaultSlotEngine, *fakeReservationRepo, *time.Location) {
	t.Helper()
	p, loc := testProvider(t)
	resRepo := &fakeReservationRepo{reservations: reservations}
	engine := &DefaultSlotEngine{
		ProviderRepo:    &fakeProviderRepo{provider: p},
		ReservationRepo: resRepo,
		Now:             func() time.Time { return beforeWeek(loc) },
	}
	return engine, resRepo, loc
}

func TestEngineGetAvailableSlotsDefaultDuration(t *testing.T) {
	engine, _, _ := newTestEngine(t, nil)

	// Duration 0 falls back to the provider's 30-minute policy.
	slots, err := engine.GetAvailableSlots(context.Background(), "prov-1", "2026-09-07", "2026-09-07", 0)
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots at the default duration, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Duration != 30 {
			t.Errorf("slot duration %d, want 30", s.Duration)
		}
	}
}

func TestEngineGetAvailableSlotsExplicitDuration(t *testing.T) {
	engine, _, _ := newTestEngine(t, nil)

	// "Give me all 45-minute slots", decoupled from the stored policy.
	slots, err := engine.GetAvailableSlots(context.Background(), "prov-1", "2026-09-07", "2026-09-07", 45)
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	if len(slots) != 4 {
		t.Fatalf("expected 4 forty-five minute slots, got %d", len(slots))
	}
}

func TestEngineGetAvailableSlotsFetchesWholeRangeOnce(t *testing.T) {
	engine, resRepo, loc := newTestEngine(t, nil)

	if _, err := engine.GetAvailableSlots(context.Background(), "prov-1", "2026-09-07", "2026-09-09", 0); err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}

	wantFrom := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	wantTo := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	if !resRepo.lastFrom.Equal(wantFrom) || !resRepo.lastTo.Equal(wantTo) {
		t.Fatalf("fetched [%v, %v), want [%v, %v)", resRepo.lastFrom, resRepo.lastTo, wantFrom, wantTo)
	}
}

func TestEngineGetAvailableSlotsUnknownProvider(t *testing.T) {
	engine, _, _ := newTestEngine(t, nil)

	if _, err := engine.GetAvailableSlots(context.Background(), "nobody", "2026-09-07", "2026-09-07", 0); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestEngineGetAvailableSlotsInvalidDates(t *testing.T) {
	engine, _, _ := newTestEngine(t, nil)
	ctx := context.Background()

	if _, err := engine.GetAvailableSlots(ctx, "prov-1", "2026-09-08", "2026-09-07", 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := engine.GetAvailableSlots(ctx, "prov-1", "not-a-date", "2026-09-07", 0); err == nil {
		t.Fatal("expected error for malformed from date")
	}
}

func TestEngineGetAvailableSlotsStoreFailure(t *testing.T) {
	engine, resRepo, _ := newTestEngine(t, nil)
	resRepo.err = errors.New("connection reset")

	// A store failure is an error, never an empty "no slots" answer.
	if _, err := engine.GetAvailableSlots(context.Background(), "prov-1", "2026-09-07", "2026-09-07", 0); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestEngineCheckBookablePassesExcludeID(t *testing.T) {
	engine, resRepo, loc := newTestEngine(t, nil)
	resRepo.reservations = []models.Reservation{reservationAt(loc, 10, 0, 10, 30)}

	req := models.BookingCheck{
		ProviderID:           "prov-1",
		Start:                mondayAt(loc, 10, 0),
		End:                  mondayAt(loc, 10, 30),
		ExcludeReservationID: "res-1",
	}
	result, err := engine.CheckBookable(context.Background(), req)
	if err != nil {
		t.Fatalf("CheckBookable error: %v", err)
	}
	if resRepo.lastExclude != "res-1" {
		t.Fatalf("excludeID not forwarded, got %q", resRepo.lastExclude)
	}
	// With itself excluded the move is clean.
	if !result.Bookable {
		t.Fatalf("expected bookable after excluding self, got reason %q", result.Reason)
	}
}

func TestEngineCheckBookableSingleDayFetch(t *testing.T) {
	engine, resRepo, loc := newTestEngine(t, nil)

	req := models.BookingCheck{
		ProviderID: "prov-1",
		Start:      mondayAt(loc, 10, 0),
		End:        mondayAt(loc, 10, 30),
	}
	if _, err := engine.CheckBookable(context.Background(), req); err != nil {
		t.Fatalf("CheckBookable error: %v", err)
	}

	wantFrom := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	wantTo := wantFrom.AddDate(0, 0, 1)
	if !resRepo.lastFrom.Equal(wantFrom) || !resRepo.lastTo.Equal(wantTo) {
		t.Fatalf("fetched [%v, %v), want single day [%v, %v)", resRepo.lastFrom, resRepo.lastTo, wantFrom, wantTo)
	}
}

func TestEngineCheckBookableConflict(t *testing.T) {
	engine, resRepo, loc := newTestEngine(t, nil)
	resRepo.reservations = []models.Reservation{reservationAt(loc, 10, 0, 10, 30)}

	req := models.BookingCheck{
		ProviderID: "prov-1",
		Start:      mondayAt(loc, 10, 15),
		End:        mondayAt(loc, 10, 45),
	}
	result, err := engine.CheckBookable(context.Background(), req)
	if err != nil {
		t.Fatalf("CheckBookable error: %v", err)
	}
	if result.Bookable || result.Reason != ReasonAlreadyBooked {
		t.Fatalf("expected %q, got %+v", ReasonAlreadyBooked, result)
	}
}
