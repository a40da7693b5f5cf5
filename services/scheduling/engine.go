package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "devseva/database/repository/provider"
	reservationRepo "devseva/database/repository/reservation"
	"devseva/models"
)

// SlotEngine computes bookable slots and validates proposed reservations.
// Both operations are read-only; CheckBookable must be re-invoked inside the
// booking lock at commit time, its result is advisory outside of it.
type SlotEngine interface {
	GetAvailableSlots(ctx context.Context, providerID, fromDate, toDate string, duration int) ([]models.Slot, error)
	CheckBookable(ctx context.Context, req models.BookingCheck) (models.BookableResult, error)
}

// DefaultSlotEngine is the production implementation, shared by every
// provider type; working hours and session parameters come from the provider
// profile, not from per-type forks.
type DefaultSlotEngine struct {
	ProviderRepo    providerRepo.ProviderRepository
	ReservationRepo reservationRepo.ReservationRepository
	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultSlotEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// GetAvailableSlots returns the open slots for a provider over an inclusive
// date range. Duration is minutes; zero means the provider's configured
// session duration. Dates are "2006-01-02" in the provider's timezone.
func (e *DefaultSlotEngine) GetAvailableSlots(ctx context.Context, providerID, fromDate, toDate string, duration int) ([]models.Slot, error) {
	provider, err := e.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc, err := provider.WeeklySchedule.Location()
	if err != nil {
		return nil, err
	}
	from, err := time.ParseInLocation(DateLayout, fromDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", fromDate, err)
	}
	to, err := time.ParseInLocation(DateLayout, toDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", toDate, err)
	}
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	if duration == 0 {
		duration = provider.SessionPolicy.SessionDuration
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	// One fetch for the whole range; GenerateSlots partitions per day.
	reservations, err := e.ReservationRepo.FetchActiveInRange(ctx, providerID, from, to.AddDate(0, 0, 1), "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return GenerateSlots(provider.WeeklySchedule, from, to, duration, provider.SessionPolicy.BufferTime, reservations, e.now())
}

// CheckBookable validates a caller-supplied interval: past, provider
// availability, window containment, and conflicts, in that order. A negative
// verdict carries a reason; errors mean the question could not be answered.
func (e *DefaultSlotEngine) CheckBookable(ctx context.Context, req models.BookingCheck) (models.BookableResult, error) {
	provider, err := e.getProvider(ctx, req.ProviderID)
	if err != nil {
		return models.BookableResult{}, err
	}

	proposed := Interval{Start: req.Start, End: req.End}
	if !proposed.Valid() {
		return models.BookableResult{}, ErrInvalidInterval
	}

	loc, err := provider.WeeklySchedule.Location()
	if err != nil {
		return models.BookableResult{}, err
	}

	// A single-day fetch covers the conflict scan; the proposed interval is
	// contained in one working day or fails containment anyway.
	day := dayStart(req.Start, loc)
	reservations, err := e.ReservationRepo.FetchActiveInRange(ctx, req.ProviderID, day, day.AddDate(0, 0, 1), req.ExcludeReservationID)
	if err != nil {
		return models.BookableResult{}, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return CheckBookable(provider, proposed, reservations, e.now())
}

func (e *DefaultSlotEngine) getProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	provider, err := e.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrUnknownProvider
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	return provider, nil
}
