package scheduling

import (
	"time"

	"devseva/models"
)

// CheckBookable decides whether a proposed interval may be booked against a
// provider's profile and the supplied active reservations. It is a pure
// predicate: reservations must already be fetched (and the excluded
// reservation filtered out) by the caller.
//
// Checks run in order: not in the past, provider bookable, fully contained in
// a working window of that day, no overlap with an active reservation. Each
// failure is an ordinary domain outcome, not an error; errors are reserved
// for structurally invalid input.
func CheckBookable(
	provider *models.Provider,
	proposed Interval,
	reservations []models.Reservation,
	now time.Time,
) (models.BookableResult, error) {
	if !proposed.Valid() {
		return models.BookableResult{}, ErrInvalidInterval
	}

	if proposed.IsPast(now) {
		return models.BookableResult{Reason: ReasonPast}, nil
	}

	if !provider.IsBookable() {
		return models.BookableResult{Reason: ReasonProviderUnavailable}, nil
	}

	loc, err := provider.WeeklySchedule.Location()
	if err != nil {
		return models.BookableResult{}, err
	}
	if !withinWorkingHours(provider.WeeklySchedule, proposed, loc) {
		return models.BookableResult{Reason: ReasonOutsideWorkingHours}, nil
	}

	for _, r := range reservations {
		if !models.IsActiveReservationStatus(r.Status) {
			continue
		}
		if proposed.Overlaps(Interval{Start: r.Start, End: r.End}) {
			return models.BookableResult{Reason: ReasonAlreadyBooked}, nil
		}
	}

	return models.BookableResult{Bookable: true}, nil
}

// withinWorkingHours reports whether the proposed interval lies fully inside
// some working window on its calendar date. Containment is the only
// criterion; the interval need not align to the slot grid.
func withinWorkingHours(schedule models.WeeklySchedule, proposed Interval, loc *time.Location) bool {
	d := dayStart(proposed.Start, loc)
	for _, w := range schedule.WindowsOn(d) {
		window := Interval{
			Start: time.Date(d.Year(), d.Month(), d.Day(), 0, w.Start, 0, 0, loc),
			End:   time.Date(d.Year(), d.Month(), d.Day(), 0, w.End, 0, 0, loc),
		}
		if window.Contains(proposed) {
			return true
		}
	}
	return false
}
