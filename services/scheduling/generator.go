package scheduling

import (
	"time"

	"devseva/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// GenerateSlots walks every calendar date from `from` to `to` inclusive and
// produces the bookable slots for the given schedule: within each working
// window the first slot is anchored at the window start, and consecutive
// slots step by duration+buffer. Candidates that have already begun at `now`
// or that overlap an active reservation are dropped. Output is ascending by
// start time.
//
// `from` and `to` mark calendar dates; their time-of-day component is
// ignored. `duration` and `buffer` are minutes. `reservations` must be the
// provider's active reservations covering the whole range; they are fetched
// once by the caller and partitioned per day here.
func GenerateSlots(
	schedule models.WeeklySchedule,
	from, to time.Time,
	duration, buffer int,
	reservations []models.Reservation,
	now time.Time,
) ([]models.Slot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	loc, err := schedule.Location()
	if err != nil {
		return nil, err
	}

	startDay := dayStart(from, loc)
	endDay := dayStart(to, loc)
	if endDay.Before(startDay) {
		return nil, ErrInvalidRange
	}

	byDay := partitionByDay(reservations, startDay, endDay, loc)

	sessionLen := time.Duration(duration) * time.Minute
	step := time.Duration(duration+buffer) * time.Minute

	var slots []models.Slot
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		windows := schedule.WindowsOn(d)
		if len(windows) == 0 {
			continue
		}
		dayReservations := byDay[d.Format(DateLayout)]
		for _, w := range windows {
			wStart := time.Date(d.Year(), d.Month(), d.Day(), 0, w.Start, 0, 0, loc)
			wEnd := time.Date(d.Year(), d.Month(), d.Day(), 0, w.End, 0, 0, loc)
			for cursor := wStart; !cursor.Add(sessionLen).After(wEnd); cursor = cursor.Add(step) {
				candidate := Interval{Start: cursor, End: cursor.Add(sessionLen)}
				if candidate.IsPast(now) {
					continue
				}
				if conflictsAny(candidate, dayReservations) {
					continue
				}
				slots = append(slots, models.Slot{
					Start:    candidate.Start,
					End:      candidate.End,
					Duration: duration,
				})
			}
		}
	}
	return slots, nil
}

// dayStart truncates t to midnight of its calendar date in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// partitionByDay assigns each reservation to every calendar date it touches,
// so the per-candidate conflict scan only walks that day's reservations. A
// reservation spanning midnight appears under both dates.
func partitionByDay(reservations []models.Reservation, startDay, endDay time.Time, loc *time.Location) map[string][]models.Reservation {
	byDay := make(map[string][]models.Reservation)
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		day := Interval{Start: d, End: d.AddDate(0, 0, 1)}
		var matched []models.Reservation
		for _, r := range reservations {
			if !models.IsActiveReservationStatus(r.Status) {
				continue
			}
			if day.Overlaps(Interval{Start: r.Start, End: r.End}) {
				matched = append(matched, r)
			}
		}
		if len(matched) > 0 {
			byDay[d.Format(DateLayout)] = matched
		}
	}
	return byDay
}

func conflictsAny(candidate Interval, reservations []models.Reservation) bool {
	for _, r := range reservations {
		if candidate.Overlaps(Interval{Start: r.Start, End: r.End}) {
			return true
		}
	}
	return false
}
