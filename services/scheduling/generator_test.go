package scheduling

import (
	"errors"
	"testing"
	"time"

	"devseva/models"
)

// Fixtures: 2026-09-07 is a Monday. The schedule opens Mondays 09:00-12:00
// in Asia/Kolkata; Tuesday is explicitly closed.
const testTZ = "Asia/Kolkata"

func testSchedule(t *testing.T) (models.WeeklySchedule, *time.Location) {
	t.Helper()
	ws := models.WeeklySchedule{
		Timezone: testTZ,
		Days: map[string]models.DaySchedule{
			"monday":    {Available: true, Windows: []models.Window{{Start: 540, End: 720}}},
			"tuesday":   {Available: false},
			"wednesday": {Available: true, Windows: []models.Window{{Start: 540, End: 720}}},
		},
	}
	loc, err := ws.Location()
	if err != nil {
		t.Fatalf("Location error: %v", err)
	}
	return ws, loc
}

func mondayAt(loc *time.Location, hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, loc)
}

func reservationAt(loc *time.Location, startHour, startMin, endHour, endMin int) models.Reservation {
	return models.Reservation{
		ID:         "res-1",
		ProviderID: "prov-1",
		Start:      time.Date(2026, 9, 7, startHour, startMin, 0, 0, loc),
		End:        time.Date(2026, 9, 7, endHour, endMin, 0, 0, loc),
		Status:     models.ReservationConfirmed,
	}
}

func slotStarts(slots []models.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("15:04")
	}
	return out
}

// Early "now" so nothing in the fixture week is past.
func beforeWeek(loc *time.Location) time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, loc)
}

func TestGenerateSlotsNoBuffer(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, nil, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
	// The last slot ends exactly at the window end.
	last := slots[len(slots)-1]
	if last.End.Format("15:04") != "12:00" {
		t.Errorf("last slot ends %s, want 12:00", last.End.Format("15:04"))
	}
}

func TestGenerateSlotsWithBuffer(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)

	slots, err := GenerateSlots(ws, monday, monday, 30, 15, nil, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	want := []string{"09:00", "09:45", "10:30", "11:15"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateSlotsSkipsReservedSlot(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	reserved := []models.Reservation{reservationAt(loc, 10, 0, 10, 30)}

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, reserved, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	got := slotStarts(slots)
	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for _, s := range got {
		if s == "10:00" {
			t.Error("reserved 10:00 slot must be absent")
		}
	}
	// Neighbors survive.
	if got[1] != "09:30" || got[2] != "10:30" {
		t.Errorf("expected 09:30 and 10:30 to remain, got %v", got)
	}
}

func TestGenerateSlotsIgnoresCancelledReservation(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	cancelled := reservationAt(loc, 10, 0, 10, 30)
	cancelled.Status = models.ReservationCancelled

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, []models.Reservation{cancelled}, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("cancelled reservation must not block slots: got %d slots", len(slots))
	}
}

func TestGenerateSlotsSkipsUnavailableDay(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	wednesday := monday.AddDate(0, 0, 2)

	slots, err := GenerateSlots(ws, monday, wednesday, 30, 0, nil, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	// Monday and Wednesday produce six slots each; Tuesday none.
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots across Mon+Wed, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start.Weekday() == time.Tuesday {
			t.Errorf("slot generated on closed Tuesday: %v", s.Start)
		}
	}
}

func TestGenerateSlotsDropsPastCandidates(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	now := mondayAt(loc, 10, 5)

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, nil, now)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	got := slotStarts(slots)
	want := []string{"10:30", "11:00", "11:30"}
	if len(got) != len(want) {
		t.Fatalf("expected %d future slots, got %d: %v", len(want), len(got), got)
	}
	for _, s := range slots {
		if s.Start.Before(now) {
			t.Errorf("slot %v starts before now", s.Start)
		}
	}
}

func TestGenerateSlotsSlotStartingExactlyNowKept(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	now := mondayAt(loc, 10, 0)

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, nil, now)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if got := slotStarts(slots); len(got) == 0 || got[0] != "10:00" {
		t.Fatalf("slot starting exactly at now must be kept, got %v", got)
	}
}

func TestGenerateSlotsMonotonicStep(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)

	duration, buffer := 45, 10
	slots, err := GenerateSlots(ws, monday, monday, duration, buffer, nil, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) < 2 {
		t.Fatalf("fixture must yield at least two slots, got %d", len(slots))
	}

	step := time.Duration(duration+buffer) * time.Minute
	for i := 1; i < len(slots); i++ {
		if got := slots[i].Start.Sub(slots[i-1].Start); got != step {
			t.Errorf("gap between slot %d and %d is %v, want %v", i-1, i, got, step)
		}
	}
}

func TestGenerateSlotsWindowTooShort(t *testing.T) {
	ws := models.WeeklySchedule{
		Timezone: testTZ,
		Days: map[string]models.DaySchedule{
			"monday": {Available: true, Windows: []models.Window{{Start: 540, End: 560}}},
		},
	}
	loc, _ := ws.Location()
	monday := mondayAt(loc, 0, 0)

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, nil, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("20-minute window must not fit a 30-minute slot, got %d slots", len(slots))
	}
}

func TestGenerateSlotsNonOverlapInvariant(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	reserved := []models.Reservation{reservationAt(loc, 9, 45, 10, 15)}

	slots, err := GenerateSlots(ws, monday, monday, 30, 0, reserved, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}

	for i, a := range slots {
		ia := Interval{Start: a.Start, End: a.End}
		for _, r := range reserved {
			if ia.Overlaps(Interval{Start: r.Start, End: r.End}) {
				t.Errorf("slot %v overlaps reservation", a.Start)
			}
		}
		for j := i + 1; j < len(slots); j++ {
			if ia.Overlaps(Interval{Start: slots[j].Start, End: slots[j].End}) {
				t.Errorf("slots %d and %d overlap", i, j)
			}
		}
	}
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)
	reserved := []models.Reservation{reservationAt(loc, 10, 0, 10, 30)}
	now := beforeWeek(loc)

	first, err := GenerateSlots(ws, monday, monday, 30, 0, reserved, now)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	second, err := GenerateSlots(ws, monday, monday, 30, 0, reserved, now)
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("slot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("slot %d differs between identical calls", i)
		}
	}
}

func TestGenerateSlotsInvalidInput(t *testing.T) {
	ws, loc := testSchedule(t)
	monday := mondayAt(loc, 0, 0)

	if _, err := GenerateSlots(ws, monday, monday.AddDate(0, 0, -1), 30, 0, nil, beforeWeek(loc)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := GenerateSlots(ws, monday, monday, 0, 0, nil, beforeWeek(loc)); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := GenerateSlots(ws, monday, monday, -15, 0, nil, beforeWeek(loc)); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestGenerateSlotsMultiDayReservationBlocksBothDays(t *testing.T) {
	ws := models.WeeklySchedule{
		Timezone: testTZ,
		Days: map[string]models.DaySchedule{
			"monday":    {Available: true, Windows: []models.Window{{Start: 540, End: 720}}},
			"tuesday":   {Available: true, Windows: []models.Window{{Start: 540, End: 720}}},
			"wednesday": {Available: true, Windows: []models.Window{{Start: 540, End: 720}}},
		},
	}
	loc, _ := ws.Location()
	monday := mondayAt(loc, 0, 0)
	tuesday := monday.AddDate(0, 0, 1)

	// A single reservation covering both whole mornings.
	spanning := models.Reservation{
		ID:         "res-span",
		ProviderID: "prov-1",
		Start:      mondayAt(loc, 9, 0),
		End:        time.Date(2026, 9, 8, 12, 0, 0, 0, loc),
		Status:     models.ReservationConfirmed,
	}

	slots, err := GenerateSlots(ws, monday, tuesday, 30, 0, []models.Reservation{spanning}, beforeWeek(loc))
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("reservation spanning both days must block everything, got %d slots", len(slots))
	}
}
