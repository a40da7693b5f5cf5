package models

import (
	"fmt"
	"time"
)

const minutesPerDay = 1440

// Window is a working interval within a day, expressed as minutes from
// midnight. Half-open: a 09:00-12:00 window is {540, 720}. Windows never
// cross midnight; overnight coverage uses windows on adjacent days.
type Window struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// DaySchedule is one weekday's template. When Available is false the windows
// are kept but ignored, so a provider can toggle a day off without losing its
// hours.
type DaySchedule struct {
	Available bool     `bson:"available" json:"available"`
	Windows   []Window `bson:"windows,omitempty" json:"windows,omitempty"`
}

// WeeklySchedule is a provider's recurring weekly template. Days is keyed by
// lowercase weekday name; a missing day means not working. All windows are
// interpreted in Timezone (IANA name), so wall-clock hours stay put across
// DST changes.
type WeeklySchedule struct {
	Timezone string                 `bson:"timezone" json:"timezone"`
	Days     map[string]DaySchedule `bson:"days" json:"days"`
}

var weekdayKeys = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekdayKey returns the Days map key for a calendar date.
func WeekdayKey(t time.Time) string {
	for key, wd := range weekdayKeys {
		if wd == t.Weekday() {
			return key
		}
	}
	return ""
}

// Location resolves the schedule's timezone.
func (ws WeeklySchedule) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(ws.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule timezone %q: %w", ws.Timezone, err)
	}
	return loc, nil
}

// WindowsOn returns the working windows for a calendar date, or nil when the
// day is unavailable or absent from the template.
func (ws WeeklySchedule) WindowsOn(date time.Time) []Window {
	day, ok := ws.Days[WeekdayKey(date)]
	if !ok || !day.Available {
		return nil
	}
	return day.Windows
}

// Validate checks the whole template: known weekday keys, a resolvable
// timezone, and on every available day windows that are in-range, non-empty,
// sorted, and pairwise disjoint. Windows on unavailable days are not checked;
// they never feed slot generation.
func (ws WeeklySchedule) Validate() error {
	if _, err := ws.Location(); err != nil {
		return err
	}
	for key, day := range ws.Days {
		if _, ok := weekdayKeys[key]; !ok {
			return fmt.Errorf("unknown weekday %q", key)
		}
		if !day.Available {
			continue
		}
		for i, w := range day.Windows {
			if w.Start < 0 || w.Start >= minutesPerDay {
				return fmt.Errorf("%s window %d: start %d out of range", key, i, w.Start)
			}
			if w.End >= minutesPerDay {
				return fmt.Errorf("%s window %d: end %d out of range", key, i, w.End)
			}
			if w.End <= w.Start {
				return fmt.Errorf("%s window %d: end %d not after start %d", key, i, w.End, w.Start)
			}
			if i > 0 && w.Start < day.Windows[i-1].End {
				return fmt.Errorf("%s windows %d and %d overlap or are unsorted", key, i-1, i)
			}
		}
	}
	return nil
}
