package domain

import (
	"time"

	"container-tracker/internal/core/calendar"
)

// Deviation classifies a pickup against the planned collection window.
type Deviation string

const (
	// DeviationNone means on time, or not enough data to tell.
	DeviationNone Deviation = "none"
	// DeviationEarly means the material was collected before the window opened.
	DeviationEarly Deviation = "early"
	// DeviationLate means the material was collected after the window closed,
	// or the window closed while the container was still being planned.
	DeviationLate Deviation = "late"
)

// Classify compares the container's pickup with its planned window.
// Window boundaries are inclusive and all comparisons use calendar dates in
// today's location. A planning container can only be late: it is late once
// its window end is strictly before today.
func Classify(c *Container, today time.Time) Deviation {
	loc := today.Location()
	start, hasStart := calendar.ParseIn(c.WindowStart, loc)
	end, hasEnd := calendar.ParseIn(c.WindowEnd, loc)

	switch c.Status {
	case StatusTransit, StatusYard:
		pickup, hasPickup := calendar.ParseIn(c.PickupDate, loc)
		if !hasPickup || !hasStart || !hasEnd {
			return DeviationNone
		}
		p := calendar.DateOnly(pickup)
		switch {
		case p.After(calendar.DateOnly(end)):
			return DeviationLate
		case p.Before(calendar.DateOnly(start)):
			return DeviationEarly
		}
	case StatusPlanning:
		if hasEnd && calendar.DateOnly(end).Before(calendar.DateOnly(today)) {
			return DeviationLate
		}
	}

	return DeviationNone
}

// IsCollectWeek reports whether the container's relevant date falls in
// today's ISO week: the window end while planning, the pickup date afterwards.
func IsCollectWeek(c *Container, today time.Time) bool {
	relevant := c.PickupDate
	if c.Status == StatusPlanning {
		relevant = c.WindowEnd
	}
	d, ok := calendar.ParseIn(relevant, today.Location())
	if !ok {
		return false
	}
	return calendar.SameISOWeek(d, today)
}
