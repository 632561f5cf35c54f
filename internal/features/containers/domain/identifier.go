package domain

import (
	"fmt"
	"strings"
	"time"

	"container-tracker/internal/core/calendar"
)

// WeekSuffix returns the "W{week}/{yy}" suffix for the ISO week holding start.
// The two-digit year is the year owning the week, which differs from the
// calendar year of start around New Year (2024-12-30 -> W1/25).
func WeekSuffix(start time.Time) string {
	year, week := calendar.ISOWeek(start)
	return fmt.Sprintf("W%d/%02d", week, year%100)
}

// GenerateID derives the next sequential identifier for containers whose
// window starts in the same ISO week as start: CONT-{NN}-W{week}/{yy}.
//
// The sequence is only as good as the snapshot of existingIDs. Two creators
// working from the same snapshot get the same identifier; the record store
// decides which one wins.
func GenerateID(start time.Time, existingIDs []string) string {
	suffix := WeekSuffix(start)
	count := 0
	for _, id := range existingIDs {
		if strings.Contains(id, suffix) {
			count++
		}
	}
	return fmt.Sprintf("CONT-%02d-%s", count+1, suffix)
}
