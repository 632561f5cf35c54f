package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Parse reads a calendar date in the local time zone.
// See ParseIn for the accepted formats.
func Parse(text string) (time.Time, bool) {
	return ParseIn(text, time.Local)
}

// ParseIn reads a calendar date from spreadsheet text.
// Accepted forms are "YYYY-MM-DD" (an optional trailing time component is
// discarded) and "DD/MM/YYYY". The result is placed at noon in loc so that
// offset conversions never move it to a neighbouring day.
// It returns false for empty, malformed or out-of-range input.
func ParseIn(text string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	switch {
	case strings.Contains(s, "-"):
		if i := strings.IndexAny(s, "T "); i >= 0 {
			s = s[:i]
		}
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		return build(parts[0], parts[1], parts[2], loc)
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		return build(parts[2], parts[1], parts[0], loc)
	}

	return time.Time{}, false
}

func build(yearText, monthText, dayText string, loc *time.Location) (time.Time, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil || year < 1 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthText))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayText))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, loc)
	// time.Date normalizes 31/02 into March; treat that as malformed.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// DateOnly returns t truncated to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ISOWeek returns the ISO-8601 week of t and the year owning that week.
// Weeks start on Monday and week 1 holds the year's first Thursday, so the
// owning year can differ from t.Year() around New Year.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// SameISOWeek reports whether a and b fall in the same ISO week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := ISOWeek(a)
	by, bw := ISOWeek(b)
	return ay == by && aw == bw
}

// FormatShort renders spreadsheet date text as DD/MM, or DD/MM/YY when
// withYear is set. Empty input renders as "N/D"; text in an unknown format
// is returned trimmed.
func FormatShort(text string, withYear bool) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return "N/D"
	}
	t, ok := ParseIn(s, time.UTC)
	if !ok {
		return s
	}
	if withYear {
		return t.Format("02/01/06")
	}
	return t.Format("02/01")
}
