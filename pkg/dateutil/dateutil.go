// Package dateutil provides calendar-date arithmetic used by the labor calculators.
// All helpers work on dates normalized to UTC midnight and never return errors:
// spans where end precedes start collapse to zero.
package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time-of-day and location from t.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfYear returns January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return Date(t.Year(), time.January, 1)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// DaysBetween returns the number of whole days from start to end (exclusive of end).
func DaysBetween(start, end time.Time) int {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours() / 24)
}

// MonthsBetween counts calendar-month boundaries crossed between start and end,
// ignoring the day of month.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()*12 + int(end.Month())) - (start.Year()*12 + int(start.Month()))
	if months < 0 {
		return 0
	}
	return months
}

// YearsBetween returns floor(elapsed days / 365.25).
func YearsBetween(start, end time.Time) int {
	days := DaysBetween(start, end)
	return int(math.Floor(float64(days) / 365.25))
}

// CompleteYears returns the number of full anniversaries reached between start and end.
func CompleteYears(start, end time.Time) int {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0
	}
	years := e.Year() - s.Year()
	if e.Month() < s.Month() || (e.Month() == s.Month() && e.Day() < s.Day()) {
		years--
	}
	return years
}

// LastAnniversary returns the most recent anniversary of start on or before end.
func LastAnniversary(start, end time.Time) time.Time {
	return Normalize(start).AddDate(CompleteYears(start, end), 0, 0)
}

// ProportionalDays returns the inclusive day count between start and end,
// capped at limit. A non-positive limit defaults to 30.
func ProportionalDays(start, end time.Time, limit int) int {
	if limit <= 0 {
		limit = 30
	}
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0
	}
	days := DaysBetween(s, e) + 1
	if days > limit {
		return limit
	}
	return days
}

// MonthsWithFifteenDays walks every calendar month touched by [start, end]
// and counts those in which at least 15 days fall inside the span.
func MonthsWithFifteenDays(start, end time.Time) int {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0
	}

	count := 0
	for month := StartOfMonth(s); !month.After(e); month = month.AddDate(0, 1, 0) {
		from := month
		if s.After(from) {
			from = s
		}
		to := EndOfMonth(month)
		if e.Before(to) {
			to = e
		}
		if DaysBetween(from, to)+1 >= 15 {
			count++
		}
	}
	return count
}

// ProportionalMonths counts whole months from start to end plus one more when
// the trailing fraction reaches 15 days. Used for anniversary-based accrual.
func ProportionalMonths(start, end time.Time) int {
	years, months, days := Diff(start, end)
	total := years*12 + months
	if days+1 >= 15 {
		total++
	}
	return total
}

// Diff splits the span between start and end into calendar years, months and days.
func Diff(start, end time.Time) (years, months, days int) {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0, 0, 0
	}

	years = CompleteYears(s, e)
	for !addMonths(s, years*12+months+1).After(e) {
		months++
	}
	days = DaysBetween(addMonths(s, years*12+months), e)
	return years, months, days
}

// addMonths steps t by n months, clamping the day to the target month's
// length (Jan 31 + 1 month is Feb 29 in a leap year, not Mar 2).
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := t.Day()
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date(first.Year(), first.Month(), day)
}

// ServiceTimeText renders the span as Portuguese text, e.g. "1 ano, 6 meses e 14 dias".
func ServiceTimeText(start, end time.Time) string {
	years, months, days := Diff(start, end)

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "ano", "anos"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "mês", "meses"))
	}
	if days > 0 {
		parts = append(parts, plural(days, "dia", "dias"))
	}

	switch len(parts) {
	case 0:
		return "0 dias"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " e " + parts[len(parts)-1]
	}
}

// MonthLabel formats t as MM/YYYY.
func MonthLabel(t time.Time) string {
	return t.Format("01/2006")
}

// FormatDate formats t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func plural(n int, singular, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, many)
}
