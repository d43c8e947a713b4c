// Package civil represents wall-clock time: a plain field set of
// year, month, day, hour, minute, second and nanosecond without an
// offset or zone attached. The same civil time describes different
// instants depending on the zone it is interpreted in, and some civil
// times describe no instant at all (daylight saving gaps) or two
// (folds). Pairing a civil time with a zone is the job of the zoned
// package.
package civil

import (
	"fmt"
	"time"

	"github.com/ngrash/go-zoned/internal/datemath"
)

// Time is a civil (wall-clock) time. The zero value is the zero date,
// which is not valid; construct values field by field or with
// FromTime or FromUnix.
type Time struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Date returns a Time with the time-of-day fields zeroed.
func Date(year int, month time.Month, day int) Time {
	return Time{Year: year, Month: month, Day: day}
}

// FromTime extracts the wall-clock fields t shows in its own location.
// The location itself is discarded.
func FromTime(t time.Time) Time {
	year, month, day := t.Date()
	return Time{year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond()}
}

// FromUnix returns the wall-clock fields of the given Unix time read
// as UTC.
func FromUnix(sec int64, nsec int) Time {
	return FromTime(time.Unix(sec, int64(nsec)).UTC())
}

// IsValid reports whether t describes a date and time that exists on
// the proleptic Gregorian calendar.
func (t Time) IsValid() bool {
	if t.Month < time.January || t.Month > time.December {
		return false
	}
	if t.Day < 1 || t.Day > datemath.DaysInMonth(int(t.Month), t.Year) {
		return false
	}
	if t.Hour < 0 || t.Hour > 23 {
		return false
	}
	if t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return false
	}
	return t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

// Weekday returns the day of the week of t.
func (t Time) Weekday() time.Weekday {
	return time.Weekday(datemath.DayOfWeek(t.Day, int(t.Month), t.Year))
}

// YearDay returns the ordinal day of the year of t,
// 1 to 365 (366 in leap years).
func (t Time) YearDay() int {
	return datemath.YearDay(t.Day, int(t.Month), t.Year)
}

// DaysInMonth returns the length of t's month in days.
func (t Time) DaysInMonth() int {
	return datemath.DaysInMonth(int(t.Month), t.Year)
}

// Compare orders two civil times field by field, most significant
// first. It returns -1 if t is before o, 0 if they are equal and
// +1 if t is after o.
func (t Time) Compare(o Time) int {
	order := [][2]int{
		{t.Year, o.Year},
		{int(t.Month), int(o.Month)},
		{t.Day, o.Day},
		{t.Hour, o.Hour},
		{t.Minute, o.Minute},
		{t.Second, o.Second},
		{t.Nanosecond, o.Nanosecond},
	}
	for _, f := range order {
		if f[0] < f[1] {
			return -1
		}
		if f[0] > f[1] {
			return 1
		}
	}
	return 0
}

// String formats t as "YYYY-MM-DD HH:MM:SS". A non-zero nanosecond
// field is appended as a fractional second with trailing zeros
// removed.
func (t Time) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year, int(t.Month), t.Day, t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	return s
}

// Parse reads the String format back into a Time. A fractional
// second is accepted after the seconds field.
func Parse(s string) (Time, error) {
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return Time{}, fmt.Errorf("parse civil time %q: %w", s, err)
	}
	return FromTime(parsed), nil
}
