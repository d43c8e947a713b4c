package zoned

import "time"

// Component queries forward to the wall-clock representation. They
// exist so generic code can ask a zoned value the questions it would
// ask a plain time without reaching for Local first.

// Year returns the local year.
func (t *Time) Year() int { return t.Local().Year }

// Month returns the local month.
func (t *Time) Month() time.Month { return t.Local().Month }

// Day returns the local day of month.
func (t *Time) Day() int { return t.Local().Day }

// Hour returns the local hour.
func (t *Time) Hour() int { return t.Local().Hour }

// Minute returns the local minute.
func (t *Time) Minute() int { return t.Local().Minute }

// Second returns the local second.
func (t *Time) Second() int { return t.Local().Second }

// Weekday returns the local day of the week.
func (t *Time) Weekday() time.Weekday { return t.Local().Weekday() }

// YearDay returns the local ordinal day of the year.
func (t *Time) YearDay() int { return t.Local().YearDay() }

// Calendar helpers whose results are themselves time-like re-wrap at
// the current zone, keeping the current period when it still covers
// the new wall-clock time.

// BeginningOfDay returns midnight of the value's local date. On a day
// whose midnight falls in a daylight saving gap the result shifts
// forward past the gap, per FromLocal.
func (t *Time) BeginningOfDay() (*Time, error) {
	l := t.Local()
	l.Hour, l.Minute, l.Second, l.Nanosecond = 0, 0, 0, 0
	return t.rewrapLocal(l)
}

// Midnight is an alias for BeginningOfDay.
func (t *Time) Midnight() (*Time, error) { return t.BeginningOfDay() }

// EndOfDay returns the last representable instant of the value's
// local date.
func (t *Time) EndOfDay() (*Time, error) {
	l := t.Local()
	l.Hour, l.Minute, l.Second = 23, 59, 59
	l.Nanosecond = int(time.Second) - 1
	return t.rewrapLocal(l)
}

// DayRange returns the first and last instants of the value's local
// date. The endpoints are wrapped independently: each gets its own
// period resolution.
func (t *Time) DayRange() (*Time, *Time, error) {
	from, err := t.BeginningOfDay()
	if err != nil {
		return nil, nil, err
	}
	to, err := t.EndOfDay()
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
