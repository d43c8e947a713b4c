package zoned

import (
	"time"
)

// Span is a quantity to add to or subtract from a zoned time.
//
// Seconds, minutes and hours have constant real-time length and
// belong in Fixed. Years, months, weeks and days are
// calendar-variable: how much real time they cover depends on where
// on the calendar they are applied, so they are carried as counts.
// A span containing any calendar component is classified as
// calendar-variable as a whole.
type Span struct {
	Years  int
	Months int
	Weeks  int
	Days   int
	Fixed  time.Duration
}

// Years returns a span of n calendar years.
func Years(n int) Span { return Span{Years: n} }

// Months returns a span of n calendar months.
func Months(n int) Span { return Span{Months: n} }

// Weeks returns a span of n calendar weeks.
func Weeks(n int) Span { return Span{Weeks: n} }

// Days returns a span of n calendar days.
func Days(n int) Span { return Span{Days: n} }

// Fixed returns a fixed-length span.
func Fixed(d time.Duration) Span { return Span{Fixed: d} }

// Calendar reports whether any calendar-variable component is set.
func (s Span) Calendar() bool {
	return s.Years != 0 || s.Months != 0 || s.Weeks != 0 || s.Days != 0
}

// Neg returns the span with every component negated.
func (s Span) Neg() Span {
	return Span{-s.Years, -s.Months, -s.Weeks, -s.Days, -s.Fixed}
}

// Add returns t shifted by s.
//
// A fixed-length span anchors to the UTC instant: the result is the
// same real time later and the period is re-resolved for the new
// instant, so a DST transition crossed by the addition changes the
// wall clock, never the elapsed time.
//
// A calendar-variable span anchors to the wall clock: the local
// fields advance on the calendar (any Fixed remainder is applied to
// the wall clock too) and the period is re-resolved for the new local
// time, keeping the current period when it still applies. Adding one
// calendar day across a spring-forward therefore lands on the same
// wall-clock time 23 real hours later, where adding 24 fixed hours
// lands one wall-clock hour later.
//
// The error is an AmbiguousLocalTimeError when a calendar-variable
// result cannot be resolved in the zone.
func (t *Time) Add(s Span) (*Time, error) {
	if !s.Calendar() {
		return t.AddDuration(s.Fixed), nil
	}
	l := t.Local().AddDate(s.Years, s.Months, s.Weeks*7+s.Days)
	if s.Fixed != 0 {
		l = l.Add(s.Fixed)
	}
	return t.rewrapLocal(l)
}

// Advance is Add. The name mirrors the calendar-advance reading of
// the operation.
func (t *Time) Advance(s Span) (*Time, error) { return t.Add(s) }

// Ago returns t shifted backwards by s. Ago(s) is exactly
// Add(s.Neg()) for both fixed and calendar-variable spans.
func (t *Time) Ago(s Span) (*Time, error) { return t.Add(s.Neg()) }

// AddDuration returns t shifted by a fixed-length duration, anchored
// to the UTC instant. It cannot fail: instant lookups are never
// ambiguous.
func (t *Time) AddDuration(d time.Duration) *Time {
	return FromUTC(t.UTC().Add(d), t.zone)
}

// Sub returns the elapsed real time from o to t, computed on the UTC
// instants. Subtracting one time-like value from another yields a
// duration, not a new zoned value.
func (t *Time) Sub(o TimeLike) time.Duration {
	return t.UTC().Sub(o.ActsUTC())
}
