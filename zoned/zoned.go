// Package zoned implements a civil (wall-clock) time paired with a
// named time zone.
//
// A zoned Time holds two representations of the same moment: the UTC
// instant and the local wall-clock fields. Whichever representation a
// value was not constructed with is derived on first use and
// memoized, together with the zone period (offset, designation, DST
// flag) that ties them together. Values are immutable to callers;
// every transforming operation returns a new *Time.
//
// The interesting decisions all concern daylight saving transitions:
// which representation arithmetic anchors to (see Add), what happens
// when a wall-clock time falls in a gap or a fold (see FromLocal),
// and when an existing period is kept in preference to a fresh lookup
// (see Change).
package zoned

import (
	"time"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzdb"
)

// gapRetryLimit bounds the +1 hour probing FromLocal performs when a
// wall-clock time falls in a daylight saving gap. Real gaps are at
// most a few hours wide.
const gapRetryLimit = 6

// Time is a civil time paired with a zone.
//
// At least one of the UTC instant and the local representation is
// always present; the other is derived on demand. Memoization writes
// are idempotent: two goroutines racing to fill the same field
// compute the same value, so the type needs no locking as long as
// callers treat values as immutable, which is the contract.
type Time struct {
	zone *tzdb.Zone

	hasUTC bool
	utc    time.Time // location is always time.UTC

	hasLocal bool
	local    civil.Time

	period *tzdb.Period

	frozen bool
}

// FromUTC pairs the given time, reinterpreted as UTC, with zone z.
//
// Reinterpreted means the wall-clock fields t shows in its own
// location are read as UTC fields: offset information carried by t is
// discarded, not converted. Pass a time that is already in UTC to
// avoid surprises. The period is resolved lazily.
func FromUTC(t time.Time, z *tzdb.Zone) *Time {
	ct := civil.FromTime(t)
	return &Time{
		zone:   z,
		hasUTC: true,
		utc:    time.Date(ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, ct.Second, ct.Nanosecond, time.UTC),
	}
}

// FromUnix pairs the instant sec seconds (and nsec nanoseconds) after
// the Unix epoch with zone z.
func FromUnix(sec int64, nsec int, z *tzdb.Zone) *Time {
	return FromUTC(time.Unix(sec, int64(nsec)).UTC(), z)
}

// FromLocal interprets the wall-clock fields ct in zone z.
//
// If ct falls in a daylight saving gap (a local time clocks skipped
// over), the fields are advanced by one hour and resolution is
// retried, up to gapRetryLimit times; exhausting the retries yields
// an AmbiguousLocalTimeError. A one-hour gap therefore resolves to
// the same instant as the shifted wall clock, which is the instant
// the skipped time "became".
//
// If ct falls in a fold (a local time that occurs twice), the period
// before the transition wins, unless known is non-nil and among the
// candidates, in which case known is kept. Transforming operations
// pass their current period as known to favor offset continuity.
func FromLocal(ct civil.Time, z *tzdb.Zone, known *tzdb.Period) (*Time, error) {
	local := ct
	for try := 0; try <= gapRetryLimit; try++ {
		candidates := z.PeriodsForLocal(local)
		if len(candidates) == 0 {
			local = local.Add(time.Hour)
			continue
		}
		p := candidates[0]
		if known != nil {
			for _, c := range candidates {
				if c == *known {
					p = c
					break
				}
			}
		}
		return &Time{zone: z, hasLocal: true, local: local, period: &p}, nil
	}
	return nil, &AmbiguousLocalTimeError{Local: ct, Zone: z.Name()}
}

// Zone returns the zone this value is expressed in.
func (t *Time) Zone() *tzdb.Zone { return t.zone }

// UTC returns the instant this value represents, in location time.UTC.
func (t *Time) UTC() time.Time {
	if t.hasUTC {
		return t.utc
	}
	p := t.Period()
	u := time.Unix(t.local.Unix()-int64(p.OffsetSeconds), int64(t.local.Nanosecond)).UTC()
	t.utc, t.hasUTC = u, true
	return u
}

// Local returns the wall-clock representation of this value in its
// zone.
func (t *Time) Local() civil.Time {
	if t.hasLocal {
		return t.local
	}
	p := t.Period()
	l := civil.FromTime(t.utc.Add(time.Duration(p.OffsetSeconds) * time.Second))
	t.local, t.hasLocal = l, true
	return l
}

// Period returns the zone period this value falls in. When no period
// is cached yet, resolution prefers the instant, which is never
// ambiguous; a value holding only local fields was stored together
// with its period at construction, so the local branch below can only
// see resolvable wall-clock times.
func (t *Time) Period() tzdb.Period {
	if t.period != nil {
		return *t.period
	}
	var p tzdb.Period
	if t.hasUTC {
		p = t.zone.PeriodForUTC(t.utc.Unix())
	} else {
		p, _ = t.zone.PeriodForLocal(t.local)
	}
	t.period = &p
	return p
}

// UTCOffsetSeconds returns the seconds added to UTC to obtain this
// value's wall clock.
func (t *Time) UTCOffsetSeconds() int { return t.Period().OffsetSeconds }

// Abbrev returns the zone designation in force, e.g. "CEST".
func (t *Time) Abbrev() string { return t.Period().Abbrev }

// IsDST reports whether daylight saving time is in force.
func (t *Time) IsDST() bool { return t.Period().DST }

// IsUTC reports whether the value is in Coordinated Universal Time,
// under either designation the tz database uses for it.
func (t *Time) IsUTC() bool {
	a := t.Abbrev()
	return a == "UTC" || a == "UCT"
}

// Unix returns the instant as seconds since the Unix epoch.
func (t *Time) Unix() int64 { return t.UTC().Unix() }

// Nanosecond returns the sub-second part of the instant.
func (t *Time) Nanosecond() int { return t.UTC().Nanosecond() }

// Freeze forces every memoized field and then marks the value frozen.
// Lazy derivation writes to the value; a frozen value must not be
// written to even idempotently, so everything is derived eagerly
// first. Freeze returns its receiver.
func (t *Time) Freeze() *Time {
	t.Period()
	t.UTC()
	t.Local()
	t.frozen = true
	return t
}

// Frozen reports whether Freeze has been called.
func (t *Time) Frozen() bool { return t.frozen }

// rewrapLocal builds a new value at the same zone from shifted
// wall-clock fields, keeping the current period when it still applies
// to them.
func (t *Time) rewrapLocal(ct civil.Time) (*Time, error) {
	p := t.Period()
	return FromLocal(ct, t.zone, &p)
}
