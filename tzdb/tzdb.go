// Package tzdb resolves named time zones to offset rules.
//
// A Zone answers, for a UTC instant or for a candidate wall-clock
// time, which Period applies: the UTC offset, designation and DST
// flag in force over a contiguous range of instants. Instant lookups
// are never ambiguous. Wall-clock lookups can yield no period (the
// local time falls in a daylight saving gap), one period, or two (the
// local time falls in a fold and occurs twice).
//
// Zones are built from decoded TZif data, from a fixed offset, or
// from a declarative Template for tests.
package tzdb

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzif"
)

// ErrNoSuchLocalTime is returned by PeriodForLocal when the requested
// wall-clock time never occurs in the zone because clocks skipped
// over it.
var ErrNoSuchLocalTime = errors.New("no such local time")

// Period is the offset rule applicable to a zone over a contiguous
// range of instants. Periods are immutable and produced only by zone
// lookups.
type Period struct {
	// OffsetSeconds is added to UTC to obtain local time.
	OffsetSeconds int
	// Abbrev is the zone designation while the period is in force,
	// e.g. "CEST".
	Abbrev string
	// DST reports whether the period is daylight saving time.
	DST bool
}

// minStart marks the span in force at the beginning of time.
const minStart = math.MinInt64

// span is a period together with the instant it takes effect.
type span struct {
	// start is inclusive, in Unix seconds. The first span of a zone
	// starts at minStart.
	start  int64
	period Period
}

// Zone is a named time zone. Zone identity is its name: two zones
// compare equal at the zone level when their names match, regardless
// of object identity. The zero value is not usable.
type Zone struct {
	name  string
	spans []span
}

// UTC is the Coordinated Universal Time zone.
var UTC = FixedZone("UTC", 0)

// Name returns the zone's name, e.g. "Europe/Zurich".
func (z *Zone) Name() string { return z.name }

func (z *Zone) String() string { return z.name }

// FromTZif builds a zone from decoded TZif data.
func FromTZif(name string, data tzif.Zone) *Zone {
	z := &Zone{name: name}
	for _, t := range data.Transitions {
		z.spans = append(z.spans, span{
			start:  t.At,
			period: Period{OffsetSeconds: int(t.OffsetSeconds), Abbrev: t.Abbrev, DST: t.DST},
		})
	}
	if len(z.spans) == 0 {
		z.spans = []span{{start: minStart}}
	}
	return z
}

// FixedZone returns a zone with a single period that never changes.
// The given name doubles as the designation.
func FixedZone(name string, offsetSeconds int) *Zone {
	return &Zone{
		name: name,
		spans: []span{{
			start:  minStart,
			period: Period{OffsetSeconds: offsetSeconds, Abbrev: name},
		}},
	}
}

// lookup returns the index of the span in force at the given instant.
func (z *Zone) lookup(sec int64) int {
	// First span whose successor starts after sec.
	i := sort.Search(len(z.spans), func(i int) bool {
		return i+1 == len(z.spans) || z.spans[i+1].start > sec
	})
	return i
}

// PeriodForUTC returns the period in force at the given instant,
// expressed in Unix seconds. Instant lookups are never ambiguous.
func (z *Zone) PeriodForUTC(sec int64) Period {
	return z.spans[z.lookup(sec)].period
}

// NextTransition returns the instant of the first period change
// strictly after sec, in Unix seconds, together with the period that
// takes effect then. ok is false when no further change is recorded
// for the zone.
func (z *Zone) NextTransition(sec int64) (at int64, p Period, ok bool) {
	i := z.lookup(sec)
	if i+1 >= len(z.spans) {
		return 0, Period{}, false
	}
	next := z.spans[i+1]
	return next.start, next.period, true
}

// maxOffset bounds the plausible distance between a wall clock and
// UTC. RFC8536 requires offsets beyond [-25h, +26h] to be rejected,
// so a window of 27 hours around the naive instant covers every span
// that could contain the local time.
const maxOffset = 27 * 60 * 60

// PeriodsForLocal returns every period under which the wall-clock
// time ct occurs in z: none when ct falls in a gap, one normally, and
// two when ct falls in a fold. Candidates are ordered by the start
// instant of their period, so for a fold the period before the
// transition comes first. The order is deterministic.
func (z *Zone) PeriodsForLocal(ct civil.Time) []Period {
	naive := ct.Unix()
	lo := z.lookup(naive - maxOffset)
	hi := z.lookup(naive + maxOffset)

	var out []Period
	for i := lo; i <= hi; i++ {
		p := z.spans[i].period
		// ct occurs under p iff interpreting ct with p's offset
		// lands on an instant where p is actually in force.
		if z.lookup(naive-int64(p.OffsetSeconds)) == i {
			out = append(out, p)
		}
	}
	return out
}

// PeriodForLocal resolves the wall-clock time ct to a single period.
// For a fold the period before the transition wins. A gap yields
// ErrNoSuchLocalTime.
func (z *Zone) PeriodForLocal(ct civil.Time) (Period, error) {
	candidates := z.PeriodsForLocal(ct)
	if len(candidates) == 0 {
		return Period{}, fmt.Errorf("%s in %s: %w", ct, z.name, ErrNoSuchLocalTime)
	}
	return candidates[0], nil
}
