package tzdb

import (
	"fmt"
)

// Template describes a zone declaratively: a set of periods and the
// ordered changes between them. Period 0 is in force at the beginning
// of time. Templates exist so tests can construct zones with known
// daylight saving gaps and folds without depending on system zone
// data.
type Template struct {
	// Periods lists the local time rules of the zone. Must not be empty.
	Periods []Period
	// Changes lists transitions in strictly ascending order of Start.
	Changes []Change
}

// Change switches the zone to another period.
type Change struct {
	// Start is the instant the change takes effect, in Unix seconds.
	Start int64
	// PeriodIndex selects the period from Template.Periods that is in
	// force from Start on.
	PeriodIndex int
}

// Build constructs a zone from a template.
func Build(name string, t Template) (*Zone, error) {
	if len(t.Periods) == 0 {
		return nil, fmt.Errorf("build zone %s: no periods", name)
	}
	z := &Zone{name: name}
	z.spans = append(z.spans, span{start: minStart, period: t.Periods[0]})
	var last int64
	for i, c := range t.Changes {
		if i > 0 && c.Start <= last {
			return nil, fmt.Errorf("build zone %s: change %d not after change %d", name, i, i-1)
		}
		last = c.Start
		if c.PeriodIndex < 0 || c.PeriodIndex >= len(t.Periods) {
			return nil, fmt.Errorf("build zone %s: change %d: period index %d out of range [0, %d)", name, i, c.PeriodIndex, len(t.Periods))
		}
		z.spans = append(z.spans, span{start: c.Start, period: t.Periods[c.PeriodIndex]})
	}
	return z, nil
}

// MustBuild is Build for tests and package setup; it panics on error.
func MustBuild(name string, t Template) *Zone {
	z, err := Build(name, t)
	if err != nil {
		panic(err)
	}
	return z
}
