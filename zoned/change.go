package zoned

import (
	"time"

	"github.com/ngrash/go-zoned/tzdb"
)

// changeSet collects the sparse field overrides of a Change call.
type changeSet struct {
	year, day                     *int
	month                         *time.Month
	hour, minute, second, nanosec *int

	zoneName string
	hasZone  bool
	offset   *int
}

// ChangeOpt is a single field override for Change.
type ChangeOpt func(*changeSet)

// Year overrides the year.
func Year(v int) ChangeOpt { return func(c *changeSet) { c.year = &v } }

// Month overrides the month.
func Month(v time.Month) ChangeOpt { return func(c *changeSet) { c.month = &v } }

// Day overrides the day of month.
func Day(v int) ChangeOpt { return func(c *changeSet) { c.day = &v } }

// Hour overrides the hour. Unset fields below it reset to zero.
func Hour(v int) ChangeOpt { return func(c *changeSet) { c.hour = &v } }

// Minute overrides the minute. Unset fields below it reset to zero.
func Minute(v int) ChangeOpt { return func(c *changeSet) { c.minute = &v } }

// Second overrides the second. An unset nanosecond resets to zero.
func Second(v int) ChangeOpt { return func(c *changeSet) { c.second = &v } }

// Nanosecond overrides the sub-second field.
func Nanosecond(v int) ChangeOpt { return func(c *changeSet) { c.nanosec = &v } }

// ZoneName moves the value to the named zone, resolved through the
// default database. Mutually exclusive with Offset.
func ZoneName(name string) ChangeOpt {
	return func(c *changeSet) { c.zoneName = name; c.hasZone = true }
}

// Offset moves the value to a fixed zone with the given UTC offset in
// seconds. Mutually exclusive with ZoneName.
func Offset(seconds int) ChangeOpt { return func(c *changeSet) { c.offset = &seconds } }

// Change returns a copy of t with the given fields overridden on the
// wall-clock representation.
//
// Time-of-day fields cascade: overriding the hour resets minute,
// second and nanosecond to zero unless they are themselves
// overridden, overriding the minute resets second and nanosecond, and
// so on. Date fields do not cascade into each other.
//
// At most one of ZoneName and Offset may be given, otherwise
// ErrConflictingZoneSpec is returned and the value is untouched. When
// a zone is given the new wall clock is resolved against it;
// otherwise the original zone is kept. Either way resolution prefers
// the original period if it still applies to the new wall-clock time,
// and otherwise resolves fresh, including the gap probing of
// FromLocal.
func (t *Time) Change(opts ...ChangeOpt) (*Time, error) {
	var c changeSet
	for _, o := range opts {
		o(&c)
	}
	if c.hasZone && c.offset != nil {
		return nil, ErrConflictingZoneSpec
	}

	l := t.Local()
	if c.year != nil {
		l.Year = *c.year
	}
	if c.month != nil {
		l.Month = *c.month
	}
	if c.day != nil {
		l.Day = *c.day
	}
	if c.hour != nil {
		l.Hour = *c.hour
		l.Minute, l.Second, l.Nanosecond = 0, 0, 0
	}
	if c.minute != nil {
		l.Minute = *c.minute
		l.Second, l.Nanosecond = 0, 0
	}
	if c.second != nil {
		l.Second = *c.second
		l.Nanosecond = 0
	}
	if c.nanosec != nil {
		l.Nanosecond = *c.nanosec
	}

	zone := t.zone
	if c.hasZone {
		z, err := DefaultDB().Find(c.zoneName)
		if err != nil {
			return nil, err
		}
		zone = z
	} else if c.offset != nil {
		z, err := DefaultDB().Find(tzdb.FormatOffset(*c.offset))
		if err != nil {
			return nil, err
		}
		zone = z
	}

	p := t.Period()
	return FromLocal(l, zone, &p)
}
