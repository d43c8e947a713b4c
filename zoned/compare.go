package zoned

import "time"

// TimeLike is the capability a value needs to be compared with or
// subtracted from a zoned Time: it can express itself as a UTC
// instant. Both *Time and the plain-instant adapter Instant implement
// it, so code that accepts either is written against this interface.
type TimeLike interface {
	ActsUTC() time.Time
}

// Instant adapts a plain time.Time to the TimeLike interface.
type Instant time.Time

// ActsUTC returns the wrapped time converted to UTC.
func (i Instant) ActsUTC() time.Time { return time.Time(i).UTC() }

// ActsUTC returns the instant this value represents.
func (t *Time) ActsUTC() time.Time { return t.UTC() }

// Compare orders t against any time-like value by instant. Two zoned
// times in different zones representing the same instant compare
// equal. It returns -1, 0 or +1.
func (t *Time) Compare(o TimeLike) int {
	return t.UTC().Compare(o.ActsUTC())
}

// Equal reports instant equality: the zone plays no part.
func (t *Time) Equal(o TimeLike) bool { return t.Compare(o) == 0 }

// Eql reports representation equality of the coerced instants: equal
// Unix seconds and an identical nanosecond field, with no rounding or
// truncation applied. It is strictly at least as demanding as Equal.
func (t *Time) Eql(o TimeLike) bool {
	a, b := t.UTC(), o.ActsUTC()
	return a.Unix() == b.Unix() && a.Nanosecond() == b.Nanosecond()
}

// Before reports whether t is earlier than o.
func (t *Time) Before(o TimeLike) bool { return t.Compare(o) < 0 }

// After reports whether t is later than o.
func (t *Time) After(o TimeLike) bool { return t.Compare(o) > 0 }
