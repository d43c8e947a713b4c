package civil

import (
	"time"

	"github.com/ngrash/go-zoned/internal/datemath"
)

// Add shifts the wall clock by a fixed-length duration. Civil time
// has no zone transitions, so a day on this clock is always 86400
// seconds long.
func (t Time) Add(d time.Duration) Time {
	u := time.Unix(t.Unix(), int64(t.Nanosecond)).UTC().Add(d)
	return FromTime(u)
}

// AddDate advances t on the calendar by the given number of years,
// months and days.
//
// Year and month arithmetic keeps the day-of-month nominally fixed
// and clamps it to the length of the target month, so January 31st
// plus one month is the last day of February rather than an overflow
// into March. Day arithmetic then rolls through month and year
// boundaries as needed. Clamping before rolling is what keeps
// wall-clock anchored arithmetic on "the same day next month"
// semantics.
func (t Time) AddDate(years, months, days int) Time {
	m := int(t.Month) - 1 + months
	y := t.Year + years + m/12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)

	day := t.Day
	if max := datemath.DaysInMonth(int(month), y); day > max {
		day = max
	}

	res := Time{y, month, day, t.Hour, t.Minute, t.Second, t.Nanosecond}
	if days != 0 {
		// Days are exact on a civil clock, so rolling through month
		// boundaries reduces to second arithmetic.
		res = FromUnix(res.Unix()+int64(days)*secondsPerDay, res.Nanosecond)
	}
	return res
}
