package zoned

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzdb"
)

// String renders the local wall clock followed by the signed numeric
// UTC offset: "2014-10-26 01:30:00 +02:00". A zero offset renders
// the literal "UTC" suffix instead of "+00:00".
func (t *Time) String() string {
	l := t.Local()
	suffix := "UTC"
	if off := t.UTCOffsetSeconds(); off != 0 {
		suffix = tzdb.FormatOffset(off)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %s",
		l.Year, int(l.Month), l.Day, l.Hour, l.Minute, l.Second, suffix)
}

// A Formatter renders a zoned time for a named format.
type Formatter func(*Time) string

var formats = struct {
	sync.RWMutex
	m map[string]Formatter
}{
	m: map[string]Formatter{
		"default": (*Time).String,
		// The db format renders the UTC instant, which is what
		// belongs in a datastore.
		"db": func(t *Time) string {
			return civil.FromTime(t.UTC()).String()
		},
		"iso8601": func(t *Time) string {
			if off := t.UTCOffsetSeconds(); off != 0 {
				return t.Strftime("%FT%T") + tzdb.FormatOffset(off)
			}
			return t.Strftime("%FT%TZ")
		},
		"rfc822": func(t *Time) string {
			return t.Strftime("%a, %d %b %Y %H:%M:%S %z")
		},
		"number": func(t *Time) string { return t.Strftime("%Y%m%d%H%M%S") },
		"time":   func(t *Time) string { return t.Strftime("%H:%M") },
		"short":  func(t *Time) string { return t.Strftime("%d %b %H:%M") },
		"long":   func(t *Time) string { return t.Strftime("%B %d, %Y %H:%M") },
	},
}

// RegisterFormat adds or replaces a named format.
func RegisterFormat(name string, f Formatter) {
	formats.Lock()
	defer formats.Unlock()
	formats.m[name] = f
}

// Format renders t with a registered named format. An unknown name
// yields an UnsupportedFormatError carrying the zoned rendering of t.
func (t *Time) Format(name string) (string, error) {
	formats.RLock()
	f, ok := formats.m[name]
	formats.RUnlock()
	if !ok {
		return "", &UnsupportedFormatError{Name: name, Rendering: t.String()}
	}
	return f(t), nil
}

// Strftime renders t according to a strftime-style layout.
//
// The %Z directive is substituted with the resolved zone designation
// before the generic expansion runs, so the expander itself needs no
// zone awareness. Every other directive renders against the wall
// clock at the resolved offset.
func (t *Time) Strftime(layout string) string {
	layout = strings.ReplaceAll(layout, "%Z", t.Abbrev())
	return strftime(layout, t.Local(), t.UTCOffsetSeconds(), t.Unix())
}

// strftime expands layout against a wall clock and its offset. The
// supported directive set is the portable core of strftime(3) plus
// the %L/%N sub-second and %:z extensions.
func strftime(layout string, l civil.Time, offset int, unix int64) string {
	var b strings.Builder
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i+1 == len(layout) {
			b.WriteByte(c)
			continue
		}
		i++
		d := layout[i]
		if d == ':' && i+1 < len(layout) && layout[i+1] == 'z' {
			i++
			b.WriteString(tzdb.FormatOffset(offset))
			continue
		}
		switch d {
		case 'Y':
			fmt.Fprintf(&b, "%04d", l.Year)
		case 'C':
			fmt.Fprintf(&b, "%02d", l.Year/100)
		case 'y':
			fmt.Fprintf(&b, "%02d", l.Year%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(l.Month))
		case 'B':
			b.WriteString(l.Month.String())
		case 'b', 'h':
			b.WriteString(l.Month.String()[:3])
		case 'd':
			fmt.Fprintf(&b, "%02d", l.Day)
		case 'e':
			fmt.Fprintf(&b, "%2d", l.Day)
		case 'j':
			fmt.Fprintf(&b, "%03d", l.YearDay())
		case 'H':
			fmt.Fprintf(&b, "%02d", l.Hour)
		case 'k':
			fmt.Fprintf(&b, "%2d", l.Hour)
		case 'I':
			fmt.Fprintf(&b, "%02d", hour12(l.Hour))
		case 'l':
			fmt.Fprintf(&b, "%2d", hour12(l.Hour))
		case 'M':
			fmt.Fprintf(&b, "%02d", l.Minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", l.Second)
		case 'L':
			fmt.Fprintf(&b, "%03d", l.Nanosecond/int(time.Millisecond))
		case 'N':
			fmt.Fprintf(&b, "%09d", l.Nanosecond)
		case 'p':
			b.WriteString(meridian(l.Hour, "AM", "PM"))
		case 'P':
			b.WriteString(meridian(l.Hour, "am", "pm"))
		case 'z':
			b.WriteString(numericOffset(offset))
		case 'A':
			b.WriteString(l.Weekday().String())
		case 'a':
			b.WriteString(l.Weekday().String()[:3])
		case 'u':
			fmt.Fprintf(&b, "%d", isoWeekday(l.Weekday()))
		case 'w':
			fmt.Fprintf(&b, "%d", int(l.Weekday()))
		case 's':
			fmt.Fprintf(&b, "%d", unix)
		case 'F':
			fmt.Fprintf(&b, "%04d-%02d-%02d", l.Year, int(l.Month), l.Day)
		case 'T':
			fmt.Fprintf(&b, "%02d:%02d:%02d", l.Hour, l.Minute, l.Second)
		case 'D':
			fmt.Fprintf(&b, "%02d/%02d/%02d", int(l.Month), l.Day, l.Year%100)
		case 'R':
			fmt.Fprintf(&b, "%02d:%02d", l.Hour, l.Minute)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '%':
			b.WriteByte('%')
		default:
			// Unknown directive: emit verbatim, like strftime(3).
			b.WriteByte('%')
			b.WriteByte(d)
		}
	}
	return b.String()
}

// numericOffset renders an offset as "+0200" without a colon.
func numericOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d%02d", sign, seconds/3600, seconds%3600/60)
}

func hour12(h int) int {
	h = h % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridian(h int, am, pm string) string {
	if h < 12 {
		return am
	}
	return pm
}

func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}
