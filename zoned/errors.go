package zoned

import (
	"errors"
	"fmt"

	"github.com/ngrash/go-zoned/civil"
)

// ErrConflictingZoneSpec is returned by Change when both a zone name
// and an explicit offset are given. The two are mutually exclusive;
// the value is left untouched.
var ErrConflictingZoneSpec = errors.New("zone name and explicit offset are mutually exclusive")

// AmbiguousLocalTimeError reports that a wall-clock time could not be
// resolved in its zone even after probing past a possible daylight
// saving gap.
type AmbiguousLocalTimeError struct {
	// Local is the wall-clock time that failed to resolve.
	Local civil.Time
	// Zone is the name of the zone it was interpreted in.
	Zone string
}

func (e *AmbiguousLocalTimeError) Error() string {
	return fmt.Sprintf("cannot resolve local time %s in %s: no period found within %d hours", e.Local, e.Zone, gapRetryLimit)
}

// UnsupportedFormatError reports a lookup of a named format that is
// not registered. The message carries the zoned rendering of the
// value, never its internal local-time representation.
type UnsupportedFormatError struct {
	// Name is the format that was requested.
	Name string
	// Rendering is the default rendering of the value the format was
	// requested for.
	Rendering string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unknown time format %q for %s", e.Name, e.Rendering)
}
