package zoned

import (
	"time"

	"github.com/ngrash/go-zoned/tzdb"
)

// Process-wide defaults. There is no implicit ambient lookup: the
// defaults are explicit state with one documented initialization
// point. Set them once at startup, before any decoding or
// Change(ZoneName) call relies on them; they are not synchronized for
// later replacement.
var (
	defaultDB   = tzdb.Open()
	defaultZone = tzdb.UTC
)

// SetDefaultDB replaces the database used to resolve zone names
// during decoding and Change. Call once at startup.
func SetDefaultDB(db *tzdb.DB) { defaultDB = db }

// DefaultDB returns the database used to resolve zone names.
func DefaultDB() *tzdb.DB { return defaultDB }

// SetDefaultZone replaces the zone Now uses when none is specified.
// Call once at startup.
func SetDefaultZone(z *tzdb.Zone) { defaultZone = z }

// DefaultZone returns the zone used when none is specified.
func DefaultZone() *tzdb.Zone { return defaultZone }

// Now returns the current instant in the default zone.
func Now() *Time {
	return FromUTC(time.Now().UTC(), defaultZone)
}
