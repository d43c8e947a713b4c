package tzdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ngrash/go-zoned/tzif"
)

// ErrZoneNotFound is returned by Find when a name resolves neither to
// a registered zone, a zone file, nor a fixed offset.
var ErrZoneNotFound = errors.New("zone not found")

// defaultDirs are the places compiled zone files are commonly
// installed on Unix-like systems.
var defaultDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// DB maps zone names to zones. Lookups first consult registered
// zones, then the configured zoneinfo directories, decoding TZif
// files on first use and memoizing the result. The zero value has no
// directories; use Open for the platform defaults.
type DB struct {
	mu    sync.Mutex
	dirs  []string
	zones map[string]*Zone
}

// Open returns a database reading from the given zoneinfo
// directories. Without arguments the platform default directories are
// searched. UTC is always resolvable.
func Open(dirs ...string) *DB {
	if len(dirs) == 0 {
		dirs = defaultDirs
	}
	return &DB{dirs: dirs}
}

// Register adds z to the database, replacing any zone with the same
// name.
func (db *DB) Register(z *Zone) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.zones == nil {
		db.zones = make(map[string]*Zone)
	}
	db.zones[z.Name()] = z
}

// Find resolves a zone name or a fixed offset.
//
// Names are looked up among registered zones first, then in the
// zoneinfo directories. "UTC" and "UCT" always resolve. A string that
// is not a known name is parsed as an offset: "+05:00", "-0930",
// "+05" or plain seconds such as "18000" yield a fixed zone named
// after the offset. Anything else wraps ErrZoneNotFound.
func (db *DB) Find(nameOrOffset string) (*Zone, error) {
	if nameOrOffset == "UTC" || nameOrOffset == "UCT" {
		return UTC, nil
	}

	db.mu.Lock()
	z, ok := db.zones[nameOrOffset]
	db.mu.Unlock()
	if ok {
		return z, nil
	}

	if validName(nameOrOffset) {
		if z, err := db.load(nameOrOffset); err == nil {
			return z, nil
		}
	}

	if sec, err := ParseOffset(nameOrOffset); err == nil {
		return FixedZone(FormatOffset(sec), sec), nil
	}

	return nil, fmt.Errorf("%q: %w", nameOrOffset, ErrZoneNotFound)
}

// validName rejects names that would escape the zoneinfo directories.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return false
	}
	return true
}

// load reads and decodes the zone file for name, memoizing the result.
func (db *DB) load(name string) (*Zone, error) {
	var firstErr error
	for _, dir := range db.dirs {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		data, err := tzif.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode zone %s: %w", name, err)
		}
		z := FromTZif(name, data)
		db.Register(z)
		return z, nil
	}
	if firstErr == nil {
		firstErr = os.ErrNotExist
	}
	return nil, fmt.Errorf("load zone %s: %w", name, firstErr)
}
