package tzdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeZoneFile installs a minimal version 1 TZif file for a zone with
// a single CET to CEST transition.
func writeZoneFile(t *testing.T, dir, name string) {
	t.Helper()
	var b bytes.Buffer
	b.WriteString("TZif")
	b.Write(make([]byte, 16)) // version 1, reserved
	for _, cnt := range []uint32{0, 0, 0, 1, 2, 9} {
		if err := binary.Write(&b, binary.BigEndian, cnt); err != nil {
			t.Fatal(err)
		}
	}
	if err := binary.Write(&b, binary.BigEndian, int32(springForward)); err != nil {
		t.Fatal(err)
	}
	b.WriteByte(1)
	for _, rec := range []struct {
		utoff int32
		dst   bool
		idx   uint8
	}{{3600, false, 0}, {7200, true, 4}} {
		for _, v := range []any{rec.utoff, rec.dst, rec.idx} {
			if err := binary.Write(&b, binary.BigEndian, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	b.WriteString("CET\x00CEST\x00")

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindUTC(t *testing.T) {
	db := Open(t.TempDir())
	for _, name := range []string{"UTC", "UCT"} {
		z, err := db.Find(name)
		if err != nil {
			t.Fatalf("Find(%q) error: %v", name, err)
		}
		if z != UTC {
			t.Errorf("Find(%q) = %v, want UTC", name, z)
		}
	}
}

func TestFindRegistered(t *testing.T) {
	db := Open(t.TempDir())
	z := centralZone(t)
	db.Register(z)
	got, err := db.Find("Test/Central")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if got != z {
		t.Errorf("Find() = %v, want the registered zone", got)
	}
}

func TestFindLoadsZoneFile(t *testing.T) {
	dir := t.TempDir()
	writeZoneFile(t, dir, "Test/FromFile")
	db := Open(dir)

	z, err := db.Find("Test/FromFile")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if got := z.PeriodForUTC(springForward); got != cest {
		t.Errorf("PeriodForUTC() = %v, want %v", got, cest)
	}

	// Second lookup hits the memoized zone.
	again, err := db.Find("Test/FromFile")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if again != z {
		t.Error("Find() decoded the file again instead of returning the memoized zone")
	}
}

func TestFindOffset(t *testing.T) {
	db := Open(t.TempDir())
	for _, tc := range []struct {
		in          string
		wantName    string
		wantSeconds int
	}{
		{"+05:00", "+05:00", 5 * 3600},
		{"-0930", "-09:30", -(9*3600 + 30*60)},
		{"+05", "+05:00", 5 * 3600},
		{"18000", "+05:00", 18000},
	} {
		z, err := db.Find(tc.in)
		if err != nil {
			t.Errorf("Find(%q) error: %v", tc.in, err)
			continue
		}
		if z.Name() != tc.wantName {
			t.Errorf("Find(%q).Name() = %q, want %q", tc.in, z.Name(), tc.wantName)
		}
		if got := z.PeriodForUTC(0).OffsetSeconds; got != tc.wantSeconds {
			t.Errorf("Find(%q) offset = %d, want %d", tc.in, got, tc.wantSeconds)
		}
	}
}

func TestFindNotFound(t *testing.T) {
	db := Open(t.TempDir())
	for _, name := range []string{"No/Such/Zone", "../etc/passwd", ""} {
		_, err := db.Find(name)
		if !errors.Is(err, ErrZoneNotFound) {
			t.Errorf("Find(%q) error = %v, want ErrZoneNotFound", name, err)
		}
	}
}
