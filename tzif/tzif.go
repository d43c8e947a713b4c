// Package tzif reads TZif files according to RFC8536.
// https://datatracker.ietf.org/doc/html/rfc8536
//
// Decoding produces a flattened view of the file: one local time
// record per transition, each carrying the offset, designation and
// DST flag that take effect at that instant. This is the shape the
// tzdb package builds zones from; the raw block structure of the file
// is not exposed.
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// NOTE: All multi-octet integer values MUST be stored in network octet
// order format (high-order octet first, otherwise known as big-endian),
// with all bits significant.  Signed integer values MUST be represented
// using two's complement.
var order = binary.BigEndian

// Magic is the four-octet ASCII sequence "TZif" (0x54 0x5A 0x69 0x66),
// which identifies the file as utilizing the Time Zone Information Format.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// Version represents the version of a TZif file.
// In V1, time values are 32bit (four-octets) and in V2 upwards time
// values are 64bit (eight-octets).
type Version byte

const (
	// V1 represents a version 1 TZif file. It contains only the
	// version 1 header and data block.
	V1 Version = 0x00
	// V2 represents a version 2 TZif file. It contains the version 1
	// header and data block, a version 2+ header and data block, and
	// a footer.
	V2 Version = 0x32
	// V3 represents a version 3 TZif file. Same layout as V2; the
	// footer TZ string may use the extensions of RFC8536 section 3.3.1.
	V3 Version = 0x33
	// V4 represents a version 4 TZif file. Not specified in RFC8536,
	// but specified in the tzfile(5) man page. Same layout as V2 with
	// relaxed leap second rules.
	V4 Version = 0x34
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	case V4:
		return "V4 (0x34)"
	default:
		return fmt.Sprintf("<undefined version (%d)>", v)
	}
}

// Transition is a flattened local time record: the rule in force from
// At (a Unix timestamp, inclusive) until the At of the next record.
type Transition struct {
	// At is the instant the record takes effect. The first record of
	// a zone carries math.MinInt64: it describes local time before
	// any recorded change.
	At int64
	// OffsetSeconds is the number of seconds to be added to UT to
	// determine local time.
	OffsetSeconds int32
	// Abbrev is the time zone designation, e.g. "CET".
	Abbrev string
	// DST reports whether the record describes Daylight Saving Time.
	DST bool
}

// Zone is the decoded content of a TZif file.
type Zone struct {
	// Transitions in ascending order of At. Never empty: decoding a
	// file without transitions yields a single record starting at
	// math.MinInt64.
	Transitions []Transition
	// Footer is the TZ string of a version 2+ file. It describes
	// local time after the last transition and is captured verbatim,
	// not evaluated.
	Footer string
}

// header is the fixed-size part of a TZif header following the magic.
type header struct {
	Version  Version
	Reserved [15]byte

	// Isutcnt MUST either be zero or equal to typecnt.
	Isutcnt uint32
	// Isstdcnt MUST either be zero or equal to typecnt.
	Isstdcnt uint32
	// Leapcnt is the number of leap-second records.
	Leapcnt uint32
	// Timecnt is the number of transition times.
	Timecnt uint32
	// Typecnt is the number of local time type records. MUST NOT be zero.
	Typecnt uint32
	// Charcnt is the total number of octets used by the set of time
	// zone designations, including the trailing NUL of the last one.
	// MUST NOT be zero.
	Charcnt uint32
}

func readHeader(r io.Reader) (header, error) {
	var h header
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if !bytes.Equal(magic, Magic[:]) {
		return h, fmt.Errorf("invalid magic: %v", magic)
	}
	if err := binary.Read(r, order, &h); err != nil {
		return h, err
	}
	if err := h.validate(); err != nil {
		return h, err
	}
	return h, nil
}

func (h header) validate() error {
	if h.Typecnt == 0 {
		return fmt.Errorf("invalid typecnt: must not be zero")
	}
	if h.Charcnt == 0 {
		return fmt.Errorf("invalid charcnt: must not be zero")
	}
	if h.Isutcnt != 0 && h.Isutcnt != h.Typecnt {
		return fmt.Errorf("invalid isutcnt (%d): must be 0 or equal to typecnt (%d)", h.Isutcnt, h.Typecnt)
	}
	if h.Isstdcnt != 0 && h.Isstdcnt != h.Typecnt {
		return fmt.Errorf("invalid isstdcnt (%d): must be 0 or equal to typecnt (%d)", h.Isstdcnt, h.Typecnt)
	}
	return nil
}

// v1BlockSize returns the size in octets of the version 1 data block,
// which must be skipped to reach the version 2+ header.
func (h header) v1BlockSize() int64 {
	const timeSize = 4
	return int64(h.Timecnt)*timeSize + int64(h.Timecnt) +
		int64(h.Typecnt)*6 + int64(h.Charcnt) +
		int64(h.Leapcnt)*(timeSize+4) +
		int64(h.Isstdcnt) + int64(h.Isutcnt)
}

// Decode reads a TZif file. For version 2+ files the version 1 data
// block is skipped and the 64bit block is decoded; for version 1
// files the 32bit block is decoded.
func Decode(r io.Reader) (Zone, error) {
	h, err := readHeader(r)
	if err != nil {
		return Zone{}, fmt.Errorf("read v1 header: %w", err)
	}

	if h.Version == V1 {
		z, err := decodeBlock(r, h, 4)
		if err != nil {
			return Zone{}, fmt.Errorf("read v1 data block: %w", err)
		}
		return z, nil
	}

	if _, err := io.CopyN(io.Discard, r, h.v1BlockSize()); err != nil {
		return Zone{}, fmt.Errorf("skip v1 data block: %w", err)
	}
	h2, err := readHeader(r)
	if err != nil {
		return Zone{}, fmt.Errorf("read v2 header: %w", err)
	}
	if h2.Version != h.Version {
		return Zone{}, fmt.Errorf("inconsistent version: v1 header = %v, v2 header = %v", h.Version, h2.Version)
	}
	z, err := decodeBlock(r, h2, 8)
	if err != nil {
		return Zone{}, fmt.Errorf("read v2 data block: %w", err)
	}
	z.Footer, err = readFooter(r)
	if err != nil {
		return Zone{}, fmt.Errorf("read footer: %w", err)
	}
	return z, nil
}

// decodeBlock reads a data block with the given time value size and
// flattens it into transitions.
func decodeBlock(r io.Reader, h header, timeSize int) (Zone, error) {
	times := make([]int64, h.Timecnt)
	if timeSize == 4 {
		t32 := make([]int32, h.Timecnt)
		if err := binary.Read(r, order, &t32); err != nil {
			return Zone{}, fmt.Errorf("reading transition times: %w", err)
		}
		for i, t := range t32 {
			times[i] = int64(t)
		}
	} else {
		if err := binary.Read(r, order, &times); err != nil {
			return Zone{}, fmt.Errorf("reading transition times: %w", err)
		}
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return Zone{}, fmt.Errorf("transition times not strictly ascending at index %d", i)
		}
	}

	types := make([]uint8, h.Timecnt)
	if err := binary.Read(r, order, &types); err != nil {
		return Zone{}, fmt.Errorf("reading transition types: %w", err)
	}

	// Six octets per local time type record: utoff (4), dst (1), idx (1).
	recs := make([]struct {
		Utoff int32
		Dst   bool
		Idx   uint8
	}, h.Typecnt)
	for i := range recs {
		if err := binary.Read(r, order, &recs[i]); err != nil {
			return Zone{}, fmt.Errorf("reading local time type record: %w", err)
		}
	}

	designations := make([]byte, h.Charcnt)
	if _, err := io.ReadFull(r, designations); err != nil {
		return Zone{}, fmt.Errorf("reading time zone designations: %w", err)
	}
	if designations[len(designations)-1] != 0 {
		return Zone{}, fmt.Errorf("invalid time zone designations: missing null terminator")
	}

	// Leap second records and the std/wall and UT/local indicators do
	// not affect period resolution. Read past them.
	rest := int64(h.Leapcnt)*int64(timeSize+4) + int64(h.Isstdcnt) + int64(h.Isutcnt)
	if _, err := io.CopyN(io.Discard, r, rest); err != nil && err != io.EOF {
		return Zone{}, fmt.Errorf("skip trailing records: %w", err)
	}

	record := func(idx uint8, at int64) (Transition, error) {
		if int(idx) >= len(recs) {
			return Transition{}, fmt.Errorf("transition type %d out of range [0, %d)", idx, len(recs))
		}
		rec := recs[idx]
		abbrev, err := designation(designations, rec.Idx)
		if err != nil {
			return Transition{}, err
		}
		return Transition{At: at, OffsetSeconds: rec.Utoff, Abbrev: abbrev, DST: rec.Dst}, nil
	}

	// Local time before the first recorded transition is described by
	// time type 0, per common practice for files without explicit
	// initial state.
	first, err := record(0, math.MinInt64)
	if err != nil {
		return Zone{}, err
	}
	z := Zone{Transitions: []Transition{first}}
	for i, at := range times {
		t, err := record(types[i], at)
		if err != nil {
			return Zone{}, err
		}
		z.Transitions = append(z.Transitions, t)
	}
	return z, nil
}

// designation extracts the NUL-terminated string starting at idx.
func designation(b []byte, idx uint8) (string, error) {
	if int(idx) >= len(b) {
		return "", fmt.Errorf("designation index %d out of range [0, %d)", idx, len(b))
	}
	end := bytes.IndexByte(b[idx:], 0)
	if end < 0 {
		return "", fmt.Errorf("designation at index %d is not NUL-terminated", idx)
	}
	return string(b[int(idx) : int(idx)+end]), nil
}

var asciiNewLine = byte(0x0A)

// readFooter reads the newline-delimited TZ string that follows the
// version 2+ data block.
func readFooter(r io.Reader) (string, error) {
	buf := make([]byte, 1)
	if _, err := r.Read(buf); err != nil {
		return "", fmt.Errorf("reading newline: %w", err)
	}
	if buf[0] != asciiNewLine {
		return "", fmt.Errorf("expected newline: %v", buf[0])
	}
	var b []byte
	for {
		if _, err := r.Read(buf); err != nil {
			return "", fmt.Errorf("reading TZ string: %w", err)
		}
		if buf[0] == asciiNewLine {
			break
		}
		b = append(b, buf[0])
	}
	return string(b), nil
}
