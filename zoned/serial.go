package zoned

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-zoned/civil"
)

// yamlTime is the structured encoding shape: the UTC instant, the
// zone name and the wall-clock rendering.
type yamlTime struct {
	UTC  time.Time `yaml:"utc"`
	Zone string    `yaml:"zone"`
	Time string    `yaml:"time"`
}

// MarshalYAML encodes the value as {utc, zone, time}.
func (t *Time) MarshalYAML() (interface{}, error) {
	return yamlTime{
		UTC:  t.UTC(),
		Zone: t.zone.Name(),
		Time: t.Local().String(),
	}, nil
}

// UnmarshalYAML reconstructs a value from the {utc, zone, time}
// shape. The utc instant is authoritative and reinterpreted as UTC;
// the zone is resolved by name through the default database. The
// time field, when it parses, pre-populates the wall-clock
// representation.
func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	var repr yamlTime
	if err := value.Decode(&repr); err != nil {
		return fmt.Errorf("decode zoned time: %w", err)
	}
	z, err := DefaultDB().Find(repr.Zone)
	if err != nil {
		return fmt.Errorf("decode zoned time: %w", err)
	}
	*t = *FromUTC(repr.UTC.UTC(), z)
	if ct, err := civil.Parse(repr.Time); err == nil {
		t.local, t.hasLocal = ct, true
	}
	return nil
}

// cborTime is the compact encoding shape: the ordered triple of UTC
// instant, zone name and wall-clock rendering.
type cborTime struct {
	_     struct{} `cbor:",toarray"`
	UTC   string
	Zone  string
	Local string
}

// MarshalCBOR encodes the value as the ordered triple
// [utc, zone, local].
func (t *Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborTime{
		UTC:   t.UTC().Format(time.RFC3339Nano),
		Zone:  t.zone.Name(),
		Local: t.Local().String(),
	})
}

// UnmarshalCBOR reconstructs a value from the ordered triple. The
// instant is coerced to UTC and the zone looked up by name through
// the default database; the local element is re-derived rather than
// trusted.
func (t *Time) UnmarshalCBOR(data []byte) error {
	var repr cborTime
	if err := cbor.Unmarshal(data, &repr); err != nil {
		return fmt.Errorf("decode zoned time: %w", err)
	}
	u, err := time.Parse(time.RFC3339Nano, repr.UTC)
	if err != nil {
		return fmt.Errorf("decode zoned time: %w", err)
	}
	z, err := DefaultDB().Find(repr.Zone)
	if err != nil {
		return fmt.Errorf("decode zoned time: %w", err)
	}
	*t = *FromUTC(u.UTC(), z)
	return nil
}

// MarshalJSON encodes the value as an RFC3339 string carrying the
// resolved offset. JSON decoding is not implemented: the wire string
// does not name the zone, only its offset, so a round-trip could not
// restore the zone. Use the YAML or CBOR forms for round-trips.
func (t *Time) MarshalJSON() ([]byte, error) {
	loc := time.FixedZone(t.Abbrev(), t.UTCOffsetSeconds())
	return json.Marshal(t.UTC().In(loc).Format(time.RFC3339Nano))
}
