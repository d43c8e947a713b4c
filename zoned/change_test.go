package zoned

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngrash/go-zoned/civil"
)

func TestChangeCascade(t *testing.T) {
	base := civil.Time{
		Year: 2014, Month: time.July, Day: 15,
		Hour: 10, Minute: 20, Second: 30, Nanosecond: 40,
	}
	for _, tc := range []struct {
		name string
		opts []ChangeOpt
		want civil.Time
	}{
		{
			name: "hour resets minute, second and nanosecond",
			opts: []ChangeOpt{Hour(5)},
			want: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 5},
		},
		{
			name: "minute resets second and nanosecond",
			opts: []ChangeOpt{Minute(45)},
			want: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10, Minute: 45},
		},
		{
			name: "second resets nanosecond",
			opts: []ChangeOpt{Second(5)},
			want: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10, Minute: 20, Second: 5},
		},
		{
			name: "explicit lower field survives the cascade",
			opts: []ChangeOpt{Hour(5), Second(7)},
			want: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 5, Second: 7},
		},
		{
			name: "nanosecond alone keeps everything else",
			opts: []ChangeOpt{Nanosecond(99)},
			want: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10, Minute: 20, Second: 30, Nanosecond: 99},
		},
		{
			name: "date fields do not cascade",
			opts: []ChangeOpt{Year(2015), Month(time.March), Day(2)},
			want: civil.Time{Year: 2015, Month: time.March, Day: 2, Hour: 10, Minute: 20, Second: 30, Nanosecond: 40},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := mustLocal(t, base)
			got, err := v.Change(tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Local())
			assert.Equal(t, central, got.Zone())
		})
	}
}

func TestChangeConflictingZoneSpec(t *testing.T) {
	v := mustLocal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10})
	_, err := v.Change(ZoneName("Test/Eastern"), Offset(3600))
	require.ErrorIs(t, err, ErrConflictingZoneSpec)
}

func TestChangeZoneName(t *testing.T) {
	v := mustLocal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10})
	got, err := v.Change(ZoneName("Test/Eastern"))
	require.NoError(t, err)

	// The wall clock is preserved and reinterpreted in the new zone.
	assert.Equal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10}, got.Local())
	assert.Equal(t, "Test/Eastern", got.Zone().Name())
	assert.Equal(t, "EET", got.Abbrev())
	assert.Equal(t, v.Unix(), got.Unix(), "CEST and EET share the offset here")
}

func TestChangeZoneNameUnknown(t *testing.T) {
	v := mustLocal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10})
	_, err := v.Change(ZoneName("No/Such/Zone"))
	require.Error(t, err)
}

func TestChangeOffset(t *testing.T) {
	v := mustLocal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10})
	got, err := v.Change(Offset(5*3600 + 30*60))
	require.NoError(t, err)
	assert.Equal(t, "+05:30", got.Zone().Name())
	assert.Equal(t, 5*3600+30*60, got.UTCOffsetSeconds())
	assert.Equal(t, civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 10}, got.Local())
}

func TestChangeKeepsPeriodInFold(t *testing.T) {
	// 02:30 in the fold resolved to the later, post-transition period.
	known := cet
	v, err := FromLocal(civil.Time{Year: 2014, Month: time.October, Day: 26, Hour: 2, Minute: 30}, central, &known)
	require.NoError(t, err)
	require.Equal(t, cet, v.Period())

	// Changing the minute stays inside the fold; the resolved period
	// survives instead of snapping back to the pre-transition default.
	got, err := v.Change(Minute(45))
	require.NoError(t, err)
	assert.Equal(t, civil.Time{Year: 2014, Month: time.October, Day: 26, Hour: 2, Minute: 45}, got.Local())
	assert.Equal(t, cet, got.Period())
}

func TestChangeIntoGap(t *testing.T) {
	v := mustLocal(t, civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 1})
	got, err := v.Change(Hour(2), Minute(30))
	require.NoError(t, err)
	assert.Equal(t, civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 3, Minute: 30}, got.Local())
	assert.Equal(t, cest, got.Period())
}
