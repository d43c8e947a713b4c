package tzdb

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzif"
)

var (
	cet  = Period{OffsetSeconds: 3600, Abbrev: "CET"}
	cest = Period{OffsetSeconds: 7200, Abbrev: "CEST", DST: true}

	// Spring forward 2014-03-30 02:00 CET, fall back 2014-10-26 03:00 CEST.
	springForward = int64(1396141200)
	fallBack      = int64(1414285200)
)

func centralZone(t *testing.T) *Zone {
	t.Helper()
	z, err := Build("Test/Central", Template{
		Periods: []Period{cet, cest},
		Changes: []Change{
			{Start: springForward, PeriodIndex: 1},
			{Start: fallBack, PeriodIndex: 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return z
}

func TestBuildRejectsEmptyPeriods(t *testing.T) {
	if _, err := Build("Bad/Zone", Template{}); err == nil {
		t.Fatal("Build() = nil error, want no periods error")
	}
}

func TestBuildRejectsUnorderedChanges(t *testing.T) {
	_, err := Build("Bad/Zone", Template{
		Periods: []Period{cet},
		Changes: []Change{{Start: 100, PeriodIndex: 0}, {Start: 100, PeriodIndex: 0}},
	})
	if err == nil {
		t.Fatal("Build() = nil error, want ordering error")
	}
}

func TestBuildRejectsPeriodIndexOutOfRange(t *testing.T) {
	_, err := Build("Bad/Zone", Template{
		Periods: []Period{cet},
		Changes: []Change{{Start: 100, PeriodIndex: 1}},
	})
	if err == nil {
		t.Fatal("Build() = nil error, want index error")
	}
}

func TestPeriodForUTC(t *testing.T) {
	z := centralZone(t)
	for _, tc := range []struct {
		sec  int64
		want Period
	}{
		{math.MinInt64, cet},
		{springForward - 1, cet},
		{springForward, cest},
		{fallBack - 1, cest},
		{fallBack, cet},
		{math.MaxInt64, cet},
	} {
		if got := z.PeriodForUTC(tc.sec); got != tc.want {
			t.Errorf("PeriodForUTC(%d) = %v, want %v", tc.sec, got, tc.want)
		}
	}
}

func TestNextTransition(t *testing.T) {
	z := centralZone(t)

	at, p, ok := z.NextTransition(0)
	if !ok || at != springForward || p != cest {
		t.Errorf("NextTransition(0) = (%d, %v, %t), want (%d, %v, true)", at, p, ok, springForward, cest)
	}

	at, p, ok = z.NextTransition(springForward)
	if !ok || at != fallBack || p != cet {
		t.Errorf("NextTransition(%d) = (%d, %v, %t), want (%d, %v, true)", springForward, at, p, ok, fallBack, cet)
	}

	if _, _, ok := z.NextTransition(fallBack); ok {
		t.Errorf("NextTransition(%d) = ok, want no further transition", fallBack)
	}
}

func TestPeriodsForLocal(t *testing.T) {
	z := centralZone(t)
	for _, tc := range []struct {
		name  string
		local civil.Time
		want  []Period
	}{
		{
			name:  "unambiguous winter",
			local: civil.Time{Year: 2014, Month: time.January, Day: 15, Hour: 12},
			want:  []Period{cet},
		},
		{
			name:  "unambiguous summer",
			local: civil.Time{Year: 2014, Month: time.July, Day: 15, Hour: 12},
			want:  []Period{cest},
		},
		{
			name:  "gap",
			local: civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 2, Minute: 30},
			want:  nil,
		},
		{
			name:  "fold, earlier period first",
			local: civil.Time{Year: 2014, Month: time.October, Day: 26, Hour: 2, Minute: 30},
			want:  []Period{cest, cet},
		},
		{
			name:  "last instant before the gap",
			local: civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 1, Minute: 59, Second: 59},
			want:  []Period{cet},
		},
		{
			name:  "first instant after the gap",
			local: civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 3},
			want:  []Period{cest},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := z.PeriodsForLocal(tc.local)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("PeriodsForLocal(%v) mismatch (-want +got):\n%s", tc.local, diff)
			}
		})
	}
}

func TestPeriodForLocalGap(t *testing.T) {
	z := centralZone(t)
	_, err := z.PeriodForLocal(civil.Time{Year: 2014, Month: time.March, Day: 30, Hour: 2, Minute: 30})
	if !errors.Is(err, ErrNoSuchLocalTime) {
		t.Fatalf("PeriodForLocal() error = %v, want ErrNoSuchLocalTime", err)
	}
}

func TestPeriodForLocalFold(t *testing.T) {
	z := centralZone(t)
	p, err := z.PeriodForLocal(civil.Time{Year: 2014, Month: time.October, Day: 26, Hour: 2, Minute: 30})
	if err != nil {
		t.Fatalf("PeriodForLocal() error: %v", err)
	}
	if p != cest {
		t.Errorf("PeriodForLocal() = %v, want the pre-transition period %v", p, cest)
	}
}

func TestFixedZone(t *testing.T) {
	z := FixedZone("+05:00", 5*3600)
	if z.Name() != "+05:00" {
		t.Errorf("Name() = %q, want %q", z.Name(), "+05:00")
	}
	want := Period{OffsetSeconds: 5 * 3600, Abbrev: "+05:00"}
	if got := z.PeriodForUTC(0); got != want {
		t.Errorf("PeriodForUTC(0) = %v, want %v", got, want)
	}
	if _, _, ok := z.NextTransition(0); ok {
		t.Error("NextTransition() = ok, want none for a fixed zone")
	}
}

func TestFromTZif(t *testing.T) {
	z := FromTZif("Test/FromTZif", tzif.Zone{
		Transitions: []tzif.Transition{
			{At: math.MinInt64, OffsetSeconds: 3600, Abbrev: "CET"},
			{At: springForward, OffsetSeconds: 7200, Abbrev: "CEST", DST: true},
		},
	})
	if got := z.PeriodForUTC(springForward - 1); got != cet {
		t.Errorf("PeriodForUTC(before) = %v, want %v", got, cet)
	}
	if got := z.PeriodForUTC(springForward); got != cest {
		t.Errorf("PeriodForUTC(after) = %v, want %v", got, cest)
	}
}
