package kairostest

import (
	"testing"
	"time"

	"github.com/blockberries/kairos"
	"github.com/blockberries/kairos/types"
)

// RunEngineCompliance runs a standard contract suite against a
// calendar engine. It pins the behaviors kairos inherits rather than
// owns — component extraction, strict-match normalization, arithmetic
// overflow handling, DST-aware day lengths — so an engine swap that
// changes them fails loudly here instead of deep inside application
// code.
//
// The factory should return a fresh engine instance for each test.
func RunEngineCompliance(t *testing.T, factory func() kairos.Engine) {
	t.Helper()

	t.Run("extract_match_agreement", func(t *testing.T) {
		eng := factory()
		in := MakeInstant(2024, time.June, 15, 12, 30, 45)
		parts, _ := eng.Extract(in, time.UTC, kairos.GranularityDay.Represented())
		matched, actual, err := eng.Match(parts, time.UTC)
		if err != nil {
			t.Fatalf("Match failed: %v", err)
		}
		_, dayOrigin := eng.Extract(in, time.UTC, kairos.GranularityDay.Represented())
		if !matched.Equal(dayOrigin) {
			t.Fatalf("Match(%+v) = %v, want day origin %v", parts, matched, dayOrigin)
		}
		for g := kairos.GranularityEra; g <= kairos.GranularityDay; g++ {
			want, _ := parts.Get(g)
			got, ok := actual.Get(g)
			if !ok || got != want {
				t.Fatalf("Match round-trip lost %s: got %d want %d", g, got, want)
			}
		}
	})

	t.Run("extract_restricts_fields", func(t *testing.T) {
		eng := factory()
		in := MakeInstant(2024, time.June, 15, 12, 30, 45)
		parts, _ := eng.Extract(in, time.UTC, kairos.GranularityMonth.Represented())
		if _, ok := parts.Get(kairos.GranularityDay); ok {
			t.Error("month-restricted extraction leaked the day field")
		}
		if _, ok := parts.Get(kairos.GranularityYear); !ok {
			t.Error("month-restricted extraction dropped the year field")
		}
	})

	t.Run("period_origin_is_contained", func(t *testing.T) {
		eng := factory()
		in := MakeInstant(2024, time.June, 15, 12, 30, 45)
		for _, g := range []kairos.Granularity{
			kairos.GranularityYear, kairos.GranularityMonth,
			kairos.GranularityDay, kairos.GranularityHour,
		} {
			_, origin := eng.Extract(in, time.UTC, g.Represented())
			if origin.After(in) {
				t.Errorf("%s origin %v is after the instant %v", g, origin, in)
			}
			_, originAgain := eng.Extract(origin, time.UTC, g.Represented())
			if !originAgain.Equal(origin) {
				t.Errorf("%s origin is not a fixed point: %v → %v", g, origin, originAgain)
			}
		}
	})

	t.Run("month_overflow_inherited", func(t *testing.T) {
		// One month after January 31 is whatever the host calendar
		// says. This pins the inherited normalization (overflow
		// carries into the following month) without re-specifying it.
		eng := factory()
		jan31 := MakeInstant(2025, time.January, 31, 0, 0, 0)
		shifted := eng.Shift(jan31, 1, kairos.GranularityMonth, time.UTC)
		parts, _ := eng.Extract(shifted, time.UTC, kairos.GranularityDay.Represented())
		month, _ := parts.Get(kairos.GranularityMonth)
		if month == 1 {
			t.Fatalf("Shift by one month did not move: %+v", parts)
		}
		if month != 2 && month != 3 {
			t.Fatalf("January 31 + 1 month landed in month %d", month)
		}
	})

	t.Run("successor_inverse", func(t *testing.T) {
		eng := factory()
		in := MakeInstant(2024, time.March, 1, 0, 0, 0)
		for _, g := range []kairos.Granularity{
			kairos.GranularityYear, kairos.GranularityMonth,
			kairos.GranularityDay, kairos.GranularityHour,
			kairos.GranularityMinute, kairos.GranularitySecond,
		} {
			back := eng.Prev(eng.Next(in, g, time.UTC), g, time.UTC)
			if !back.Equal(in) {
				t.Errorf("%s: Prev(Next(x)) = %v, want %v", g, back, in)
			}
		}
	})

	t.Run("dst_day_not_24h", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("zone database unavailable: %v", err)
		}
		eng := factory()
		// 2025-03-09: US spring-forward, a 23-hour day.
		in := types.FromTime(time.Date(2025, time.March, 9, 12, 0, 0, 0, loc))
		_, dayStart := eng.Extract(in, loc, kairos.GranularityDay.Represented())
		nextStart := eng.Next(dayStart, kairos.GranularityDay, loc)
		if got := nextStart.Sub(dayStart); !got.Equal(types.Seconds(23 * 3600)) {
			t.Errorf("spring-forward day length = %v, want 23h", got)
		}
	})

	t.Run("clone_is_independent", func(t *testing.T) {
		eng := factory()
		clone := eng.Clone()
		if clone == nil {
			t.Fatal("Clone returned nil")
		}
		if clone.Calendar() != eng.Calendar() {
			t.Fatalf("Clone changed calendar: %s → %s", eng.Calendar(), clone.Calendar())
		}
	})
}
