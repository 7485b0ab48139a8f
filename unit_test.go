package kairos

import "testing"

func TestGranularity_Order(t *testing.T) {
	order := []Granularity{
		GranularityEra, GranularityYear, GranularityMonth, GranularityDay,
		GranularityHour, GranularityMinute, GranularitySecond, GranularityNanosecond,
	}
	for i := 1; i < len(order); i++ {
		if !order[i].FinerThan(order[i-1]) {
			t.Errorf("%s should be finer than %s", order[i], order[i-1])
		}
		if !order[i-1].CoarserThan(order[i]) {
			t.Errorf("%s should be coarser than %s", order[i-1], order[i])
		}
	}
}

func TestGranularity_Represented(t *testing.T) {
	day := GranularityDay.Represented()
	for _, g := range []Granularity{GranularityEra, GranularityYear, GranularityMonth, GranularityDay} {
		if !day.Has(g) {
			t.Errorf("day representation missing %s", g)
		}
	}
	for _, g := range []Granularity{GranularityHour, GranularityMinute, GranularitySecond, GranularityNanosecond} {
		if day.Has(g) {
			t.Errorf("day representation should not include %s", g)
		}
	}
	if got := day.String(); got != "era|year|month|day" {
		t.Errorf("FieldSet.String = %q", got)
	}
}

func TestGranularity_TimeCarrying(t *testing.T) {
	for g := GranularityEra; g <= GranularityDay; g++ {
		if g.TimeCarrying() {
			t.Errorf("%s must not be time-carrying", g)
		}
	}
	for g := GranularityHour; g <= GranularityNanosecond; g++ {
		if !g.TimeCarrying() {
			t.Errorf("%s must be time-carrying", g)
		}
	}
}

func TestFieldSet_Finest(t *testing.T) {
	if g, ok := GranularityMinute.Represented().Finest(); !ok || g != GranularityMinute {
		t.Errorf("Finest = %v, %v", g, ok)
	}
	if _, ok := FieldSet(0).Finest(); ok {
		t.Error("empty set has no finest field")
	}
}

func TestUnitMarkers_MatchGranularities(t *testing.T) {
	if g := granularityOf[Era](); g != GranularityEra {
		t.Errorf("Era marker = %s", g)
	}
	if g := granularityOf[Day](); g != GranularityDay {
		t.Errorf("Day marker = %s", g)
	}
	if g := granularityOf[Nanosecond](); g != GranularityNanosecond {
		t.Errorf("Nanosecond marker = %s", g)
	}
}

func TestComponents_Builders(t *testing.T) {
	parts := DateTime(2024, 6, 15, 12, 30, 45)
	want := FieldOf(GranularityYear).
		With(GranularityMonth).
		With(GranularityDay).
		With(GranularityHour).
		With(GranularityMinute).
		With(GranularitySecond)
	if parts.Which != want {
		t.Fatalf("DateTime fields = %s, want %s", parts.Which, want)
	}
	if v, ok := parts.Get(GranularityHour); !ok || v != 12 {
		t.Errorf("hour = %d, %v", v, ok)
	}
	if _, ok := parts.Get(GranularityEra); ok {
		t.Error("era should be unsupplied")
	}

	restricted := parts.Restrict(GranularityMonth.Represented())
	if restricted.Which != FieldOf(GranularityYear).With(GranularityMonth) {
		t.Errorf("Restrict fields = %s", restricted.Which)
	}
	if restricted.Month != 6 || restricted.Year != 2024 {
		t.Errorf("Restrict lost values: %+v", restricted)
	}
}
