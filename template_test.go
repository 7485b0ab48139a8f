package kairos

import (
	"reflect"
	"testing"
)

func TestDefaultTemplate_Gregorian(t *testing.T) {
	cases := []struct {
		g    Granularity
		want []TemplateField
	}{
		{GranularityYear, []TemplateField{TemplateYear}},
		{GranularityMonth, []TemplateField{TemplateYear, TemplateMonth}},
		{GranularityDay, []TemplateField{TemplateYear, TemplateMonth, TemplateWeekdayDay}},
		{GranularityHour, []TemplateField{
			TemplateYear, TemplateMonth, TemplateWeekdayDay, TemplateHour, TemplateZone,
		}},
		{GranularitySecond, []TemplateField{
			TemplateYear, TemplateMonth, TemplateWeekdayDay,
			TemplateHour, TemplateMinute, TemplateSecond, TemplateZone,
		}},
		{GranularityNanosecond, []TemplateField{
			TemplateYear, TemplateMonth, TemplateWeekdayDay,
			TemplateHour, TemplateMinute, TemplateSecond, TemplateSubsecond, TemplateZone,
		}},
	}
	for _, tc := range cases {
		got := DefaultTemplate(tc.g, CalendarGregorian)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.g, got, tc.want)
		}
	}
}

func TestDefaultTemplate_EraOnlyWhenCalendarDisplaysIt(t *testing.T) {
	// Gregorian dates conventionally omit the era.
	for _, f := range DefaultTemplate(GranularityDay, CalendarGregorian) {
		if f == TemplateEra {
			t.Fatal("gregorian template includes the era")
		}
	}

	got := DefaultTemplate(GranularityDay, Calendar("japanese"))
	if len(got) == 0 || got[0] != TemplateEra {
		t.Fatalf("era-displaying calendar template = %v, want era first", got)
	}
}

func TestDefaultTemplate_ZoneOnlyForTimeCarrying(t *testing.T) {
	for g := GranularityEra; g <= GranularityDay; g++ {
		for _, f := range DefaultTemplate(g, CalendarGregorian) {
			if f == TemplateZone {
				t.Errorf("%s template includes a zone field", g)
			}
		}
	}
	for g := GranularityHour; g <= GranularityNanosecond; g++ {
		fields := DefaultTemplate(g, CalendarGregorian)
		if fields[len(fields)-1] != TemplateZone {
			t.Errorf("%s template must end with the zone field", g)
		}
	}
}
