package kairos

import "fmt"

// TemplateField is one slot in a default rendering template. Template
// selection is a pure function of granularity and calendar; actual
// text rendering belongs to the host's locale-aware formatting engine
// and is out of scope here.
type TemplateField uint8

const (
	TemplateEra TemplateField = iota
	TemplateYear
	TemplateMonth
	// TemplateWeekdayDay renders the day of month together with its
	// weekday name, the conventional default for day-bearing values.
	TemplateWeekdayDay
	TemplateHour
	TemplateMinute
	TemplateSecond
	TemplateSubsecond
	// TemplateZone is the zone abbreviation, appended whenever any
	// time-carrying field is present.
	TemplateZone
)

var templateFieldNames = [...]string{
	"era", "year", "month", "weekday-day", "hour", "minute", "second", "subsecond", "zone",
}

func (f TemplateField) String() string {
	if int(f) < len(templateFieldNames) {
		return templateFieldNames[f]
	}
	return fmt.Sprintf("unknown(%d)", uint8(f))
}

// DefaultTemplate assembles the default per-field template for a value
// of granularity g under the given calendar, walking the represented
// components from coarsest to finest.
func DefaultTemplate(g Granularity, cal Calendar) []TemplateField {
	represented := g.Represented()
	var out []TemplateField
	if represented.Has(GranularityEra) && cal.DisplaysEra() {
		out = append(out, TemplateEra)
	}
	if represented.Has(GranularityYear) {
		out = append(out, TemplateYear)
	}
	if represented.Has(GranularityMonth) {
		out = append(out, TemplateMonth)
	}
	if represented.Has(GranularityDay) {
		out = append(out, TemplateWeekdayDay)
	}
	if represented.Has(GranularityHour) {
		out = append(out, TemplateHour)
	}
	if represented.Has(GranularityMinute) {
		out = append(out, TemplateMinute)
	}
	if represented.Has(GranularitySecond) {
		out = append(out, TemplateSecond)
	}
	if represented.Has(GranularityNanosecond) {
		out = append(out, TemplateSubsecond)
	}
	if g.TimeCarrying() {
		out = append(out, TemplateZone)
	}
	return out
}
