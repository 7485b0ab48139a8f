package kairos

import (
	"fmt"
	"strings"
)

// Granularity is the calendar resolution a value is pinned to. The set
// is closed and totally ordered from coarsest (era) to finest
// (nanosecond).
type Granularity uint8

const (
	GranularityEra Granularity = iota
	GranularityYear
	GranularityMonth
	GranularityDay
	GranularityHour
	GranularityMinute
	GranularitySecond
	GranularityNanosecond
)

var granularityNames = [...]string{
	"era", "year", "month", "day", "hour", "minute", "second", "nanosecond",
}

func (g Granularity) String() string {
	if int(g) < len(granularityNames) {
		return granularityNames[g]
	}
	return fmt.Sprintf("unknown(%d)", uint8(g))
}

// FinerThan reports whether g is a finer resolution than h
// (day is finer than month).
func (g Granularity) FinerThan(h Granularity) bool { return g > h }

// CoarserThan reports whether g is a coarser resolution than h.
func (g Granularity) CoarserThan(h Granularity) bool { return g < h }

// Represented returns the full set of component fields a value at this
// granularity carries: the granularity itself plus everything coarser.
// A day-granularity value carries era, year, month and day.
func (g Granularity) Represented() FieldSet {
	return FieldSet(1<<(g+1)) - 1
}

// TimeCarrying reports whether this unit is a time-of-day unit, making
// the zone's offset relevant to arithmetic and display.
func (g Granularity) TimeCarrying() bool { return g >= GranularityHour }

// FieldSet is a bitfield of calendar component fields, one bit per
// Granularity.
type FieldSet uint16

// FieldOf returns the single-field set for g.
func FieldOf(g Granularity) FieldSet { return 1 << g }

// Has reports whether the field for g is in the set.
func (f FieldSet) Has(g Granularity) bool { return f&FieldOf(g) != 0 }

// With returns f with the field for g added.
func (f FieldSet) With(g Granularity) FieldSet { return f | FieldOf(g) }

// Finest returns the finest granularity present in the set.
func (f FieldSet) Finest() (Granularity, bool) {
	for g := GranularityNanosecond; ; g-- {
		if f.Has(g) {
			return g, true
		}
		if g == GranularityEra {
			return 0, false
		}
	}
}

// String returns a human-readable representation.
func (f FieldSet) String() string {
	var fields []string
	for g := GranularityEra; g <= GranularityNanosecond; g++ {
		if f.Has(g) {
			fields = append(fields, g.String())
		}
	}
	if len(fields) == 0 {
		return "none"
	}
	return strings.Join(fields, "|")
}

// Unit is the type-parameter constraint for [Fixed]. The set of units
// is closed: only the eight marker types in this package satisfy it.
type Unit interface {
	granularity() Granularity
}

// Marker types for each granularity. They carry no data; their only
// job is to make Fixed[Day] and Fixed[Month] distinct compile-time
// types.
type (
	Era        struct{}
	Year       struct{}
	Month      struct{}
	Day        struct{}
	Hour       struct{}
	Minute     struct{}
	Second     struct{}
	Nanosecond struct{}
)

func (Era) granularity() Granularity        { return GranularityEra }
func (Year) granularity() Granularity       { return GranularityYear }
func (Month) granularity() Granularity      { return GranularityMonth }
func (Day) granularity() Granularity        { return GranularityDay }
func (Hour) granularity() Granularity       { return GranularityHour }
func (Minute) granularity() Granularity     { return GranularityMinute }
func (Second) granularity() Granularity     { return GranularitySecond }
func (Nanosecond) granularity() Granularity { return GranularityNanosecond }

func granularityOf[U Unit]() Granularity {
	var u U
	return u.granularity()
}
