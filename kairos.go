// Package kairos provides type-safe calendar values pinned to a single
// granularity — a specific year, month, day, hour — layered over a host
// calendar engine.
//
// The central type is [Fixed], a generic value parameterized by a [Unit]
// marker type: a Fixed[Day] is one specific day of one specific month,
// year and era, never "day" as an abstract concept. Calendar rule
// computation (leap years, era boundaries, daylight-saving transitions)
// is delegated to an [Engine]; this package never re-derives it.
//
// All value types here are immutable. [Region] values (and [Fixed]
// values, which embed one) must be force-copied via Snapshot before
// being handed to concurrently scheduled work — see [Region.Snapshot].
package kairos

import (
	"time"

	"github.com/blockberries/kairos/types"
)

// Calendar identifies the ruleset an Engine computes under
// (e.g., "gregory"). Two engines with the same Calendar are
// interchangeable for equality purposes.
type Calendar string

// CalendarGregorian is the proleptic Gregorian calendar.
const CalendarGregorian Calendar = "gregory"

// DisplaysEra reports whether a default rendering of dates in this
// calendar includes the era field. Gregorian dates conventionally
// omit it; calendars with short era cycles show it.
func (c Calendar) DisplaysEra() bool {
	return c != CalendarGregorian
}

// Engine is the host calendar computation capability consumed by this
// package. It is treated as authoritative: component extraction,
// component arithmetic and any clamping or normalization it performs
// are inherited, never second-guessed.
//
// Implementations are NOT required to be safe for concurrent use —
// even read-looking operations may mutate internal lookup state.
// Callers obtain an isolated handle via Clone (which is what
// [Region.Snapshot] does) before crossing a goroutine boundary.
type Engine interface {
	// Calendar returns the ruleset identifier this engine computes under.
	Calendar() Calendar

	// Extract breaks instant down under zone, restricted to the
	// requested fields, and returns the extracted components together
	// with the first instant of the period they describe (the start of
	// the day for a day-restricted extraction, and so on).
	Extract(in types.Instant, zone *time.Location, fields FieldSet) (Components, types.Instant)

	// Match finds the instant nearest to the supplied partial component
	// set, filling unsupplied fields with the calendar's origin values,
	// and returns it together with the full component breakdown it
	// actually landed on. Match itself never rejects an impossible
	// date — it normalizes the way the host calendar does. Strict
	// construction compares the returned components against what was
	// supplied; see [Exact].
	Match(parts Components, zone *time.Location) (types.Instant, Components, error)

	// Shift moves instant by n units of the given granularity under
	// zone, with the engine's canonical overflow behavior (shifting
	// January 31 by one month lands wherever the host calendar says).
	Shift(in types.Instant, n int, unit Granularity, zone *time.Location) types.Instant

	// Next and Prev step instant by one unit of the given granularity.
	Next(in types.Instant, unit Granularity, zone *time.Location) types.Instant
	Prev(in types.Instant, unit Granularity, zone *time.Location) types.Instant

	// Clone returns a fresh, fully independent handle safe to use from
	// another goroutine.
	Clone() Engine
}

// Era numbering used in Components. The Gregorian engine maps stdlib
// proleptic years onto these: year 1 is the first year of EraCE,
// year 0 is the first year of EraBCE.
const (
	EraBCE = 0
	EraCE  = 1
)

// Components is a partial calendar component set: field values plus a
// bitfield recording which of them are actually supplied. Year is the
// year within its era, Month and Day are 1-based.
type Components struct {
	Era        int
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	// Which records the supplied fields. A field whose bit is unset
	// holds no meaningful value.
	Which FieldSet
}

// Get returns the value supplied for g, and whether it was supplied.
func (c Components) Get(g Granularity) (int, bool) {
	if !c.Which.Has(g) {
		return 0, false
	}
	switch g {
	case GranularityEra:
		return c.Era, true
	case GranularityYear:
		return c.Year, true
	case GranularityMonth:
		return c.Month, true
	case GranularityDay:
		return c.Day, true
	case GranularityHour:
		return c.Hour, true
	case GranularityMinute:
		return c.Minute, true
	case GranularitySecond:
		return c.Second, true
	case GranularityNanosecond:
		return c.Nanosecond, true
	}
	return 0, false
}

// Restrict returns a copy limited to the given fields.
func (c Components) Restrict(fields FieldSet) Components {
	out := Components{Which: c.Which & fields}
	if out.Which.Has(GranularityEra) {
		out.Era = c.Era
	}
	if out.Which.Has(GranularityYear) {
		out.Year = c.Year
	}
	if out.Which.Has(GranularityMonth) {
		out.Month = c.Month
	}
	if out.Which.Has(GranularityDay) {
		out.Day = c.Day
	}
	if out.Which.Has(GranularityHour) {
		out.Hour = c.Hour
	}
	if out.Which.Has(GranularityMinute) {
		out.Minute = c.Minute
	}
	if out.Which.Has(GranularitySecond) {
		out.Second = c.Second
	}
	if out.Which.Has(GranularityNanosecond) {
		out.Nanosecond = c.Nanosecond
	}
	return out
}

// WithEra returns a copy with the era field supplied.
func (c Components) WithEra(v int) Components {
	c.Era, c.Which = v, c.Which.With(GranularityEra)
	return c
}

// WithYear returns a copy with the year field supplied.
func (c Components) WithYear(v int) Components {
	c.Year, c.Which = v, c.Which.With(GranularityYear)
	return c
}

// WithMonth returns a copy with the month field supplied.
func (c Components) WithMonth(v int) Components {
	c.Month, c.Which = v, c.Which.With(GranularityMonth)
	return c
}

// WithDay returns a copy with the day field supplied.
func (c Components) WithDay(v int) Components {
	c.Day, c.Which = v, c.Which.With(GranularityDay)
	return c
}

// WithHour returns a copy with the hour field supplied.
func (c Components) WithHour(v int) Components {
	c.Hour, c.Which = v, c.Which.With(GranularityHour)
	return c
}

// WithMinute returns a copy with the minute field supplied.
func (c Components) WithMinute(v int) Components {
	c.Minute, c.Which = v, c.Which.With(GranularityMinute)
	return c
}

// WithSecond returns a copy with the second field supplied.
func (c Components) WithSecond(v int) Components {
	c.Second, c.Which = v, c.Which.With(GranularitySecond)
	return c
}

// WithNanosecond returns a copy with the nanosecond field supplied.
func (c Components) WithNanosecond(v int) Components {
	c.Nanosecond, c.Which = v, c.Which.With(GranularityNanosecond)
	return c
}

// Date builds a year/month/day component set. The era is left
// unsupplied; strict construction defaults it to the common era.
func Date(year, month, day int) Components {
	return Components{}.WithYear(year).WithMonth(month).WithDay(day)
}

// YearMonth builds a year/month component set.
func YearMonth(year, month int) Components {
	return Components{}.WithYear(year).WithMonth(month)
}

// DateTime builds a component set down to whole seconds.
func DateTime(year, month, day, hour, minute, second int) Components {
	return Date(year, month, day).WithHour(hour).WithMinute(minute).WithSecond(second)
}
