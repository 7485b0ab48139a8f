package kairos

import (
	"time"

	"github.com/blockberries/kairos/types"
)

// Compile-time interface check.
var _ Engine = (*GregorianEngine)(nil)

// GregorianEngine computes under the proleptic Gregorian calendar,
// backed by the host platform's own calendar code (the standard time
// package). All normalization behavior — month-end overflow on Shift,
// nonexistent local times inside a DST gap — is the host's and is
// inherited as-is.
//
// The engine memos its last month-origin lookup without locking, so a
// single handle is not safe for concurrent use. Clone (or
// [Region.Snapshot]) yields an independent handle.
type GregorianEngine struct {
	memo monthMemo
}

type monthMemo struct {
	zone   *time.Location
	year   int
	month  time.Month
	origin time.Time
	valid  bool
}

// NewGregorianEngine returns a fresh engine handle.
func NewGregorianEngine() *GregorianEngine {
	return &GregorianEngine{}
}

// Calendar implements Engine.
func (e *GregorianEngine) Calendar() Calendar { return CalendarGregorian }

// Clone implements Engine.
func (e *GregorianEngine) Clone() Engine { return NewGregorianEngine() }

// Extract implements Engine. The returned instant is the first moment
// of the period described by the finest requested field.
func (e *GregorianEngine) Extract(in types.Instant, zone *time.Location, fields FieldSet) (Components, types.Instant) {
	zone = orUTC(zone)
	t := in.Time().In(zone)
	parts := gregorianComponents(t).Restrict(fields)
	finest, ok := fields.Finest()
	if !ok {
		return parts, in
	}
	return parts, types.FromTime(e.periodOrigin(t, finest))
}

// Match implements Engine. Unsupplied fields default to the calendar
// origin (common era, year 1, January 1, midnight); the host then
// normalizes exactly as it would for any out-of-range component, so
// February 30 comes back as an instant in March with the components to
// prove it.
func (e *GregorianEngine) Match(parts Components, zone *time.Location) (types.Instant, Components, error) {
	zone = orUTC(zone)
	era := EraCE
	if v, ok := parts.Get(GranularityEra); ok {
		era = v
	}
	year := 1
	if v, ok := parts.Get(GranularityYear); ok {
		year = v
	}
	if era == EraBCE {
		year = 1 - year
	}
	month := 1
	if v, ok := parts.Get(GranularityMonth); ok {
		month = v
	}
	day := 1
	if v, ok := parts.Get(GranularityDay); ok {
		day = v
	}
	var hour, minute, second, nano int
	if v, ok := parts.Get(GranularityHour); ok {
		hour = v
	}
	if v, ok := parts.Get(GranularityMinute); ok {
		minute = v
	}
	if v, ok := parts.Get(GranularitySecond); ok {
		second = v
	}
	if v, ok := parts.Get(GranularityNanosecond); ok {
		nano = v
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, nano, zone)
	return types.FromTime(t), gregorianComponents(t), nil
}

// Shift implements Engine. Calendar units (year, month, day) keep the
// wall clock across DST transitions; time units move by absolute
// elapsed time. Era shifts step between era origins, clamped to the
// calendar's proleptic range by eraOrigin.
func (e *GregorianEngine) Shift(in types.Instant, n int, unit Granularity, zone *time.Location) types.Instant {
	zone = orUTC(zone)
	t := in.Time().In(zone)
	switch unit {
	case GranularityEra:
		return types.FromTime(e.eraOrigin(eraIndex(t)+n, zone))
	case GranularityYear:
		t = t.AddDate(n, 0, 0)
	case GranularityMonth:
		t = t.AddDate(0, n, 0)
	case GranularityDay:
		t = t.AddDate(0, 0, n)
	case GranularityHour:
		t = t.Add(time.Duration(n) * time.Hour)
	case GranularityMinute:
		t = t.Add(time.Duration(n) * time.Minute)
	case GranularitySecond:
		t = t.Add(time.Duration(n) * time.Second)
	case GranularityNanosecond:
		t = t.Add(time.Duration(n))
	}
	return types.FromTime(t)
}

// Next implements Engine.
func (e *GregorianEngine) Next(in types.Instant, unit Granularity, zone *time.Location) types.Instant {
	return e.Shift(in, 1, unit, zone)
}

// Prev implements Engine.
func (e *GregorianEngine) Prev(in types.Instant, unit Granularity, zone *time.Location) types.Instant {
	return e.Shift(in, -1, unit, zone)
}

// periodOrigin returns the first moment of the period of granularity g
// containing t, in t's location.
func (e *GregorianEngine) periodOrigin(t time.Time, g Granularity) time.Time {
	loc := t.Location()
	y, mo, d := t.Date()
	switch g {
	case GranularityEra:
		return e.eraOrigin(eraIndex(t), loc)
	case GranularityYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case GranularityMonth:
		return e.monthOrigin(y, mo, loc)
	case GranularityDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case GranularityHour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, loc)
	case GranularityMinute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, loc)
	case GranularitySecond:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	default:
		return t
	}
}

// eraIndex numbers the eras: 0 for BCE, 1 for CE.
func eraIndex(t time.Time) int {
	if t.Year() >= 1 {
		return 1
	}
	return 0
}

// eraOrigin returns the first moment of the era at idx. The calendar
// has exactly two eras: indexes below them clamp to the proleptic
// floor, indexes above yield the proleptic ceiling, which doubles as
// the origin of the period after CE so era succession stays total.
func (e *GregorianEngine) eraOrigin(idx int, loc *time.Location) time.Time {
	switch {
	case idx <= 0:
		return time.Date(-9999, time.January, 1, 0, 0, 0, 0, loc)
	case idx == 1:
		return time.Date(1, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(10000, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// monthOrigin is the memoized lookup. The memo is deliberately
// unsynchronized: it models the host engine's internal temporary
// mutation during reads, which is why Clone exists.
func (e *GregorianEngine) monthOrigin(year int, month time.Month, loc *time.Location) time.Time {
	if e.memo.valid && e.memo.zone == loc && e.memo.year == year && e.memo.month == month {
		return e.memo.origin
	}
	origin := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	e.memo = monthMemo{zone: loc, year: year, month: month, origin: origin, valid: true}
	return origin
}

func gregorianComponents(t time.Time) Components {
	era, year := EraCE, t.Year()
	if year < 1 {
		era, year = EraBCE, 1-year
	}
	return Components{}.
		WithEra(era).
		WithYear(year).
		WithMonth(int(t.Month())).
		WithDay(t.Day()).
		WithHour(t.Hour()).
		WithMinute(t.Minute()).
		WithSecond(t.Second()).
		WithNanosecond(t.Nanosecond())
}

func orUTC(zone *time.Location) *time.Location {
	if zone == nil {
		return time.UTC
	}
	return zone
}
