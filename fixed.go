package kairos

import (
	"fmt"
	"time"

	"github.com/blockberries/kairos/types"
)

// Fixed is a calendar value pinned to exactly one period at the
// granularity of its Unit parameter: a Fixed[Month] is one specific
// month of one specific year of one specific era. It holds the region
// it was computed under, the first instant of its period, and the
// component fields at-and-above its granularity — always extracted
// together from the same region, never mixed.
//
// Fixed values are immutable; arithmetic returns new values. Like
// Region, a Fixed value must be snapshotted before crossing a
// goroutine boundary.
type Fixed[U Unit] struct {
	region Region
	first  types.Instant
	parts  Components
}

// At builds the Fixed value whose period contains in, under r.
// Never fails: every instant falls in exactly one period.
func At[U Unit](r Region, in types.Instant) Fixed[U] {
	g := granularityOf[U]()
	parts, first := r.engine.Extract(in, r.zone, g.Represented())
	return Fixed[U]{region: r, first: first, parts: parts}
}

// FromTime builds the Fixed value containing the host-native moment t.
func FromTime[U Unit](r Region, t time.Time) Fixed[U] {
	return At[U](r, types.FromTime(t))
}

// Exact builds a Fixed value from a strict partial component set.
//
// The supplied set must contain exactly the fields the granularity
// represents (the era may be omitted and defaults to the common era),
// and the calendar's nearest match must reproduce every supplied value
// field-for-field. Anything else — missing fields, extra fields, or
// values the calendar normalized away, like February 30 — returns a
// *MatchError instead of a silently corrected value.
func Exact[U Unit](r Region, parts Components) (Fixed[U], error) {
	g := granularityOf[U]()
	want := g.Represented()

	if extra := parts.Which &^ want; extra != 0 {
		return Fixed[U]{}, &MatchError{Granularity: g, Expected: want, Supplied: parts.Which}
	}
	optional := FieldOf(GranularityEra)
	if missing := want &^ (parts.Which | optional); missing != 0 {
		return Fixed[U]{}, &MatchError{Granularity: g, Expected: want, Supplied: parts.Which}
	}

	in, actual, err := r.engine.Match(parts, r.zone)
	if err != nil {
		return Fixed[U]{}, fmt.Errorf("kairos: engine match: %w", err)
	}

	var mismatched FieldSet
	for f := GranularityEra; f <= GranularityNanosecond; f++ {
		supplied, ok := parts.Get(f)
		if !ok {
			continue
		}
		if got, _ := actual.Get(f); got != supplied {
			mismatched = mismatched.With(f)
		}
	}
	if mismatched != 0 {
		return Fixed[U]{}, &MatchError{
			Granularity: g,
			Expected:    want,
			Supplied:    parts.Which,
			Mismatched:  mismatched,
		}
	}
	return At[U](r, in), nil
}

// Region returns the region the value was computed under.
func (x Fixed[U]) Region() Region { return x.region }

// First returns the first instant contained in this period.
func (x Fixed[U]) First() types.Instant { return x.first }

// Parts returns the component fields this value represents.
func (x Fixed[U]) Parts() Components { return x.parts }

// Granularity returns the value's granularity.
func (x Fixed[U]) Granularity() Granularity { return granularityOf[U]() }

// Get returns a represented component value.
func (x Fixed[U]) Get(g Granularity) (int, bool) { return x.parts.Get(g) }

// Component accessors. Fields finer than the value's granularity
// return zero.

func (x Fixed[U]) Era() int {
	v, _ := x.parts.Get(GranularityEra)
	return v
}

func (x Fixed[U]) Year() int {
	v, _ := x.parts.Get(GranularityYear)
	return v
}

func (x Fixed[U]) Month() int {
	v, _ := x.parts.Get(GranularityMonth)
	return v
}

func (x Fixed[U]) Day() int {
	v, _ := x.parts.Get(GranularityDay)
	return v
}

func (x Fixed[U]) Hour() int {
	v, _ := x.parts.Get(GranularityHour)
	return v
}

func (x Fixed[U]) Minute() int {
	v, _ := x.parts.Get(GranularityMinute)
	return v
}

func (x Fixed[U]) Second() int {
	v, _ := x.parts.Get(GranularitySecond)
	return v
}

// Ordering is the result of comparing two Fixed values.
type Ordering int8

const (
	OrderedBefore Ordering = -1
	OrderedSame   Ordering = 0
	OrderedAfter  Ordering = 1
	// Incomparable is returned for values from unequal regions.
	// Ordering instants computed under different calendars or zones
	// answers a question nobody asked; false is the safe answer.
	Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case OrderedBefore:
		return "before"
	case OrderedSame:
		return "same"
	case OrderedAfter:
		return "after"
	case Incomparable:
		return "incomparable"
	}
	return fmt.Sprintf("unknown(%d)", int8(o))
}

// Comparable reports whether x and y were computed under equal regions
// and can therefore be ordered.
func (x Fixed[U]) Comparable(y Fixed[U]) bool { return x.region.Equal(y.region) }

// Compare orders two values of the same granularity by first instant.
// Values from unequal regions are Incomparable.
func (x Fixed[U]) Compare(y Fixed[U]) Ordering {
	if !x.Comparable(y) {
		return Incomparable
	}
	return Ordering(x.first.Cmp(y.first))
}

// Before reports whether x is strictly earlier than y. Always false
// when the regions differ, as is After — mixed-region values are
// incomparable, not an error.
func (x Fixed[U]) Before(y Fixed[U]) bool { return x.Compare(y) == OrderedBefore }

// After reports whether x is strictly later than y.
func (x Fixed[U]) After(y Fixed[U]) bool { return x.Compare(y) == OrderedAfter }

// Equal reports whether x and y are the same period of the same
// region.
func (x Fixed[U]) Equal(y Fixed[U]) bool { return x.Compare(y) == OrderedSame }

// Add returns the value n units away, where unit may differ from the
// value's own granularity (a day plus two months). Overflow handling —
// what one month after January 31 means — is the engine's inherited
// normalization, pinned by the compliance suite rather than specified
// here.
func (x Fixed[U]) Add(n int, unit Granularity) Fixed[U] {
	return At[U](x.region, x.region.engine.Shift(x.first, n, unit, x.region.zone))
}

// Next returns the immediately following period.
func (x Fixed[U]) Next() Fixed[U] {
	return At[U](x.region, x.region.engine.Next(x.first, granularityOf[U](), x.region.zone))
}

// Prev returns the immediately preceding period.
func (x Fixed[U]) Prev() Fixed[U] {
	return At[U](x.region, x.region.engine.Prev(x.first, granularityOf[U](), x.region.zone))
}

// Snapshot returns a copy backed by an isolated region, safe for a
// concurrently scheduled task. See [Region.Snapshot].
func (x Fixed[U]) Snapshot(force bool) Fixed[U] {
	return Fixed[U]{region: x.region.Snapshot(force), first: x.first, parts: x.parts}
}

// Contains reports whether the instant falls inside this period:
// at or after its first instant, before the next period's.
func (x Fixed[U]) Contains(in types.Instant) bool {
	if in.Before(x.first) {
		return false
	}
	next := x.region.engine.Next(x.first, granularityOf[U](), x.region.zone)
	return in.Before(next)
}

func (x Fixed[U]) String() string {
	return fmt.Sprintf("%s@%s", granularityOf[U](), x.first.Time().In(x.region.zone).Format(time.RFC3339))
}
