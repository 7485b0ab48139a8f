package kairos

import (
	"fmt"

	"github.com/blockberries/kairos/types"
)

// Interval is a range between two Fixed values of the same granularity
// in the same region. Half-open intervals cover [lower, upper); closed
// intervals additionally include the upper period.
//
// Construction requires lower ≤ upper under [Fixed.Compare]; violating
// that — including bounds from unequal regions — is a precondition
// panic, matching the semantics of a general-purpose ordered range,
// not a recoverable error.
type Interval[U Unit] struct {
	lower  Fixed[U]
	upper  Fixed[U]
	closed bool
}

// NewInterval builds the half-open interval [a, b).
func NewInterval[U Unit](a, b Fixed[U]) Interval[U] {
	checkBounds(a, b)
	return Interval[U]{lower: a, upper: b}
}

// NewClosedInterval builds the closed interval [a, b].
func NewClosedInterval[U Unit](a, b Fixed[U]) Interval[U] {
	checkBounds(a, b)
	return Interval[U]{lower: a, upper: b, closed: true}
}

func checkBounds[U Unit](a, b Fixed[U]) {
	ord := a.Compare(b)
	precondition(ord != Incomparable, "interval bounds built in unequal regions")
	precondition(ord != OrderedAfter, "interval lower bound %v after upper bound %v", a, b)
}

// Lower returns the lower bound.
func (iv Interval[U]) Lower() Fixed[U] { return iv.lower }

// Upper returns the upper bound.
func (iv Interval[U]) Upper() Fixed[U] { return iv.upper }

// Closed reports whether the upper period is included.
func (iv Interval[U]) Closed() bool { return iv.closed }

// IsEmpty reports whether the interval contains no period at all:
// only a half-open interval with equal bounds is empty.
func (iv Interval[U]) IsEmpty() bool {
	return !iv.closed && iv.lower.Equal(iv.upper)
}

// Bounds returns the set of instants covered as a half-open instant
// pair [start, end). For a closed interval the end is the first
// instant after the upper period.
func (iv Interval[U]) Bounds() (start, end types.Instant) {
	start = iv.lower.first
	end = iv.upper.first
	if iv.closed {
		end = iv.upper.region.engine.Next(end, granularityOf[U](), iv.upper.region.zone)
	}
	return start, end
}

// Duration returns the elapsed time covered. This is an honest elapsed
// quantity: a one-day interval spanning a DST transition is 23 or 25
// hours, not 24.
func (iv Interval[U]) Duration() types.Duration {
	start, end := iv.Bounds()
	return end.Sub(start)
}

// Contains reports whether v lies within the interval. Values from a
// different region are never contained.
func (iv Interval[U]) Contains(v Fixed[U]) bool {
	if !v.Comparable(iv.lower) {
		return false
	}
	if v.Before(iv.lower) {
		return false
	}
	if iv.closed {
		return !v.After(iv.upper)
	}
	return v.Before(iv.upper)
}

// ContainsInstant reports whether the instant falls inside the covered
// span.
func (iv Interval[U]) ContainsInstant(in types.Instant) bool {
	start, end := iv.Bounds()
	return !in.Before(start) && in.Before(end)
}

// Intersect returns the overlap of two intervals over the same region,
// and whether a non-degenerate overlap exists.
func (iv Interval[U]) Intersect(o Interval[U]) (Interval[U], bool) {
	if !iv.lower.Comparable(o.lower) {
		return Interval[U]{}, false
	}
	lo := iv.lower
	if o.lower.After(lo) {
		lo = o.lower
	}
	hi, closed := iv.upper, iv.closed
	switch o.upper.Compare(hi) {
	case OrderedBefore:
		hi, closed = o.upper, o.closed
	case OrderedSame:
		closed = closed && o.closed
	}
	if hi.Before(lo) {
		return Interval[U]{}, false
	}
	out := Interval[U]{lower: lo, upper: hi, closed: closed}
	if out.IsEmpty() {
		return Interval[U]{}, false
	}
	return out, true
}

// ForEach calls fn for every period in the interval in order, stepping
// by one unit of the granularity. Iteration stops early if fn returns
// false.
func (iv Interval[U]) ForEach(fn func(Fixed[U]) bool) {
	for v := iv.lower; ; v = v.Next() {
		if iv.closed {
			if v.After(iv.upper) {
				return
			}
		} else if !v.Before(iv.upper) {
			return
		}
		if !fn(v) {
			return
		}
	}
}

// Count returns the number of periods in the interval. Linear in the
// result; meant for human-scale ranges.
func (iv Interval[U]) Count() int {
	n := 0
	iv.ForEach(func(Fixed[U]) bool { n++; return true })
	return n
}

func (iv Interval[U]) String() string {
	if iv.closed {
		return fmt.Sprintf("[%v, %v]", iv.lower, iv.upper)
	}
	return fmt.Sprintf("[%v, %v)", iv.lower, iv.upper)
}
