// Package types defines the calendar-agnostic value types of kairos:
// [Duration] (elapsed time at attosecond resolution) and [Instant]
// (a point on the universal time axis).
//
// Both are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Calendar semantics live in the
// root package.
package types

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

const (
	attosPerSecond = int64(1_000_000_000_000_000_000)
	attosPerMilli  = int64(1_000_000_000_000_000)
	attosPerMicro  = int64(1_000_000_000_000)
	attosPerNano   = int64(1_000_000_000)
	nanosPerSecond = int64(1_000_000_000)
)

// Duration is an elapsed-time quantity: whole seconds plus attoseconds
// (10⁻¹⁸ s) within the second, independent of any calendar granularity.
//
// The wire form is the ordered pair [seconds, attoseconds]; round-trips
// are exact. Canonical form keeps the attosecond magnitude below one
// second with its sign matching the seconds'. Every constructor and
// operation in this package produces canonical values; comparisons
// assume canonical operands, so a non-canonical pair decoded from the
// wire compares as stored.
//
// Arithmetic (Add, Sub, Neg, Mul, Div, Ratio) routes through a float64
// nanosecond total: exact at seconds scale, lossy in the sub-nanosecond
// tail for extreme magnitudes. Equality and ordering never take that
// path — they compare the integer pair directly. Dividing by zero or by
// a zero duration is an arithmetic fault (±Inf/NaN propagation), not a
// guarded error.
type Duration struct {
	Seconds int64 `cramberry:"1"`
	Attos   int64 `cramberry:"2"`
}

// Number constrains the numeric argument of the Duration constructors.
type Number interface {
	constraints.Integer | constraints.Float
}

// Seconds returns a Duration of n seconds. Integer arguments convert
// exactly; float arguments take the float64 nanosecond path.
func Seconds[N Number](n N) Duration { return fromUnits(n, attosPerSecond) }

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds[N Number](n N) Duration { return fromUnits(n, attosPerMilli) }

// Microseconds returns a Duration of n microseconds.
func Microseconds[N Number](n N) Duration { return fromUnits(n, attosPerMicro) }

// Nanoseconds returns a Duration of n nanoseconds.
func Nanoseconds[N Number](n N) Duration { return fromUnits(n, attosPerNano) }

// FromGo converts a time.Duration. Exact.
func FromGo(d time.Duration) Duration { return Nanoseconds(d.Nanoseconds()) }

// ToGo converts to a time.Duration, truncating below the nanosecond.
// Magnitudes beyond ±292 years overflow silently, as they do in the
// standard library.
func (d Duration) ToGo() time.Duration {
	return time.Duration(d.Seconds*nanosPerSecond + d.Attos/attosPerNano)
}

func fromUnits[N Number](n N, attosPerUnit int64) Duration {
	switch v := any(n).(type) {
	case float32:
		return fromFloatNanos(float64(v) * float64(attosPerUnit) / float64(attosPerNano))
	case float64:
		return fromFloatNanos(v * float64(attosPerUnit) / float64(attosPerNano))
	default:
		// Exact modular decomposition, no precision loss.
		whole := int64(n)
		unitsPerSecond := attosPerSecond / attosPerUnit
		return Duration{
			Seconds: whole / unitsPerSecond,
			Attos:   (whole % unitsPerSecond) * attosPerUnit,
		}
	}
}

func fromFloatNanos(nanos float64) Duration {
	secs := math.Trunc(nanos / float64(nanosPerSecond))
	frac := nanos - secs*float64(nanosPerSecond)
	return canonical(int64(secs), int64(math.Round(frac*float64(attosPerNano))))
}

// canonical folds attosecond overflow into seconds and aligns signs.
func canonical(secs, attos int64) Duration {
	secs += attos / attosPerSecond
	attos %= attosPerSecond
	if secs > 0 && attos < 0 {
		secs--
		attos += attosPerSecond
	} else if secs < 0 && attos > 0 {
		secs++
		attos -= attosPerSecond
	}
	return Duration{Seconds: secs, Attos: attos}
}

func (d Duration) nanos() float64 {
	return float64(d.Seconds)*float64(nanosPerSecond) + float64(d.Attos)/float64(attosPerNano)
}

// Add returns d + o.
func (d Duration) Add(o Duration) Duration { return fromFloatNanos(d.nanos() + o.nanos()) }

// Sub returns d - o.
func (d Duration) Sub(o Duration) Duration { return fromFloatNanos(d.nanos() - o.nanos()) }

// Neg returns -d.
func (d Duration) Neg() Duration { return fromFloatNanos(-d.nanos()) }

// Mul returns d scaled by x.
func (d Duration) Mul(x float64) Duration { return fromFloatNanos(d.nanos() * x) }

// Div returns d divided by x. x must not be zero.
func (d Duration) Div(x float64) Duration { return fromFloatNanos(d.nanos() / x) }

// Ratio returns d / o as a plain ratio. o must not be zero.
func (d Duration) Ratio(o Duration) float64 { return d.nanos() / o.nanos() }

// Cmp compares exactly: -1 if d < o, 0 if equal, +1 if d > o.
func (d Duration) Cmp(o Duration) int {
	switch {
	case d.Seconds < o.Seconds:
		return -1
	case d.Seconds > o.Seconds:
		return 1
	case d.Attos < o.Attos:
		return -1
	case d.Attos > o.Attos:
		return 1
	}
	return 0
}

// Equal reports exact equality.
func (d Duration) Equal(o Duration) bool { return d == o }

// Less reports exact ordering.
func (d Duration) Less(o Duration) bool { return d.Cmp(o) < 0 }

// IsZero reports whether d is exactly zero.
func (d Duration) IsZero() bool { return d == Duration{} }

// IsNegative reports whether d is below zero.
func (d Duration) IsNegative() bool { return d.Seconds < 0 || (d.Seconds == 0 && d.Attos < 0) }

func (d Duration) String() string {
	return fmt.Sprintf("%ds+%da", d.Seconds, d.Attos)
}
