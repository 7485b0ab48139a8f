package kairos

import (
	"time"

	"github.com/blockberries/kairos/types"
)

// Clock produces the current instant together with the region it
// should be interpreted in. Clocks are pure samplers: there is no
// ticking, scheduling or cancellation here.
type Clock interface {
	Now() types.Instant
	Region() Region
}

// Compile-time interface checks.
var (
	_ Clock = systemClock{}
	_ Clock = posixClock{}
	_ Clock = (*ScaledClock)(nil)
)

type systemClock struct{}

// SystemClock returns the live clock: real time at rate 1, in the
// current (auto-updating) region.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() types.Instant { return types.FromTime(time.Now()) }
func (systemClock) Region() Region     { return Current() }

type posixClock struct{}

// PosixClock returns real time at rate 1 in the fixed POSIX region.
func PosixClock() Clock { return posixClock{} }

func (posixClock) Now() types.Instant { return types.FromTime(time.Now()) }
func (posixClock) Region() Region     { return POSIX() }

// ScaledClock reads time flowing at a configurable rate relative to
// real elapsed time, starting from a reference instant: a rate-100
// clock advances 100 seconds of clock time per real second. Built for
// deterministic and accelerated testing.
type ScaledClock struct {
	reference types.Instant
	started   time.Time
	rate      float64
	region    Region
}

// NewScaledClock creates a clock that reads reference at the moment of
// construction and advances at rate thereafter. A rate of zero or
// below is a precondition panic: time must not stop or reverse.
func NewScaledClock(reference types.Instant, rate float64, r Region) *ScaledClock {
	precondition(rate > 0, "clock rate must be positive, got %v", rate)
	return &ScaledClock{
		reference: reference,
		started:   time.Now(),
		rate:      rate,
		region:    r,
	}
}

// Now implements Clock.
func (c *ScaledClock) Now() types.Instant {
	elapsed := types.FromGo(time.Since(c.started))
	return c.reference.Add(elapsed.Mul(c.rate))
}

// Region implements Clock.
func (c *ScaledClock) Region() Region { return c.region }

// Rate returns the flow rate relative to real time.
func (c *ScaledClock) Rate() float64 { return c.rate }

// NowIn samples the clock and pins the result to granularity U in the
// clock's region.
func NowIn[U Unit](c Clock) Fixed[U] {
	return At[U](c.Region(), c.Now())
}
