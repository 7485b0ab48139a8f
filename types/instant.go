package types

import (
	"fmt"
	"time"
)

// Instant is a single point on the universal time axis: the elapsed
// [Duration] since the Unix epoch. It carries no calendar or zone
// semantics — a given Instant is the same moment everywhere.
//
// Unlike Duration's own arithmetic, Instant arithmetic stays on the
// exact integer path: timeline positions feed calendar construction
// and must not drift.
type Instant struct {
	Since Duration `cramberry:"1"`
}

// Epoch is the zero Instant, 1970-01-01T00:00:00Z.
var Epoch = Instant{}

// FromTime converts a host-native moment. Exact to the nanosecond,
// which is the host representation's full resolution.
//
// The result is in canonical form. That matters for pre-epoch
// moments: the host splits them floor-style (negative seconds,
// positive nanoseconds), which would compare unequal to the
// sign-matched form Add and Sub produce for the same moment. Every
// Instant constructor must preserve this guarantee.
func FromTime(t time.Time) Instant {
	return Instant{Since: canonical(t.Unix(), int64(t.Nanosecond())*attosPerNano)}
}

// Time converts to a host-native moment in UTC, truncating below the
// nanosecond.
func (i Instant) Time() time.Time {
	return time.Unix(i.Since.Seconds, i.Since.Attos/attosPerNano).UTC()
}

// Add returns the instant offset by d. Exact.
func (i Instant) Add(d Duration) Instant {
	return Instant{Since: canonical(i.Since.Seconds+d.Seconds, i.Since.Attos+d.Attos)}
}

// Sub returns the elapsed duration from o to i. Exact.
func (i Instant) Sub(o Instant) Duration {
	return canonical(i.Since.Seconds-o.Since.Seconds, i.Since.Attos-o.Since.Attos)
}

// Cmp compares exactly: -1 if i is earlier than o, 0 if the same
// moment, +1 if later.
func (i Instant) Cmp(o Instant) int { return i.Since.Cmp(o.Since) }

// Before reports whether i is strictly earlier than o.
func (i Instant) Before(o Instant) bool { return i.Cmp(o) < 0 }

// After reports whether i is strictly later than o.
func (i Instant) After(o Instant) bool { return i.Cmp(o) > 0 }

// Equal reports whether i and o are the same moment.
func (i Instant) Equal(o Instant) bool { return i == o }

func (i Instant) String() string {
	return fmt.Sprintf("Instant(%s)", i.Time().Format(time.RFC3339Nano))
}
