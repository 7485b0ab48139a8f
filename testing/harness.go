package kairostest

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/blockberries/kairos"
	"github.com/blockberries/kairos/types"
)

// Harness bundles a testing.T with a region so table tests can build
// calendar values without threading both through every helper.
type Harness struct {
	T      *testing.T
	Region kairos.Region
}

// NewHarness creates a harness over the given region.
func NewHarness(t *testing.T, r kairos.Region) *Harness {
	t.Helper()
	return &Harness{T: t, Region: r}
}

// NewUTCHarness creates a harness over a fresh Gregorian UTC region.
func NewUTCHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(t, UTCRegion())
}

// UTCRegion returns a fresh Gregorian region in UTC with the
// American English locale.
func UTCRegion() kairos.Region {
	return kairos.NewRegion(kairos.NewGregorianEngine(), time.UTC, language.AmericanEnglish)
}

// ZoneRegion returns a fresh Gregorian region in the named zone,
// failing the test if the zone database does not know it.
func ZoneRegion(t *testing.T, name string) kairos.Region {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q) failed: %v", name, err)
	}
	return kairos.NewRegion(kairos.NewGregorianEngine(), loc, language.AmericanEnglish)
}

// MakeInstant builds an instant from UTC wall-clock components.
func MakeInstant(year int, month time.Month, day, hour, min, sec int) types.Instant {
	return types.FromTime(time.Date(year, month, day, hour, min, sec, 0, time.UTC))
}

// MustExact strictly constructs a Fixed value, failing the test on any
// match error.
func MustExact[U kairos.Unit](h *Harness, parts kairos.Components) kairos.Fixed[U] {
	h.T.Helper()
	v, err := kairos.Exact[U](h.Region, parts)
	if err != nil {
		h.T.Fatalf("Exact(%+v) failed: %v", parts, err)
	}
	return v
}

// MustRejectExact asserts that strict construction fails with a
// *MatchError and returns it for inspection.
func MustRejectExact[U kairos.Unit](h *Harness, parts kairos.Components) *kairos.MatchError {
	h.T.Helper()
	_, err := kairos.Exact[U](h.Region, parts)
	if err == nil {
		h.T.Fatalf("expected Exact(%+v) to fail, got a value", parts)
	}
	m, ok := kairos.IsMatch(err)
	if !ok {
		h.T.Fatalf("expected *MatchError, got %T: %v", err, err)
	}
	return m
}

// FrozenClock is a Clock stopped at a single instant, for tests that
// need an exact "now". For flowing simulated time use
// [kairos.NewScaledClock].
type FrozenClock struct {
	Instant types.Instant
	In      kairos.Region
}

var _ kairos.Clock = FrozenClock{}

func (c FrozenClock) Now() types.Instant    { return c.Instant }
func (c FrozenClock) Region() kairos.Region { return c.In }
