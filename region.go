package kairos

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Region bundles the three inputs calendar values are computed under:
// an [Engine] handle, a time zone, and a locale. Regions are immutable;
// two regions are equal iff calendar, zone and locale all match.
//
// A Region must not cross a goroutine boundary by shared reference:
// the engine behind it may mutate internal state during lookups. Use
// [Region.Snapshot] to produce an isolated copy first. Failure to do so
// is not detectable by the library and shows up as low-probability
// corruption under concurrent load, not a clean error.
type Region struct {
	engine Engine
	zone   *time.Location
	locale language.Tag
}

// NewRegion creates a region. A nil zone means UTC.
func NewRegion(engine Engine, zone *time.Location, locale language.Tag) Region {
	precondition(engine != nil, "NewRegion: nil engine")
	if zone == nil {
		zone = time.UTC
	}
	return Region{engine: engine, zone: zone, locale: locale}
}

// Engine returns the calendar engine handle.
func (r Region) Engine() Engine { return r.engine }

// Zone returns the time zone.
func (r Region) Zone() *time.Location { return r.zone }

// Locale returns the locale tag.
func (r Region) Locale() language.Tag { return r.locale }

// Calendar returns the engine's ruleset identifier.
func (r Region) Calendar() Calendar { return r.engine.Calendar() }

// Equal reports whether both regions name the same calendar, zone and
// locale. Engine identity is irrelevant: two Gregorian handles compute
// the same dates.
func (r Region) Equal(o Region) bool {
	return r.engine.Calendar() == o.engine.Calendar() &&
		r.zone.String() == o.zone.String() &&
		r.locale == o.locale
}

// Key returns a string identifying the region's equality class,
// suitable as a map key.
func (r Region) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.engine.Calendar(), r.zone, r.locale)
}

// Snapshot returns a copy with a fresh engine handle, safe to hand to
// a concurrently scheduled task. With force, the zone is additionally
// reloaded from the zone database so nothing at all is shared with the
// receiver; without it the (immutable) zone pointer is kept.
func (r Region) Snapshot(force bool) Region {
	zone := r.zone
	if force {
		if loc, err := time.LoadLocation(r.zone.String()); err == nil {
			zone = loc
		}
		// Fixed-offset zones are not in the database; the existing
		// pointer is already fully immutable.
	}
	return Region{engine: r.engine.Clone(), zone: zone, locale: r.locale}
}

// Current returns a region reflecting the live system settings: the
// process time zone and the locale from the environment, with a fresh
// Gregorian engine. It is re-derived on every call, so it tracks
// changes to the underlying system configuration; callers needing a
// stable view must Snapshot the result.
func Current() Region {
	return Region{
		engine: NewGregorianEngine(),
		zone:   time.Local,
		locale: systemLocale(),
	}
}

// POSIX returns the well-known portable region: Gregorian calendar,
// UTC, the POSIX locale variant.
func POSIX() Region {
	return Region{
		engine: NewGregorianEngine(),
		zone:   time.UTC,
		locale: language.Make("en-US-u-va-posix"),
	}
}

func systemLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// "en_US.UTF-8" → "en_US"
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.Und
}
