// Package agenda implements a minimal recurring-event scheduler on
// top of kairos. It demonstrates strict construction, granularity
// arithmetic across daylight-saving transitions, and clock injection
// for deterministic tests.
package agenda

import (
	"fmt"

	"github.com/blockberries/kairos"
	"github.com/blockberries/kairos/types"
)

// Event is a recurring weekly meeting: a first occurrence at hour
// granularity and a length.
type Event struct {
	Name   string
	First  kairos.Fixed[kairos.Hour]
	Length types.Duration
}

// Scheduler expands recurring events into concrete occurrences using
// an injected clock.
type Scheduler struct {
	clock  kairos.Clock
	events []Event
}

// New creates a scheduler reading time from the given clock.
func New(clock kairos.Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// AddWeekly registers a weekly event. The first occurrence is
// constructed strictly: an impossible start date is an error, not a
// silently adjusted meeting.
func (s *Scheduler) AddWeekly(name string, region kairos.Region, start kairos.Components, length types.Duration) error {
	first, err := kairos.Exact[kairos.Hour](region, start)
	if err != nil {
		return fmt.Errorf("agenda: event %q: %w", name, err)
	}
	if length.IsNegative() || length.IsZero() {
		return fmt.Errorf("agenda: event %q: non-positive length", name)
	}
	s.events = append(s.events, Event{Name: name, First: first, Length: length})
	return nil
}

// Occurrence is one concrete instance of an event.
type Occurrence struct {
	Name  string
	Start kairos.Fixed[kairos.Hour]
	End   types.Instant
}

// Upcoming returns the next n occurrences of every event at or after
// the clock's current reading, in no particular order across events.
//
// Recurrence steps by seven calendar days, so a 09:00 meeting stays at
// 09:00 wall clock across DST transitions even though the elapsed
// week is then 167 or 169 hours.
func (s *Scheduler) Upcoming(n int) []Occurrence {
	now := s.clock.Now()
	var out []Occurrence
	for _, ev := range s.events {
		occ := ev.First
		for occ.First().Before(now) {
			occ = occ.Add(7, kairos.GranularityDay)
		}
		for i := 0; i < n; i++ {
			out = append(out, Occurrence{
				Name:  ev.Name,
				Start: occ,
				End:   occ.First().Add(ev.Length),
			})
			occ = occ.Add(7, kairos.GranularityDay)
		}
	}
	return out
}

// Display returns the rendering template for an occurrence start in
// its own calendar, for hand-off to a formatting engine.
func (o Occurrence) Display() []kairos.TemplateField {
	return kairos.DefaultTemplate(o.Start.Granularity(), o.Start.Region().Calendar())
}
