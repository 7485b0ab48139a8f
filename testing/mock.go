// Package kairostest provides test utilities for code built on
// kairos: a configurable mock engine, a test harness, and an engine
// compliance test suite.
package kairostest

import (
	"sync/atomic"
	"time"

	"github.com/blockberries/kairos"
	"github.com/blockberries/kairos/types"
)

// Compile-time check that MockEngine satisfies the interface.
var _ kairos.Engine = (*MockEngine)(nil)

// MockEngine is a configurable calendar engine for testing code that
// consumes the Engine capability. All operations are configurable via
// function fields; unconfigured operations delegate to a real
// Gregorian engine, so a zero MockEngine behaves like the real thing
// while still counting calls.
type MockEngine struct {
	// CalendarID overrides the reported calendar when non-empty.
	CalendarID kairos.Calendar

	// Configurable handlers. If nil, the fallback engine is used.
	ExtractFn func(types.Instant, *time.Location, kairos.FieldSet) (kairos.Components, types.Instant)
	MatchFn   func(kairos.Components, *time.Location) (types.Instant, kairos.Components, error)
	ShiftFn   func(types.Instant, int, kairos.Granularity, *time.Location) types.Instant
	CloneFn   func() kairos.Engine

	// Call counters (atomic for concurrent assertions).
	ExtractCalls atomic.Int64
	MatchCalls   atomic.Int64
	ShiftCalls   atomic.Int64
	CloneCalls   atomic.Int64

	fallback kairos.GregorianEngine
}

func (m *MockEngine) Calendar() kairos.Calendar {
	if m.CalendarID != "" {
		return m.CalendarID
	}
	return kairos.CalendarGregorian
}

func (m *MockEngine) Extract(in types.Instant, zone *time.Location, fields kairos.FieldSet) (kairos.Components, types.Instant) {
	m.ExtractCalls.Add(1)
	if m.ExtractFn != nil {
		return m.ExtractFn(in, zone, fields)
	}
	return m.fallback.Extract(in, zone, fields)
}

func (m *MockEngine) Match(parts kairos.Components, zone *time.Location) (types.Instant, kairos.Components, error) {
	m.MatchCalls.Add(1)
	if m.MatchFn != nil {
		return m.MatchFn(parts, zone)
	}
	return m.fallback.Match(parts, zone)
}

func (m *MockEngine) Shift(in types.Instant, n int, unit kairos.Granularity, zone *time.Location) types.Instant {
	m.ShiftCalls.Add(1)
	if m.ShiftFn != nil {
		return m.ShiftFn(in, n, unit, zone)
	}
	return m.fallback.Shift(in, n, unit, zone)
}

func (m *MockEngine) Next(in types.Instant, unit kairos.Granularity, zone *time.Location) types.Instant {
	return m.Shift(in, 1, unit, zone)
}

func (m *MockEngine) Prev(in types.Instant, unit kairos.Granularity, zone *time.Location) types.Instant {
	return m.Shift(in, -1, unit, zone)
}

func (m *MockEngine) Clone() kairos.Engine {
	m.CloneCalls.Add(1)
	if m.CloneFn != nil {
		return m.CloneFn()
	}
	return &MockEngine{
		CalendarID: m.CalendarID,
		ExtractFn:  m.ExtractFn,
		MatchFn:    m.MatchFn,
		ShiftFn:    m.ShiftFn,
		CloneFn:    m.CloneFn,
	}
}
