package kairos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/kairos"
	kairostest "github.com/blockberries/kairos/testing"
	"github.com/blockberries/kairos/types"
)

func TestScaledClock_RateScalesElapsedTime(t *testing.T) {
	ref := kairostest.MakeInstant(2024, time.January, 1, 0, 0, 0)
	clock := kairos.NewScaledClock(ref, 100, kairostest.UTCRegion())

	first := clock.Now()
	time.Sleep(50 * time.Millisecond)
	second := clock.Now()

	require.True(t, second.After(first), "time must advance at positive rate")

	advanced := second.Sub(first)
	// 50ms real time at rate 100 is 5s of clock time; allow generous
	// scheduler slack on the upper side only.
	assert.False(t, advanced.Less(types.Seconds(5.0)), "advanced only %v", advanced)
	assert.True(t, advanced.Less(types.Seconds(60.0)), "advanced %v, rate looks unscaled", advanced)
}

func TestScaledClock_StartsAtReference(t *testing.T) {
	ref := kairostest.MakeInstant(2030, time.May, 1, 12, 0, 0)
	clock := kairos.NewScaledClock(ref, 1, kairostest.UTCRegion())

	now := clock.Now()
	assert.False(t, now.Before(ref), "clock read before its reference")
	assert.True(t, now.Sub(ref).Less(types.Seconds(5)), "clock jumped far past its reference")
	assert.Equal(t, 1.0, clock.Rate())
}

func TestScaledClock_NonPositiveRatePanics(t *testing.T) {
	ref := kairostest.MakeInstant(2024, time.January, 1, 0, 0, 0)
	assert.Panics(t, func() { kairos.NewScaledClock(ref, 0, kairostest.UTCRegion()) })
	assert.Panics(t, func() { kairos.NewScaledClock(ref, -2, kairostest.UTCRegion()) })
}

func TestNowIn_PinsToClockRegion(t *testing.T) {
	region := kairostest.UTCRegion()
	frozen := kairostest.FrozenClock{
		Instant: kairostest.MakeInstant(2024, time.June, 15, 12, 30, 45),
		In:      region,
	}

	day := kairos.NowIn[kairos.Day](frozen)
	assert.Equal(t, 15, day.Day())
	assert.True(t, day.Region().Equal(region))

	minute := kairos.NowIn[kairos.Minute](frozen)
	assert.Equal(t, 30, minute.Minute())
	assert.True(t, minute.First().Equal(kairostest.MakeInstant(2024, time.June, 15, 12, 30, 0)))
}

func TestSystemClock(t *testing.T) {
	clock := kairos.SystemClock()
	before := types.FromTime(time.Now().Add(-time.Minute))
	after := types.FromTime(time.Now().Add(time.Minute))

	now := clock.Now()
	assert.True(t, now.After(before) && now.Before(after), "system clock reads real time")
	assert.Equal(t, kairos.CalendarGregorian, clock.Region().Calendar())
}

func TestPosixClock(t *testing.T) {
	clock := kairos.PosixClock()
	assert.True(t, clock.Region().Equal(kairos.POSIX()))

	first := clock.Now()
	second := clock.Now()
	assert.False(t, second.Before(first), "posix clock must not run backwards")
}
