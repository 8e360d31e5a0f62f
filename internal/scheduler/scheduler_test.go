package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRejectsBadSpec(t *testing.T) {
	s := New()
	assert.Error(t, s.Schedule("every hour please", func() {}))
	assert.Error(t, Validate("61 * * * *"))
	assert.NoError(t, Validate("@every 1h"))
	assert.NoError(t, Validate("0 * * * *"))
}

func TestScheduleReplacesJob(t *testing.T) {
	s := New()
	require.NoError(t, s.Schedule("@every 1h", func() {}))
	first := s.entryID
	require.NoError(t, s.Schedule("@every 2h", func() {}))

	assert.NotEqual(t, first, s.entryID)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestNextRun(t *testing.T) {
	s := New()
	assert.True(t, s.NextRun().IsZero(), "no job yet")

	require.NoError(t, s.Schedule("@every 1h", func() {}))
	s.Start()
	defer s.Stop()

	// The cron loop computes Next asynchronously after Start.
	require.Eventually(t, func() bool { return !s.NextRun().IsZero() }, time.Second, 10*time.Millisecond)
	next := s.NextRun()
	assert.WithinDuration(t, time.Now().Add(time.Hour), next, time.Minute)
}

func TestStartStopIdempotent(t *testing.T) {
	s := New()
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
