package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/mailbox"
	"github.com/raoulx24/logkeeper/internal/worker"
)

func TestStartEmptySpec(t *testing.T) {
	s := New(logging.Discard(), mailbox.New[worker.Job]())
	require.NoError(t, s.Start(context.Background(), ""))
	assert.Nil(t, s.NextRun())
}

func TestStartInvalidSpec(t *testing.T) {
	s := New(logging.Discard(), mailbox.New[worker.Job]())
	err := s.Start(context.Background(), "every tuesday")
	assert.ErrorContains(t, err, "invalid cron schedule")
}

func TestStartSchedulesNextRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(logging.Discard(), mailbox.New[worker.Job]())
	require.NoError(t, s.Start(ctx, "0 3 * * *"))
	defer s.Stop()

	require.Eventually(t, func() bool { return s.NextRun() != nil }, time.Second, 10*time.Millisecond)
	next := s.NextRun()
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())
}

func TestUpdateReplacesSchedule(t *testing.T) {
	s := New(logging.Discard(), mailbox.New[worker.Job]())
	require.NoError(t, s.Start(context.Background(), "0 3 * * *"))
	defer s.Stop()

	require.NoError(t, s.Update("30 4 * * *"))
	assert.Len(t, s.cron.Entries(), 1)
	assert.Equal(t, "30 4 * * *", s.spec)

	require.Error(t, s.Update("bogus"))
	assert.Equal(t, "30 4 * * *", s.spec, "a bad update keeps the old schedule")

	require.NoError(t, s.Update(""))
	assert.Empty(t, s.cron.Entries())
	assert.Nil(t, s.NextRun())
}

func TestFirePutsJob(t *testing.T) {
	mb := mailbox.New[worker.Job]()
	s := New(logging.Discard(), mb)
	fixed := time.Date(2023, 7, 1, 3, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.fire()

	job := mb.TryTake()
	require.NotNil(t, job)
	assert.Equal(t, worker.KindFull, job.Kind)
	assert.Equal(t, "cron", job.Reason)
	assert.Equal(t, fixed, job.Requested)
}
