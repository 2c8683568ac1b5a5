// Package schedule turns a cron expression into pass requests.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/mailbox"
	"github.com/raoulx24/logkeeper/internal/worker"
)

// Scheduler puts a full-pass job into the mailbox on every cron tick.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entry   cron.EntryID
	spec    string
	running bool

	log logging.Logger
	mb  *mailbox.Mailbox[worker.Job]
	now func() time.Time
}

func New(log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log,
		mb:   mb,
		now:  time.Now,
	}
}

// Start schedules spec and runs the cron loop until ctx is done. An empty
// spec schedules nothing and returns immediately.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if spec == "" {
		s.log.Info("schedule not configured, passes only run on demand")
		return nil
	}
	if err := s.setLocked(spec); err != nil {
		return err
	}

	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", "cron", spec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Update replaces the schedule. An empty spec removes it.
func (s *Scheduler) Update(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if spec == s.spec {
		return nil
	}
	if spec == "" {
		s.cron.Remove(s.entry)
		s.spec, s.entry = "", 0
		s.log.Info("schedule removed")
		return nil
	}
	if err := s.setLocked(spec); err != nil {
		return err
	}
	if !s.running {
		s.cron.Start()
		s.running = true
	}
	s.log.Info("schedule updated", "cron", spec)
	return nil
}

func (s *Scheduler) setLocked(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	id, err := s.cron.AddFunc(spec, s.fire)
	if err != nil {
		return fmt.Errorf("scheduling %q: %w", spec, err)
	}
	if s.entry != 0 {
		s.cron.Remove(s.entry)
	}
	s.entry, s.spec = id, spec
	return nil
}

func (s *Scheduler) fire() {
	s.log.Debug("cron tick, requesting pass")
	s.mb.Put(worker.Job{Kind: worker.KindFull, Reason: "cron", Requested: s.now()})
}

// Stop halts the cron loop and waits for a running tick to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.log.Info("scheduler stopped")
	}
}

// NextRun returns the next tick, or nil when nothing is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entry == 0 {
		return nil
	}
	next := s.cron.Entry(s.entry).Next
	if next.IsZero() {
		return nil
	}
	return &next
}
