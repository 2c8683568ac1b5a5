package worker

import (
	"context"
)

// Start pulls jobs from the mailbox and runs them until ctx is done.
// Failures are logged by RunPass; the loop keeps going.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		job, ok := w.mb.Take(ctx)
		if !ok {
			w.log.Info("worker stopped")
			return
		}

		if _, err := w.RunPass(ctx, job); err != nil {
			w.log.Error("worker: pass finished with errors", "reason", job.Reason, "error", err)
		}
	}
}
