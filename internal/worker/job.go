package worker

import (
	"time"
)

// Kind selects which halves of a pass run.
type Kind int

const (
	KindFull   Kind = iota // sweep every target, then rotate the log
	KindSweep              // targets only
	KindRotate             // log only
)

func (k Kind) String() string {
	switch k {
	case KindSweep:
		return "sweep"
	case KindRotate:
		return "rotate"
	default:
		return "full"
	}
}

// Job asks the worker for one pass.
type Job struct {
	Kind      Kind
	Reason    string // "cron", "manual", "startup", ...
	DryRun    bool   // forces dry-run on top of the config
	Requested time.Time
}
