package retention

import (
	"fmt"
	"strings"
)

// ScanError means the directory walk itself failed; the pass over Root
// stopped there.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("retention: scanning %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// DeletionError is one expired file that could not be removed.
type DeletionError struct {
	Path string
	Err  error
}

func (e DeletionError) Error() string {
	return fmt.Sprintf("removing %s: %v", e.Path, e.Err)
}

func (e DeletionError) Unwrap() error { return e.Err }

// DeletionErrors aggregates the per-file failures of one pass.
type DeletionErrors struct {
	Root     string
	Failures []DeletionError
}

func (e *DeletionErrors) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("retention: %d file(s) under %s not removed: %s",
		len(e.Failures), e.Root, strings.Join(msgs, "; "))
}

func (e *DeletionErrors) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
