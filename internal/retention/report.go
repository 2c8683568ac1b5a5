package retention

import "strings"

// Mode selects whether a pass mutates the filesystem.
type Mode int

const (
	// DryRun selects files exactly like Live but removes nothing.
	DryRun Mode = iota
	Live
)

func (m Mode) String() string {
	if m == Live {
		return "live"
	}
	return "dry-run"
}

// Report is the outcome of one pass over a directory.
type Report struct {
	Root string
	Mode Mode

	// DeletedNames holds base names in the order they were collected: one
	// per file removed, or in DryRun one per file that would be removed.
	DeletedNames []string

	// Failures lists expired files whose removal failed. They are not in
	// DeletedNames.
	Failures []DeletionError
}

// Summary is the reporting line for the pass, e.g. "Deleted a.txt, b.txt".
// It is empty when nothing was deleted.
func (r Report) Summary() string {
	if len(r.DeletedNames) == 0 {
		return ""
	}
	return "Deleted " + strings.Join(r.DeletedNames, ", ")
}

// Err returns the aggregated removal failures, or nil.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return &DeletionErrors{Root: r.Root, Failures: r.Failures}
}
