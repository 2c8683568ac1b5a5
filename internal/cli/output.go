package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/raoulx24/logkeeper/internal/retention"
	"github.com/raoulx24/logkeeper/internal/worker"
)

var (
	prefixStyle = color.New(color.FgHiCyan, color.Bold)
	okStyle     = color.New(color.FgHiGreen, color.Bold)
	infoStyle   = color.New(color.FgHiWhite)
	subtleStyle = color.New(color.FgHiBlack)
	warnStyle   = color.New(color.FgHiYellow, color.Bold)
	errorStyle  = color.New(color.FgHiRed, color.Bold)
)

func prefix() string {
	return prefixStyle.Sprint("[logkeeper]")
}

// printPass writes a human summary of pass to out.
func printPass(out io.Writer, pass worker.Pass, err error) {
	verb := "Deleted"
	if pass.Mode == retention.DryRun {
		verb = "Would delete"
	}

	for _, r := range pass.Reports {
		switch {
		case len(r.DeletedNames) == 0:
			fmt.Fprintf(out, "%s %s\n", prefix(), subtleStyle.Sprintf("%s: nothing expired", r.Root))
		default:
			fmt.Fprintf(out, "%s %s %s\n", prefix(),
				okStyle.Sprintf("%s %d file(s)", verb, len(r.DeletedNames)),
				infoStyle.Sprintf("in %s: %s", r.Root, strings.Join(r.DeletedNames, ", ")))
		}
		for _, f := range r.Failures {
			fmt.Fprintf(out, "%s %s %s\n", prefix(), warnStyle.Sprint("NOT REMOVED"), infoStyle.Sprint(f.Error()))
		}
	}

	if pass.Rotation.Rotated {
		fmt.Fprintf(out, "%s %s %s\n", prefix(), okStyle.Sprint("Archived log"), infoStyle.Sprint(pass.Rotation.ArchivedPath))
	}

	if err != nil {
		fmt.Fprintf(out, "%s %s %v\n", prefix(), errorStyle.Sprint("PASS FAILED."), err)
	}
}
