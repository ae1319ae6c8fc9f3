package patch

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Exit statuses returned by Run.
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitData  = 2
)

// Run executes the tool against argv and returns the process exit status.
// The confirmation line goes to stdout; usage text and diagnostics go to
// stderr.
func Run(t Tool, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, t.Name+": ", 0)

	path, p, err := t.run(argv)
	if err == nil {
		fmt.Fprintf(stdout, "Updated %s with %s\n", path, p.Summary())
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		logger.Printf("%s %v", color.RedString("error:"), usageErr)
		if err := t.WriteUsage(stderr); err != nil {
			logger.Printf("%s %v", color.RedString("error:"), err)
		}
		return ExitUsage
	}
	logger.Printf("%s %v", color.RedString("error:"), err)
	return ExitData
}

func (t Tool) run(argv []string) (string, Patch, error) {
	args := t.ScanArgs(argv)
	p, err := t.Validate(args)
	if err != nil {
		return "", p, err
	}
	path, err := PatchFile(args.File, p)
	return path, p, err
}
