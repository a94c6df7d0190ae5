package cli

import (
	"fmt"
	"io"

	"github.com/linara-sh/linara/internal/domain"
)

// RenderResult prints the translated command in a plain, ASCII-only format.
// The command goes on its own line so it can be piped or copied directly.
func RenderResult(out io.Writer, result domain.TranslationResult, debug bool) {
	fmt.Fprintln(out, result.Command)
	if debug {
		fmt.Fprintf(out, "source: %s", result.Source)
		if result.Model != "" {
			fmt.Fprintf(out, " (%s)", result.Model)
		}
		fmt.Fprintf(out, ", took %dms\n", result.DurationMS)
	}
}

// RenderExecution prints the outcome of running a translated command.
func RenderExecution(out io.Writer, result domain.ExecutionResult) {
	if result.Stdout != "" {
		fmt.Fprint(out, result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(out, result.Stderr)
	}
	if !result.Ran {
		if result.Err != nil {
			fmt.Fprintf(out, "command failed: %v\n", result.Err)
		}
		if result.ExitCode != 0 {
			fmt.Fprintf(out, "exit code: %d\n", result.ExitCode)
		}
	}
}
