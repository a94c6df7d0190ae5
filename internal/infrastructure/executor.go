// Package infrastructure hosts adapters with no sub-package of their own.
package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/ports"
)

// LocalExecutor runs a validated command on the host. The command string is
// split on whitespace into program and arguments; it is never handed to a
// shell, so pipes, redirects and globs are not interpreted.
type LocalExecutor struct{}

// NewLocalExecutor builds a new executor.
func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{}
}

// Execute implements ports.CommandExecutor.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		err := errors.New("empty command")
		return domain.ExecutionResult{Err: err}, err
	}

	c := exec.CommandContext(ctx, fields[0], fields[1:]...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, err
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
