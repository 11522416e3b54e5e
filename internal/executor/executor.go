// Package executor runs external commands synchronously and translates their
// outcome into the pipeline's pass/fail vocabulary.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/futureCreator/checkrun/internal/log"
)

// Command fully specifies one external command invocation. Description should
// be a complete sentence; it leads the log record for the invocation.
type Command struct {
	Program     string
	Args        []string
	Description string
}

// ErrCommandFailed reports a command that ran to completion with a non-zero
// exit status. The failure has already been logged when this is returned;
// callers treat it as "stop the pipeline here".
var ErrCommandFailed = errors.New("command failed")

// LaunchError reports a command that could not be started at all. It marks a
// broken environment (missing toolchain, bad PATH) rather than a failing
// check, and callers abort the whole run instead of recording a step failure.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not launch %q: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Runner executes commands in a fixed working directory and environment.
type Runner struct {
	Dir string   // working directory; empty means inherit
	Env []string // appended to the inherited environment
}

// Run executes spec to completion, capturing both output streams, and logs a
// single record combining the description with any captured stdout and
// stderr, each appended on its own line when non-empty: at info level when
// the command exits 0, at error level otherwise.
//
// A nil return means success. ErrCommandFailed means the command exited
// non-zero. A *LaunchError means the command could not be started at all.
func (r *Runner) Run(ctx context.Context, lg *log.Logger, spec Command) error {
	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &LaunchError{Program: spec.Program, Err: err}
	}

	record := spec.Description
	if stdout.Len() > 0 {
		record += "\n" + stdout.String()
	}
	if stderr.Len() > 0 {
		record += "\n" + stderr.String()
	}

	if err != nil {
		lg.Error(record, zap.Int("exit_code", exitErr.ExitCode()))
		return fmt.Errorf("%s: %w", spec.Program, ErrCommandFailed)
	}
	lg.Info(record)
	return nil
}
