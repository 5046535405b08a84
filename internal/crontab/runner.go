package crontab

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result is the observed outcome of one external command
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes an external command to completion
type Runner interface {
	// Run starts argv[0] with the remaining arguments, feeds stdin, and waits.
	// A non-zero exit is reported through Result.ExitCode with a nil error;
	// the error is reserved for commands that could not be run at all.
	Run(ctx context.Context, argv []string, stdin []byte) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner creates a runner backed by real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, argv []string, stdin []byte) (Result, error) {
	if len(argv) == 0 {
		return Result{}, fmt.Errorf("empty command line")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if ctx.Err() != nil {
		return res, fmt.Errorf("%s: %w", argv[0], ctx.Err())
	}
	return res, fmt.Errorf("failed to run %s: %w", argv[0], err)
}
