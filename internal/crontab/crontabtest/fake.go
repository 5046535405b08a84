// Package crontabtest provides an in-memory stand-in for the crontab binary.
package crontabtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/ytget/cron-manager/internal/crontab"
)

// Fake behaves like "crontab -l" and "crontab -" against an in-memory table.
// The zero value has no table installed.
type Fake struct {
	mu sync.Mutex

	installed *string

	// ListExit/ListStderr force the listing command to fail
	ListExit   int
	ListStderr string

	// InstallExit/InstallStderr force the install command to fail
	InstallExit   int
	InstallStderr string

	// RunErr makes every invocation fail to start
	RunErr error

	Calls    [][]string
	Installs []string
}

// New creates a fake with content installed
func New(content string) *Fake {
	f := &Fake{}
	f.SetInstalled(content)
	return f
}

// SetInstalled replaces the table as if edited externally
func (f *Fake) SetInstalled(content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := content
	f.installed = &c
}

// Installed returns the current table text and whether one exists
func (f *Fake) Installed() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.installed == nil {
		return "", false
	}
	return *f.installed, true
}

// InstallCount returns how many times the install command was invoked
func (f *Fake) InstallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Installs)
}

// Run implements crontab.Runner
func (f *Fake) Run(ctx context.Context, argv []string, stdin []byte) (crontab.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, append([]string(nil), argv...))
	if f.RunErr != nil {
		return crontab.Result{}, f.RunErr
	}
	if len(argv) != 2 {
		return crontab.Result{ExitCode: 1, Stderr: []byte("usage: crontab [-l | -]\n")}, nil
	}

	switch argv[1] {
	case crontab.ListFlag:
		if f.ListExit != 0 {
			return crontab.Result{ExitCode: f.ListExit, Stderr: []byte(f.ListStderr)}, nil
		}
		if f.installed == nil {
			return crontab.Result{ExitCode: 1, Stderr: []byte("no crontab for tester\n")}, nil
		}
		return crontab.Result{Stdout: []byte(*f.installed)}, nil
	case crontab.InstallStdin:
		f.Installs = append(f.Installs, string(stdin))
		if f.InstallExit != 0 {
			return crontab.Result{ExitCode: f.InstallExit, Stderr: []byte(f.InstallStderr)}, nil
		}
		c := string(stdin)
		f.installed = &c
		return crontab.Result{}, nil
	default:
		return crontab.Result{ExitCode: 1, Stderr: []byte(fmt.Sprintf("crontab: unknown option %s\n", argv[1]))}, nil
	}
}
