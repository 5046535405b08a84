package crontab

import (
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ytget/cron-manager/internal/model"
	"github.com/ytget/cron-manager/internal/platform"
)

// Interpreter defaults
const (
	DefaultShellInterpreter  = "/bin/bash"
	DefaultPythonInterpreter = "/usr/bin/env python3"
)

// Script extensions
const (
	ShellExtension  = ".sh"
	PythonExtension = ".py"
)

// Resolver turns a script path or inline command into the stored command
type Resolver struct {
	shell  string
	python string
}

// NewResolver creates a resolver; empty interpreters fall back to the defaults
func NewResolver(shell, python string) *Resolver {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShellInterpreter
	}
	if strings.TrimSpace(python) == "" {
		python = DefaultPythonInterpreter
	}
	return &Resolver{shell: shell, python: python}
}

// Resolve applies the interpreter rules:
//   - existing .sh file or declared bash: "<shell> <path>"
//   - existing .py file or declared python: "<python> <path>"
//   - other existing file: the path itself, which must be executable
//   - anything else: an inline command, unchanged
func (r *Resolver) Resolve(input model.CommandInput) (string, error) {
	raw := strings.TrimSpace(input.Raw)
	if raw == "" {
		return "", newError(KindInvalidEntry, "resolve", "please enter a script path or command")
	}
	if strings.ContainsAny(raw, "\r\n") {
		return "", newError(KindInvalidEntry, "resolve", "command must be a single line")
	}

	if !platform.IsRegularFile(raw) {
		return raw, nil
	}

	command := raw
	switch r.interpreterFor(raw, input.Type) {
	case model.ScriptBash:
		command = r.shell + " " + shellquote.Join(raw)
	case model.ScriptPython:
		command = r.python + " " + shellquote.Join(raw)
	}

	if platform.IsRegularFile(command) && !platform.IsExecutable(command) {
		return "", &Error{
			Kind: KindPermission,
			Op:   "resolve",
			Path: command,
			Msg:  "selected file is not executable",
		}
	}
	return command, nil
}

func (r *Resolver) interpreterFor(path string, declared model.ScriptType) model.ScriptType {
	if declared == model.ScriptBash || declared == model.ScriptPython {
		return declared
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ShellExtension:
		return model.ScriptBash
	case PythonExtension:
		return model.ScriptPython
	default:
		return model.ScriptAuto
	}
}
