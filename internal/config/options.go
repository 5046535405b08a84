package config

import (
	"time"

	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/logging"
)

// Options are the runtime knobs shared by the desktop UI and the CLI
type Options struct {
	CrontabCommand    string        `yaml:"crontab_command"`
	ShellInterpreter  string        `yaml:"shell_interpreter"`
	PythonInterpreter string        `yaml:"python_interpreter"`
	CommandTimeout    time.Duration `yaml:"command_timeout"`
	LogLevel          string        `yaml:"log_level"`
	LogFile           string        `yaml:"log_file"`
}

// Limits for the command timeout
const (
	MinCommandTimeout = time.Second
	MaxCommandTimeout = 10 * time.Minute
)

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	return Options{
		CrontabCommand:    crontab.DefaultCommand,
		ShellInterpreter:  crontab.DefaultShellInterpreter,
		PythonInterpreter: crontab.DefaultPythonInterpreter,
		CommandTimeout:    crontab.DefaultTimeout,
		LogLevel:          logging.DefaultLevel,
	}
}

// WithDefaults fills empty fields from DefaultOptions and clamps the timeout
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if o.CrontabCommand == "" {
		o.CrontabCommand = def.CrontabCommand
	}
	if o.ShellInterpreter == "" {
		o.ShellInterpreter = def.ShellInterpreter
	}
	if o.PythonInterpreter == "" {
		o.PythonInterpreter = def.PythonInterpreter
	}
	if o.LogLevel == "" {
		o.LogLevel = def.LogLevel
	}
	o.CommandTimeout = clampTimeout(o.CommandTimeout)
	return o
}

func clampTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return crontab.DefaultTimeout
	}
	if d < MinCommandTimeout {
		return MinCommandTimeout
	}
	if d > MaxCommandTimeout {
		return MaxCommandTimeout
	}
	return d
}
