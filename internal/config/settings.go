package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/cron-manager/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyCrontabCommand    = "crontab_command"
	KeyShellInterpreter  = "shell_interpreter"
	KeyPythonInterpreter = "python_interpreter"
	KeyCommandTimeoutSec = "command_timeout_sec"
	KeyLogLevel          = "log_level"
	KeyLanguage          = "app_language"
	KeyLastDirectory     = "last_directory"
	KeyConfirmDelete     = "confirm_delete"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultConfirmDelete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Options returns the crontab options stored in preferences
func (s *Settings) Options() Options {
	return Options{
		CrontabCommand:    s.GetCrontabCommand(),
		ShellInterpreter:  s.GetShellInterpreter(),
		PythonInterpreter: s.GetPythonInterpreter(),
		CommandTimeout:    s.GetCommandTimeout(),
		LogLevel:          s.GetLogLevel(),
	}.WithDefaults()
}

// GetCrontabCommand returns the crontab binary name or path
func (s *Settings) GetCrontabCommand() string {
	return s.stringWithDefault(KeyCrontabCommand, DefaultOptions().CrontabCommand)
}

// SetCrontabCommand sets the crontab binary; empty restores the default
func (s *Settings) SetCrontabCommand(command string) {
	s.app.Preferences().SetString(KeyCrontabCommand, command)
}

// GetShellInterpreter returns the interpreter used for shell scripts
func (s *Settings) GetShellInterpreter() string {
	return s.stringWithDefault(KeyShellInterpreter, DefaultOptions().ShellInterpreter)
}

// SetShellInterpreter sets the interpreter used for shell scripts
func (s *Settings) SetShellInterpreter(interpreter string) {
	s.app.Preferences().SetString(KeyShellInterpreter, interpreter)
}

// GetPythonInterpreter returns the interpreter used for python scripts
func (s *Settings) GetPythonInterpreter() string {
	return s.stringWithDefault(KeyPythonInterpreter, DefaultOptions().PythonInterpreter)
}

// SetPythonInterpreter sets the interpreter used for python scripts
func (s *Settings) SetPythonInterpreter(interpreter string) {
	s.app.Preferences().SetString(KeyPythonInterpreter, interpreter)
}

// GetCommandTimeout returns how long a crontab invocation may take
func (s *Settings) GetCommandTimeout() time.Duration {
	sec := s.app.Preferences().Int(KeyCommandTimeoutSec)
	if sec <= 0 {
		def := DefaultOptions().CommandTimeout
		s.SetCommandTimeout(def)
		return def
	}
	return time.Duration(sec) * time.Second
}

// SetCommandTimeout stores the timeout, clamped to the allowed range
func (s *Settings) SetCommandTimeout(timeout time.Duration) {
	timeout = clampTimeout(timeout)
	s.app.Preferences().SetInt(KeyCommandTimeoutSec, int(timeout/time.Second))
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.stringWithDefault(KeyLogLevel, DefaultOptions().LogLevel)
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.stringWithDefault(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastDirectory returns the directory of the last export/import, or the home directory
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		return platform.GetHomeDir()
	}
	return dir
}

// SetLastDirectory remembers the directory of the last export/import
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetConfirmDelete returns whether deletions ask for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deletions ask for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func (s *Settings) stringWithDefault(key, def string) string {
	value := s.app.Preferences().String(key)
	if value == "" {
		s.app.Preferences().SetString(key, def)
		return def
	}
	return value
}
