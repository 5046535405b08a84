package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cronctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFile_EmptyPath(t *testing.T) {
	opts, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults, got %+v", opts)
	}
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, `
crontab_command: /usr/bin/crontab
python_interpreter: /opt/venv/bin/python
command_timeout: 45s
log_level: debug
log_file: /tmp/cron-manager.log
`)

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if opts.CrontabCommand != "/usr/bin/crontab" {
		t.Errorf("Unexpected crontab command %s", opts.CrontabCommand)
	}
	if opts.PythonInterpreter != "/opt/venv/bin/python" {
		t.Errorf("Unexpected python interpreter %s", opts.PythonInterpreter)
	}
	if opts.ShellInterpreter != "/bin/bash" {
		t.Errorf("Missing key should keep default, got %s", opts.ShellInterpreter)
	}
	if opts.CommandTimeout != 45*time.Second {
		t.Errorf("Unexpected timeout %v", opts.CommandTimeout)
	}
	if opts.LogLevel != "debug" || opts.LogFile != "/tmp/cron-manager.log" {
		t.Errorf("Unexpected logging options %+v", opts)
	}
}

func TestLoadFile_EmptyDocument(t *testing.T) {
	opts, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults for empty file, got %+v", opts)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(t.TempDir(), "missing.yaml"),
			message: "failed to read config",
		},
		{
			name:    "unknown key",
			path:    writeConfig(t, "crontab_cmd: crontab\n"),
			message: "failed to parse config",
		},
		{
			name:    "bad duration",
			path:    writeConfig(t, "command_timeout: soon\n"),
			message: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error containing %q, got %v", tt.message, err)
			}
		})
	}
}

func TestOptionsWithDefaults_ClampsTimeout(t *testing.T) {
	opts := Options{CommandTimeout: time.Millisecond}.WithDefaults()
	if opts.CommandTimeout != MinCommandTimeout {
		t.Errorf("Expected clamp to minimum, got %v", opts.CommandTimeout)
	}
	opts = Options{CommandTimeout: 24 * time.Hour}.WithDefaults()
	if opts.CommandTimeout != MaxCommandTimeout {
		t.Errorf("Expected clamp to maximum, got %v", opts.CommandTimeout)
	}
}
