package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/cron-manager/internal/crontab/crontabtest"
)

const (
	lineA = "0 1 * * * /usr/bin/a"
	lineB = "0 2 * * * /usr/bin/b"
)

func runCLI(t *testing.T, fake *crontabtest.Fake, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, fake)
	return code, stdout.String(), stderr.String()
}

func installedText(t *testing.T, fake *crontabtest.Fake) string {
	t.Helper()
	content, ok := fake.Installed()
	if !ok {
		t.Fatal("Expected a crontab to be installed")
	}
	return content
}

func TestList(t *testing.T) {
	fake := crontabtest.New(lineA + "\n@reboot /usr/bin/b\n")

	code, stdout, stderr := runCLI(t, fake, "list")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", stdout)
	}
	if !strings.HasPrefix(lines[0], "0\t"+lineA+"\t") {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[1] != "1\t@reboot /usr/bin/b\t-" {
		t.Errorf("Expected verbatim line without next run, got %q", lines[1])
	}
}

func TestList_NoTable(t *testing.T) {
	code, stdout, _ := runCLI(t, &crontabtest.Fake{}, "list")
	if code != 0 || stdout != "" {
		t.Errorf("Expected empty output and exit 0, got %d %q", code, stdout)
	}
}

func TestList_ListingFails(t *testing.T) {
	fake := &crontabtest.Fake{ListExit: 1, ListStderr: "crontab: must be privileged"}

	code, _, stderr := runCLI(t, fake, "list")
	if code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "error: ") || !strings.Contains(stderr, "must be privileged") {
		t.Errorf("Expected error with listing stderr, got %q", stderr)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"add", "echo", "hi"}, "* * * * * echo hi\n"},
		{"field flags", []string{"add", "--minute", "30", "--hour", "4", "echo", "hi"}, "30 4 * * * echo hi\n"},
		{"schedule flag", []string{"add", "--schedule", "*/5 * * * 1-5", "echo", "hi"}, "*/5 * * * 1-5 echo hi\n"},
		{"dash command", []string{"add", "--", "echo", "-n", "hi"}, "* * * * * echo -n hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &crontabtest.Fake{}
			code, stdout, stderr := runCLI(t, fake, tt.args...)
			if code != 0 {
				t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
			}
			if got := installedText(t, fake); got != tt.want {
				t.Errorf("Expected installed %q, got %q", tt.want, got)
			}
			if !strings.HasPrefix(stdout, "added entry 0: ") {
				t.Errorf("Unexpected output %q", stdout)
			}
		})
	}
}

func TestAdd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", []string{"add", "--minute", "5"}},
		{"short schedule", []string{"add", "--schedule", "* * *", "echo"}},
		{"mixed schedule", []string{"add", "--schedule", "* * * * *", "--hour", "3", "echo"}},
		{"unknown type", []string{"add", "--type", "ruby", "echo"}},
		{"unknown flag", []string{"add", "--bogus", "echo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &crontabtest.Fake{}
			code, _, stderr := runCLI(t, fake, tt.args...)
			if code != 1 {
				t.Errorf("Expected exit 1, got %d", code)
			}
			if !strings.HasPrefix(stderr, "error: ") {
				t.Errorf("Expected error output, got %q", stderr)
			}
			if len(fake.Calls) != 0 {
				t.Errorf("Expected no crontab invocation, got %v", fake.Calls)
			}
		})
	}
}

func TestEdit_KeepsOmittedParts(t *testing.T) {
	fake := crontabtest.New(lineA + "\n" + lineB + "\n")

	code, _, stderr := runCLI(t, fake, "edit", "1", "--minute", "15")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	want := lineA + "\n15 2 * * * /usr/bin/b\n"
	if got := installedText(t, fake); got != want {
		t.Errorf("Expected installed %q, got %q", want, got)
	}
}

func TestEdit_ReplacesCommand(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")

	code, stdout, stderr := runCLI(t, fake, "edit", "0", "echo", "bye")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if got := installedText(t, fake); got != "0 1 * * * echo bye\n" {
		t.Errorf("Unexpected installed table %q", got)
	}
	if stdout != "edited entry 0: 0 1 * * * echo bye\n" {
		t.Errorf("Unexpected output %q", stdout)
	}
}

func TestEdit_VerbatimNeedsCommand(t *testing.T) {
	fake := crontabtest.New("MAILTO=ops@example.com\n")

	code, _, _ := runCLI(t, fake, "edit", "0", "--hour", "3")
	if code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if fake.InstallCount() != 0 {
		t.Errorf("Expected no install, got %d", fake.InstallCount())
	}
}

func TestDeleteAndShow(t *testing.T) {
	fake := crontabtest.New(lineA + "\n" + lineB + "\n")

	code, stdout, _ := runCLI(t, fake, "show", "1")
	if code != 0 || !strings.HasPrefix(stdout, "1\t"+lineB) {
		t.Fatalf("Unexpected show result %d %q", code, stdout)
	}

	code, stdout, stderr := runCLI(t, fake, "delete", "0")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if stdout != "deleted entry 0, 1 remaining\n" {
		t.Errorf("Unexpected output %q", stdout)
	}
	if got := installedText(t, fake); got != lineB+"\n" {
		t.Errorf("Unexpected installed table %q", got)
	}
}

func TestIndexErrors(t *testing.T) {
	tests := [][]string{
		{"delete", "5"},
		{"delete", "-1"},
		{"delete", "one"},
		{"show", "2"},
		{"edit", "3", "echo"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			fake := crontabtest.New(lineA + "\n")
			code, _, stderr := runCLI(t, fake, args...)
			if code != 1 || !strings.Contains(stderr, "error: ") {
				t.Errorf("Expected exit 1 with error, got %d %q", code, stderr)
			}
			if fake.InstallCount() != 0 {
				t.Errorf("Expected no install, got %d", fake.InstallCount())
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.txt")

	source := crontabtest.New(lineA + "\n")
	code, stdout, stderr := runCLI(t, source, "export", path)
	if code != 0 {
		t.Fatalf("Expected export exit 0, got %d: %s", code, stderr)
	}
	if stdout != "exported 1 entries to "+path+"\n" {
		t.Errorf("Unexpected export output %q", stdout)
	}

	target := crontabtest.New(lineB + "\n")
	code, stdout, stderr = runCLI(t, target, "import", path)
	if code != 0 {
		t.Fatalf("Expected import exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "1 added, 0 already present") {
		t.Errorf("Unexpected import output %q", stdout)
	}
	if got := installedText(t, target); got != lineB+"\n"+lineA+"\n" {
		t.Errorf("Unexpected merged table %q", got)
	}
}

func TestGlobalFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cronctl.yaml")
	if err := os.WriteFile(cfg, []byte("crontab_command: /opt/crontab\nlog_level: off\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	fake := crontabtest.New(lineA + "\n")
	if code, _, stderr := runCLI(t, fake, "--config", cfg, "list"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if got := fake.Calls[0][0]; got != "/opt/crontab" {
		t.Errorf("Expected crontab command from config, got %s", got)
	}

	fake = crontabtest.New(lineA + "\n")
	if code, _, stderr := runCLI(t, fake, "--config", cfg, "--crontab", "/usr/local/bin/crontab", "list"); code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if got := fake.Calls[0][0]; got != "/usr/local/bin/crontab" {
		t.Errorf("Expected flag to override config, got %s", got)
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 1},
		{"unknown command", []string{"frobnicate"}, 1},
		{"help command", []string{"help"}, 0},
		{"help flag", []string{"--help"}, 0},
		{"bad config", []string{"--config", "/nonexistent/cronctl.yaml", "list"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, &crontabtest.Fake{}, tt.args...)
			if code != tt.code {
				t.Errorf("Expected exit %d, got %d: %s", tt.code, code, stderr)
			}
		})
	}
}
