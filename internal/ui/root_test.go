package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/config"
	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/crontab/crontabtest"
	"github.com/ytget/cron-manager/internal/manager"
	"github.com/ytget/cron-manager/internal/model"
)

const (
	lineA = "0 1 * * * /usr/bin/a"
	lineB = "0 2 * * * /usr/bin/b"
)

func newTestRoot(t *testing.T, fake *crontabtest.Fake) *RootUI {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	settings.SetLastDirectory(t.TempDir())

	factory := func(opts config.Options) manager.Manager {
		return manager.NewFromOptions(fake, opts, zerolog.Nop())
	}
	return NewRootUI(window, settings, factory, zerolog.Nop())
}

func installedText(t *testing.T, fake *crontabtest.Fake) string {
	t.Helper()
	content, ok := fake.Installed()
	if !ok {
		t.Fatal("Expected a crontab to be installed")
	}
	return content
}

func TestRootUI_LoadsInstalledEntries(t *testing.T) {
	ui := newTestRoot(t, crontabtest.New(lineA+"\n"+lineB+"\n"))

	if ui.snapshot.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", ui.snapshot.Len())
	}
	if ui.statusLabel.Text != "2 entries" {
		t.Errorf("Expected entry count in status line, got %q", ui.statusLabel.Text)
	}
	if ui.entryList.Length() != 2 {
		t.Errorf("Expected list length 2, got %d", ui.entryList.Length())
	}
}

func TestRootUI_StatusForMissingAndFailedTable(t *testing.T) {
	tests := []struct {
		name     string
		fake     *crontabtest.Fake
		expected string
	}{
		{"no table", &crontabtest.Fake{}, "No crontab installed for this user"},
		{"listing fails", &crontabtest.Fake{ListExit: 1, ListStderr: "crontab: denied"}, IconWarning + " Error loading cron"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestRoot(t, tt.fake)
			if ui.statusLabel.Text != tt.expected {
				t.Errorf("Expected status %q, got %q", tt.expected, ui.statusLabel.Text)
			}
			if ui.snapshot.Len() != 0 {
				t.Errorf("Expected no entries, got %d", ui.snapshot.Len())
			}
		})
	}
}

func TestRootUI_AddEntry(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")
	ui := newTestRoot(t, fake)

	ui.form.minuteEntry.SetText("30")
	ui.form.commandEntry.SetText("echo hello")
	ui.onAccept()

	want := lineA + "\n30 * * * * echo hello\n"
	if got := installedText(t, fake); got != want {
		t.Errorf("Expected installed table %q, got %q", want, got)
	}
	if ui.snapshot.Len() != 2 {
		t.Errorf("Expected 2 entries after add, got %d", ui.snapshot.Len())
	}
	if ui.form.commandEntry.Text != "" || ui.form.minuteEntry.Text != model.AnyValue {
		t.Error("Expected form to be reset after a successful add")
	}
}

func TestRootUI_InvalidEntryKeepsCrontabUntouched(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")
	ui := newTestRoot(t, fake)
	calls := len(fake.Calls)

	ui.form.minuteEntry.SetText("")
	ui.form.commandEntry.SetText("echo hello")
	ui.onAccept()

	if len(fake.Calls) != calls {
		t.Errorf("Expected no crontab invocation for an invalid entry, got %v", fake.Calls[calls:])
	}
	if ui.form.commandEntry.Text != "echo hello" {
		t.Error("Expected form to keep user input after a rejected entry")
	}
}

func TestRootUI_EditSelected(t *testing.T) {
	fake := crontabtest.New(lineA + "\n" + lineB + "\n")
	ui := newTestRoot(t, fake)

	ui.selected = 1
	ui.onEditSelected()
	if ui.editing != 1 {
		t.Fatalf("Expected editing index 1, got %d", ui.editing)
	}
	if ui.form.commandEntry.Text != "/usr/bin/b" || ui.form.hourEntry.Text != "2" {
		t.Fatalf("Expected form loaded with entry, got %q / %q", ui.form.commandEntry.Text, ui.form.hourEntry.Text)
	}

	ui.form.minuteEntry.SetText("5")
	ui.onAccept()

	want := lineA + "\n5 2 * * * /usr/bin/b\n"
	if got := installedText(t, fake); got != want {
		t.Errorf("Expected installed table %q, got %q", want, got)
	}
	if ui.editing != NoSelection {
		t.Errorf("Expected editing mode to end, got %d", ui.editing)
	}
}

func TestRootUI_EditVerbatimIsRefused(t *testing.T) {
	fake := crontabtest.New("MAILTO=ops@example.com\n" + lineA + "\n")
	ui := newTestRoot(t, fake)

	ui.selected = 0
	ui.onEditSelected()
	if ui.editing != NoSelection {
		t.Errorf("Expected verbatim line not to enter editing mode, got %d", ui.editing)
	}
}

func TestRootUI_DeleteWithoutConfirmation(t *testing.T) {
	fake := crontabtest.New(lineA + "\n" + lineB + "\n")
	ui := newTestRoot(t, fake)
	ui.settings.SetConfirmDelete(false)

	ui.selected = 0
	ui.onDeleteSelected()

	if got := installedText(t, fake); got != lineB+"\n" {
		t.Errorf("Expected only second entry to remain, got %q", got)
	}
	if ui.selected != NoSelection {
		t.Errorf("Expected selection cleared after delete, got %d", ui.selected)
	}
}

func TestRootUI_DeleteWithoutSelection(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")
	ui := newTestRoot(t, fake)
	ui.settings.SetConfirmDelete(false)

	ui.onDeleteSelected()

	if fake.InstallCount() != 0 {
		t.Errorf("Expected no install without a selection, got %d", fake.InstallCount())
	}
}

func TestRootUI_ExportAndImport(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")
	ui := newTestRoot(t, fake)
	dir := t.TempDir()

	exported := filepath.Join(dir, DefaultExportFileName)
	ui.exportTo(exported)

	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("Expected exported file, got %v", err)
	}
	if string(data) != lineA+"\n" {
		t.Errorf("Expected exported table %q, got %q", lineA+"\n", string(data))
	}
	if ui.settings.GetLastDirectory() != dir {
		t.Errorf("Expected last directory %s, got %s", dir, ui.settings.GetLastDirectory())
	}

	source := filepath.Join(dir, "more.cron")
	if err := os.WriteFile(source, []byte(lineA+"\n"+lineB+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}
	ui.importFrom(source)

	if got := installedText(t, fake); got != lineA+"\n"+lineB+"\n" {
		t.Errorf("Expected merged table, got %q", got)
	}
	if ui.snapshot.Len() != 2 {
		t.Errorf("Expected 2 entries after import, got %d", ui.snapshot.Len())
	}
}

func TestRootUI_ExportEmptyTableRemovesPlaceholder(t *testing.T) {
	ui := newTestRoot(t, &crontabtest.Fake{})
	path := filepath.Join(t.TempDir(), DefaultExportFileName)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to create placeholder: %v", err)
	}

	ui.exportTo(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected empty placeholder to be removed, got %v", err)
	}
}

func TestRootUI_SettingsSavedRebuildsManager(t *testing.T) {
	fake := crontabtest.New(lineA + "\n")
	ui := newTestRoot(t, fake)

	ui.settings.SetCrontabCommand("/opt/bin/crontab")
	ui.onSettingsSaved()

	last := fake.Calls[len(fake.Calls)-1]
	if last[0] != "/opt/bin/crontab" {
		t.Errorf("Expected reload with new crontab command, got %v", last)
	}
}

func TestRootUI_NextRunText(t *testing.T) {
	ui := newTestRoot(t, &crontabtest.Fake{})
	ui.now = func() time.Time {
		return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)
	}

	entry := model.NewEntry(model.Schedule{Minute: "0", Hour: "12", Day: "*", Month: "*", Weekday: "*"}, "/usr/bin/a")
	if got := ui.nextRunText(entry); !strings.HasSuffix(got, "Fri 01 Mar 12:00") {
		t.Errorf("Expected next run at noon, got %q", got)
	}

	if got := ui.nextRunText(model.NewVerbatimEntry("@reboot /usr/bin/a")); got != DashPlaceholder {
		t.Errorf("Expected placeholder for verbatim entry, got %q", got)
	}
}

func TestRootUI_ErrorTitle(t *testing.T) {
	ui := newTestRoot(t, &crontabtest.Fake{})

	tests := []struct {
		err      error
		expected string
	}{
		{&crontab.Error{Kind: crontab.KindPermission}, "Permission Denied"},
		{&crontab.Error{Kind: crontab.KindWrite}, "Failed to update crontab"},
		{&crontab.Error{Kind: crontab.KindEmptyTable}, "No crontab found"},
		{fmt.Errorf("wrapped: %w", &crontab.Error{Kind: crontab.KindIndex}), "Entry not found"},
		{errors.New("plain"), "Error"},
	}

	for _, tt := range tests {
		if got := ui.errorTitle(tt.err); got != tt.expected {
			t.Errorf("errorTitle(%v): expected %q, got %q", tt.err, tt.expected, got)
		}
	}
}
