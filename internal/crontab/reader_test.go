package crontab_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/crontab/crontabtest"
	"github.com/ytget/cron-manager/internal/model"
)

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name          string
		fake          *crontabtest.Fake
		expectStatus  model.TableStatus
		expectLines   []string
		expectErrKind crontab.Kind
	}{
		{
			name:         "installed table",
			fake:         crontabtest.New("# header\n* * * * * echo hi\n\n0 0 * * * /bin/true\n"),
			expectStatus: model.TableStatusInstalled,
			expectLines:  []string{"* * * * * echo hi", "0 0 * * * /bin/true"},
		},
		{
			name:         "no table for user",
			fake:         &crontabtest.Fake{},
			expectStatus: model.TableStatusEmpty,
		},
		{
			name:          "listing fails for another reason",
			fake:          &crontabtest.Fake{ListExit: 1, ListStderr: "crontab: permission denied\n"},
			expectStatus:  model.TableStatusUnavailable,
			expectErrKind: crontab.KindRead,
		},
		{
			name:          "binary missing",
			fake:          &crontabtest.Fake{RunErr: errors.New("executable file not found")},
			expectStatus:  model.TableStatusUnavailable,
			expectErrKind: crontab.KindRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := crontab.NewReader(tt.fake, "", zerolog.Nop())
			snapshot, err := reader.Read(context.Background())

			if tt.expectErrKind == crontab.KindUnknown && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectErrKind != crontab.KindUnknown && crontab.KindOf(err) != tt.expectErrKind {
				t.Fatalf("expected %s, got %v", tt.expectErrKind, err)
			}
			if snapshot.Status != tt.expectStatus {
				t.Errorf("expected status %s, got %s", tt.expectStatus, snapshot.Status)
			}
			if snapshot.Entries == nil {
				t.Error("entries should never be nil")
			}
			lines := snapshot.Entries.Lines()
			if len(lines) != len(tt.expectLines) {
				t.Fatalf("expected %d entries, got %d: %v", len(tt.expectLines), len(lines), lines)
			}
			for i := range lines {
				if lines[i] != tt.expectLines[i] {
					t.Errorf("entry %d = %q, expected %q", i, lines[i], tt.expectLines[i])
				}
			}
		})
	}
}

func TestReader_ReadErrorCarriesDiagnostics(t *testing.T) {
	fake := &crontabtest.Fake{ListExit: 2, ListStderr: "crontab: cannot open spool\n"}
	reader := crontab.NewReader(fake, "crontab", zerolog.Nop())

	_, err := reader.Read(context.Background())

	var cerr *crontab.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *crontab.Error, got %T", err)
	}
	if cerr.ExitCode != 2 {
		t.Errorf("expected exit code 2, got %d", cerr.ExitCode)
	}
	if cerr.Stderr != "crontab: cannot open spool" {
		t.Errorf("unexpected stderr %q", cerr.Stderr)
	}
	if !errors.Is(err, &crontab.Error{Kind: crontab.KindRead}) {
		t.Error("errors.Is should match by kind")
	}
}

func TestReader_UsesConfiguredCommand(t *testing.T) {
	fake := crontabtest.New("")
	reader := crontab.NewReader(fake, "/usr/local/bin/crontab", zerolog.Nop())

	if _, err := reader.Read(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.Calls) != 1 || fake.Calls[0][0] != "/usr/local/bin/crontab" || fake.Calls[0][1] != "-l" {
		t.Errorf("unexpected calls: %v", fake.Calls)
	}
}
