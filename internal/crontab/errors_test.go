package crontab

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      &Error{Kind: KindIndex, Op: "delete"},
			expected: "delete: IndexError",
		},
		{
			name:     "command failure",
			err:      &Error{Kind: KindWrite, Op: "install", Msg: "failed to update crontab", ExitCode: 1, Stderr: "bad minute"},
			expected: "install: failed to update crontab (exit status 1): bad minute",
		},
		{
			name:     "file failure",
			err:      &Error{Kind: KindImportIO, Op: "import", Path: "/tmp/x", Msg: "cannot read file", Err: fs.ErrNotExist},
			expected: "import /tmp/x: cannot read file: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("ui: %w", &Error{Kind: KindPermission, Op: "resolve"})

	if kind := KindOf(wrapped); kind != KindPermission {
		t.Errorf("KindOf(wrapped) = %s, expected PermissionError", kind)
	}
	if kind := KindOf(errors.New("plain")); kind != KindUnknown {
		t.Errorf("KindOf(plain) = %s, expected Unknown", kind)
	}
	if kind := KindOf(nil); kind != KindUnknown {
		t.Errorf("KindOf(nil) = %s, expected Unknown", kind)
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", &Error{Kind: KindImportIO, Err: fs.ErrPermission})

	if !errors.Is(err, &Error{Kind: KindImportIO}) {
		t.Error("expected errors.Is to match by kind")
	}
	if errors.Is(err, &Error{Kind: KindExportIO}) {
		t.Error("expected errors.Is not to match a different kind")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}
