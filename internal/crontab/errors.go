package crontab

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies failures surfaced to the UI
type Kind int

const (
	KindUnknown Kind = iota
	KindRead
	KindParse
	KindPermission
	KindWrite
	KindImportIO
	KindExportIO
	KindIndex
	KindInvalidEntry
	KindEmptyTable
)

// String returns the error kind name
func (k Kind) String() string {
	switch k {
	case KindRead:
		return "ReadError"
	case KindParse:
		return "ParseError"
	case KindPermission:
		return "PermissionError"
	case KindWrite:
		return "WriteError"
	case KindImportIO:
		return "ImportIOError"
	case KindExportIO:
		return "ExportIOError"
	case KindIndex:
		return "IndexError"
	case KindInvalidEntry:
		return "InvalidEntry"
	case KindEmptyTable:
		return "EmptyTable"
	default:
		return "Unknown"
	}
}

// Error is the typed failure returned by every crontab and manager operation
type Error struct {
	Kind     Kind
	Op       string // operation, e.g. "list", "install", "resolve"
	Path     string // file involved, if any
	ExitCode int    // exit status of the external command, if any
	Stderr   string // trimmed stderr of the external command, if any
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.ExitCode != 0 {
		fmt.Fprintf(&b, " (exit status %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: KindIndex}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
