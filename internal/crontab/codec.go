package crontab

import (
	"strings"
	"unicode"

	"github.com/ytget/cron-manager/internal/model"
)

// CommentPrefix starts a line that is never an entry
const CommentPrefix = "#"

// Parse splits a line into five schedule fields and the command. Everything
// from the sixth token on, inner whitespace included, is the command.
func Parse(line string) (model.Entry, error) {
	rest := strings.TrimSpace(line)
	fields := make([]string, 0, model.FieldCount)
	for len(fields) < model.FieldCount {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return model.Entry{}, &Error{
				Kind: KindParse,
				Op:   "parse",
				Msg:  "entry needs five schedule fields and a command: " + strings.TrimSpace(line),
			}
		}
		fields = append(fields, rest[:end])
		rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	}
	if rest == "" {
		return model.Entry{}, &Error{
			Kind: KindParse,
			Op:   "parse",
			Msg:  "entry has no command: " + strings.TrimSpace(line),
		}
	}

	schedule, _ := model.ScheduleFromFields(fields)
	return model.NewEntry(schedule, rest), nil
}

// ParseLine is the lenient variant used when reading tables: lines that do
// not split into six tokens come back as verbatim entries
func ParseLine(line string) model.Entry {
	entry, err := Parse(line)
	if err != nil {
		return model.NewVerbatimEntry(line)
	}
	return entry
}

// IsEntryLine reports whether a raw line holds an entry (not blank, not a comment)
func IsEntryLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, CommentPrefix)
}

// ParseTable parses a full table text, dropping blank and comment lines
func ParseTable(text string) model.Table {
	table := model.Table{}
	for _, line := range strings.Split(text, "\n") {
		if !IsEntryLine(line) {
			continue
		}
		table = append(table, ParseLine(line))
	}
	return table
}

// Format serializes a table: one line per entry and exactly one trailing newline
func Format(table model.Table) string {
	return strings.Join(table.Lines(), "\n") + "\n"
}
