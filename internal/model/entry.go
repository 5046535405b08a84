package model

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// FieldCount is the number of positional schedule fields preceding the command
const FieldCount = 5

// Default value of every schedule field in new entries
const AnyValue = "*"

// Schedule holds the five positional fields of a crontab line. Values are
// free-form strings; nothing here interprets cron syntax.
type Schedule struct {
	Minute  string
	Hour    string
	Day     string // day of month
	Month   string
	Weekday string
}

// EveryMinute returns the schedule with every field set to "*"
func EveryMinute() Schedule {
	return Schedule{Minute: AnyValue, Hour: AnyValue, Day: AnyValue, Month: AnyValue, Weekday: AnyValue}
}

// ScheduleFromFields builds a Schedule from exactly five fields
func ScheduleFromFields(fields []string) (Schedule, bool) {
	if len(fields) != FieldCount {
		return Schedule{}, false
	}
	return Schedule{
		Minute:  fields[0],
		Hour:    fields[1],
		Day:     fields[2],
		Month:   fields[3],
		Weekday: fields[4],
	}, true
}

// Fields returns the schedule fields in crontab order
func (s Schedule) Fields() []string {
	return []string{s.Minute, s.Hour, s.Day, s.Month, s.Weekday}
}

// String joins the fields with single spaces
func (s Schedule) String() string {
	return strings.Join(s.Fields(), " ")
}

// Entry represents a single crontab line. Parsed entries carry a schedule and
// a command; lines that could not be split into six tokens are kept in
// Verbatim so rewriting the table preserves them.
type Entry struct {
	Schedule
	Command  string
	Verbatim string
}

// NewEntry creates a parsed entry
func NewEntry(schedule Schedule, command string) Entry {
	return Entry{Schedule: schedule, Command: command}
}

// NewVerbatimEntry wraps a line that is kept as-is
func NewVerbatimEntry(line string) Entry {
	return Entry{Verbatim: strings.TrimSpace(line)}
}

// IsVerbatim returns true if the entry was not parsed into fields
func (e Entry) IsVerbatim() bool {
	return e.Verbatim != ""
}

// Line returns the serialized crontab line
func (e Entry) Line() string {
	if e.IsVerbatim() {
		return e.Verbatim
	}
	return e.Schedule.String() + " " + e.Command
}

// String returns the serialized crontab line
func (e Entry) String() string {
	return e.Line()
}

// NextRun returns the next activation after the given time, or false if the
// schedule is not understood by the standard cron parser
func (e Entry) NextRun(after time.Time) (time.Time, bool) {
	if e.IsVerbatim() {
		return time.Time{}, false
	}
	sched, err := cron.ParseStandard(e.Schedule.String())
	if err != nil {
		return time.Time{}, false
	}
	next := sched.Next(after)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

// Table is the ordered list of entries; position is the only identity
type Table []Entry

// Lines returns the serialized form of every entry
func (t Table) Lines() []string {
	lines := make([]string, 0, len(t))
	for _, e := range t {
		lines = append(lines, e.Line())
	}
	return lines
}

// Contains reports whether an entry with an identical serialized line exists
func (t Table) Contains(e Entry) bool {
	line := e.Line()
	for _, existing := range t {
		if existing.Line() == line {
			return true
		}
	}
	return false
}

// InRange reports whether index addresses an entry of the table
func (t Table) InRange(index int) bool {
	return index >= 0 && index < len(t)
}

// Clone returns a copy that can be mutated without touching t
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Snapshot is the result of a single read of the installed table
type Snapshot struct {
	Entries Table
	Status  TableStatus
}

// Len returns the number of entries in the snapshot
func (s Snapshot) Len() int {
	return len(s.Entries)
}

// CommandInput is what the user typed for the command: a script path or an
// inline command, plus the declared script type
type CommandInput struct {
	Raw  string
	Type ScriptType
}
