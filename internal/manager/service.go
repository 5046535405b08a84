package manager

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/config"
	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/model"
	"github.com/ytget/cron-manager/internal/platform"
)

// Operation names used in errors and logs
const (
	OpList   = "list"
	OpAdd    = "add"
	OpEdit   = "edit"
	OpDelete = "delete"
	OpExport = "export"
	OpImport = "import"

	OpIDPrefix = "op-"
)

var _ Manager = (*Service)(nil)

// Service composes reader, resolver and writer into the user actions
type Service struct {
	reader   TableReader
	writer   TableWriter
	resolver CommandResolver
	log      zerolog.Logger
}

// NewService creates a manager from its collaborators
func NewService(reader TableReader, writer TableWriter, resolver CommandResolver, log zerolog.Logger) *Service {
	return &Service{
		reader:   reader,
		writer:   writer,
		resolver: resolver,
		log:      log,
	}
}

// NewFromOptions wires the crontab reader, writer and resolver for opts
func NewFromOptions(runner crontab.Runner, opts config.Options, log zerolog.Logger) *Service {
	opts = opts.WithDefaults()

	reader := crontab.NewReader(runner, opts.CrontabCommand, log)
	reader.SetTimeout(opts.CommandTimeout)
	writer := crontab.NewWriter(runner, opts.CrontabCommand, log)
	writer.SetTimeout(opts.CommandTimeout)
	resolver := crontab.NewResolver(opts.ShellInterpreter, opts.PythonInterpreter)

	return NewService(reader, writer, resolver, log)
}

// ListEntries returns the installed table. On a failed listing the
// Unavailable snapshot is returned together with the error.
func (s *Service) ListEntries(ctx context.Context) (model.Snapshot, error) {
	return s.reader.Read(ctx)
}

// AddEntry appends a new entry built from schedule and input
func (s *Service) AddEntry(ctx context.Context, schedule model.Schedule, input model.CommandInput) (model.Snapshot, error) {
	log := s.opLogger(OpAdd)

	entry, err := s.buildEntry(OpAdd, schedule, input)
	if err != nil {
		log.Warn().Err(err).Msg("entry rejected")
		return model.Snapshot{}, err
	}

	current, err := s.readForWrite(ctx, OpAdd)
	if err != nil {
		return model.Snapshot{}, err
	}

	table := append(current.Entries.Clone(), entry)
	return s.commit(ctx, log, table, "entry added", entry)
}

// EditEntry replaces the entry at index. The index refers to the table as it
// was when the caller last listed it.
func (s *Service) EditEntry(ctx context.Context, index int, schedule model.Schedule, input model.CommandInput) (model.Snapshot, error) {
	log := s.opLogger(OpEdit).With().Int("index", index).Logger()

	entry, err := s.buildEntry(OpEdit, schedule, input)
	if err != nil {
		log.Warn().Err(err).Msg("entry rejected")
		return model.Snapshot{}, err
	}

	current, err := s.readForWrite(ctx, OpEdit)
	if err != nil {
		return model.Snapshot{}, err
	}
	if !current.Entries.InRange(index) {
		return model.Snapshot{}, indexError(OpEdit, index, current.Len())
	}

	table := current.Entries.Clone()
	table[index] = entry
	return s.commit(ctx, log, table, "entry replaced", entry)
}

// DeleteEntry removes the entry at index
func (s *Service) DeleteEntry(ctx context.Context, index int) (model.Snapshot, error) {
	log := s.opLogger(OpDelete).With().Int("index", index).Logger()

	current, err := s.readForWrite(ctx, OpDelete)
	if err != nil {
		return model.Snapshot{}, err
	}
	if !current.Entries.InRange(index) {
		return model.Snapshot{}, indexError(OpDelete, index, current.Len())
	}

	removed := current.Entries[index]
	table := make(model.Table, 0, current.Len()-1)
	table = append(table, current.Entries[:index]...)
	table = append(table, current.Entries[index+1:]...)
	return s.commit(ctx, log, table, "entry deleted", removed)
}

// ExportTo writes the serialized table to path and returns the entry count
func (s *Service) ExportTo(ctx context.Context, path string) (int, error) {
	log := s.opLogger(OpExport).With().Str("path", path).Logger()

	if strings.TrimSpace(path) == "" {
		return 0, &crontab.Error{Kind: crontab.KindExportIO, Op: OpExport, Msg: "no destination file selected"}
	}

	current, err := s.readForWrite(ctx, OpExport)
	if err != nil {
		return 0, err
	}
	if current.Len() == 0 {
		return 0, &crontab.Error{Kind: crontab.KindEmptyTable, Op: OpExport, Msg: "no crontab entries to export"}
	}

	if err := platform.WriteFileAtomic(path, []byte(crontab.Format(current.Entries))); err != nil {
		log.Error().Err(err).Msg("export failed")
		return 0, &crontab.Error{Kind: crontab.KindExportIO, Op: OpExport, Path: path, Msg: "failed to write export file", Err: err}
	}

	log.Info().Int("entries", current.Len()).Msg("crontab exported")
	return current.Len(), nil
}

// ImportFrom merges the entries of path into the installed table. An entry
// is appended only if no entry of the merged table has the same line.
func (s *Service) ImportFrom(ctx context.Context, path string) (ImportResult, error) {
	log := s.opLogger(OpImport).With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Msg("import file unreadable")
		return ImportResult{}, &crontab.Error{Kind: crontab.KindImportIO, Op: OpImport, Path: path, Msg: "failed to read import file", Err: err}
	}
	imported := crontab.ParseTable(string(data))

	current, err := s.readForWrite(ctx, OpImport)
	if err != nil {
		return ImportResult{}, err
	}

	merged, added := Merge(current.Entries, imported)
	result := ImportResult{Added: added, Skipped: len(imported) - added}

	if added == 0 {
		log.Info().Int("skipped", result.Skipped).Msg("nothing new to import")
		result.Snapshot = current
		return result, nil
	}

	if err := s.writer.Write(ctx, merged); err != nil {
		return ImportResult{}, err
	}
	log.Info().Int("added", result.Added).Int("skipped", result.Skipped).Msg("crontab imported")
	result.Snapshot = s.reload(ctx, log, merged)
	return result, nil
}

// Merge appends every entry of imported whose line is not yet present in the
// growing result. It returns the merged table and the number of entries added.
func Merge(current, imported model.Table) (model.Table, int) {
	merged := current.Clone()
	added := 0
	for _, entry := range imported {
		if merged.Contains(entry) {
			continue
		}
		merged = append(merged, entry)
		added++
	}
	return merged, added
}

// ValidateSchedule checks that each field can be written as one token
func ValidateSchedule(schedule model.Schedule) error {
	names := []string{"minute", "hour", "day", "month", "weekday"}
	for i, field := range schedule.Fields() {
		if field == "" {
			return &crontab.Error{Kind: crontab.KindInvalidEntry, Op: "validate", Msg: names[i] + " field is empty"}
		}
		if strings.IndexFunc(field, unicode.IsSpace) >= 0 {
			return &crontab.Error{Kind: crontab.KindInvalidEntry, Op: "validate", Msg: names[i] + " field contains whitespace"}
		}
	}
	return nil
}

func (s *Service) buildEntry(op string, schedule model.Schedule, input model.CommandInput) (model.Entry, error) {
	schedule = model.Schedule{
		Minute:  strings.TrimSpace(schedule.Minute),
		Hour:    strings.TrimSpace(schedule.Hour),
		Day:     strings.TrimSpace(schedule.Day),
		Month:   strings.TrimSpace(schedule.Month),
		Weekday: strings.TrimSpace(schedule.Weekday),
	}
	if err := ValidateSchedule(schedule); err != nil {
		return model.Entry{}, withOp(err, op)
	}

	command, err := s.resolver.Resolve(input)
	if err != nil {
		return model.Entry{}, withOp(err, op)
	}
	return model.NewEntry(schedule, command), nil
}

// readForWrite lists the table before a mutation; a degraded read aborts it
func (s *Service) readForWrite(ctx context.Context, op string) (model.Snapshot, error) {
	current, err := s.reader.Read(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("aborting: current crontab unknown")
		return model.Snapshot{}, withOp(err, op)
	}
	return current, nil
}

func (s *Service) commit(ctx context.Context, log zerolog.Logger, table model.Table, msg string, entry model.Entry) (model.Snapshot, error) {
	if err := s.writer.Write(ctx, table); err != nil {
		return model.Snapshot{}, err
	}
	log.Info().Str("entry", entry.Line()).Int("entries", len(table)).Msg(msg)
	return s.reload(ctx, log, table), nil
}

// reload re-reads the table for display. The write already succeeded, so a
// failing reload falls back to the table that was installed.
func (s *Service) reload(ctx context.Context, log zerolog.Logger, written model.Table) model.Snapshot {
	snapshot, err := s.reader.Read(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("reload after write failed")
		return model.Snapshot{Entries: written, Status: model.TableStatusInstalled}
	}
	return snapshot
}

func (s *Service) opLogger(op string) zerolog.Logger {
	return s.log.With().Str("op", op).Str("op_id", generateOpID()).Logger()
}

func indexError(op string, index, size int) error {
	return &crontab.Error{
		Kind: crontab.KindIndex,
		Op:   op,
		Msg:  fmt.Sprintf("no entry at position %d (table has %d entries)", index, size),
	}
}

// withOp tags a crontab error with the user-facing operation name
func withOp(err error, op string) error {
	if cerr, ok := err.(*crontab.Error); ok {
		tagged := *cerr
		tagged.Op = op
		return &tagged
	}
	return err
}

// generateOpID generates a time-ordered id that tags the log lines of one action
func generateOpID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(OpIDPrefix+"%d", time.Now().UnixNano())
	}
	return OpIDPrefix + id.String()
}
