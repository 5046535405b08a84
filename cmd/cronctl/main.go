// Command cronctl edits the invoking user's crontab from the terminal using
// the same manager as the desktop app.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ytget/cron-manager/internal/config"
	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/logging"
	"github.com/ytget/cron-manager/internal/manager"
	"github.com/ytget/cron-manager/internal/model"
)

const (
	defaultCLILogLevel = "error"
	nextRunFormat      = "2006-01-02 15:04"
)

const usage = `usage: cronctl [--config file] [--crontab cmd] [--log-level level] <command> [flags] [args]

commands:
  list                      print installed entries with their next run
  show <index>              print one entry
  add [schedule] cmd...     append an entry
  edit <index> [schedule] [cmd...]
                            replace an entry; omitted parts are kept
  delete <index>            remove an entry
  export <path>             write the table to a file
  import <path>             merge entries from a file

schedule flags: --minute --hour --day --month --weekday, or --schedule "m h d M w"
script flag:    --type auto|bash|python
use -- before a command that starts with a dash
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, crontab.NewExecRunner()))
}

// run executes one cronctl invocation and returns the process exit code
func run(args []string, stdout, stderr io.Writer, runner crontab.Runner) int {
	err := execute(args, stdout, stderr, runner)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pflag.ErrHelp):
		fmt.Fprint(stderr, usage)
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage)
		return 1
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

type app struct {
	svc    manager.Manager
	stdout io.Writer
	now    func() time.Time
}

func execute(args []string, stdout, stderr io.Writer, runner crontab.Runner) error {
	global := pflag.NewFlagSet("cronctl", pflag.ContinueOnError)
	global.SetOutput(io.Discard)
	global.SetInterspersed(false)
	configPath := global.String("config", "", "YAML config file")
	crontabCmd := global.String("crontab", "", "crontab binary to invoke")
	logLevel := global.String("log-level", defaultCLILogLevel, "trace|debug|info|warn|error|off")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := global.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	opts, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if global.Changed("crontab") {
		opts.CrontabCommand = *crontabCmd
		opts = opts.WithDefaults()
	}

	level := *logLevel
	if !global.Changed("log-level") && *configPath != "" {
		level = opts.LogLevel
	}
	logger, closer, err := logging.New(logging.Config{
		Level:   level,
		Console: true,
		NoColor: !isTerminal(stderr),
		File:    opts.LogFile,
		Out:     stderr,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	a := &app{
		svc:    manager.NewFromOptions(runner, opts, logger),
		stdout: stdout,
		now:    time.Now,
	}
	return a.dispatch(context.Background(), logger, rest[0], rest[1:])
}

func (a *app) dispatch(ctx context.Context, log zerolog.Logger, command string, args []string) error {
	log.Debug().Str("command", command).Strs("args", args).Msg("dispatching")

	switch command {
	case "list":
		return a.list(ctx, args)
	case "show":
		return a.show(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "edit":
		return a.edit(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "export":
		return a.export(ctx, args)
	case "import":
		return a.importFile(ctx, args)
	case "help":
		return pflag.ErrHelp
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", errUsage)
	}
	snapshot, err := a.svc.ListEntries(ctx)
	if err != nil {
		return err
	}
	for i, entry := range snapshot.Entries {
		a.printEntry(i, entry)
	}
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show needs an index", errUsage)
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	entry, err := a.entryAt(ctx, manager.OpList, index)
	if err != nil {
		return err
	}
	a.printEntry(index, entry)
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs, flags := newEntryFlags("add")
	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}

	schedule, err := flags.schedule(fs, model.EveryMinute())
	if err != nil {
		return err
	}
	input, err := flags.input(fs.Args())
	if err != nil {
		return err
	}
	if strings.TrimSpace(input.Raw) == "" {
		return fmt.Errorf("%w: add needs a command", errUsage)
	}

	snapshot, err := a.svc.AddEntry(ctx, schedule, input)
	if err != nil {
		return err
	}
	last := snapshot.Len() - 1
	if snapshot.Entries.InRange(last) {
		fmt.Fprintf(a.stdout, "added entry %d: %s\n", last, snapshot.Entries[last].Line())
	}
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	fs, flags := newEntryFlags("edit")
	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}
	positional := fs.Args()
	if len(positional) == 0 {
		return fmt.Errorf("%w: edit needs an index", errUsage)
	}
	index, err := parseIndex(positional[0])
	if err != nil {
		return err
	}

	current, err := a.entryAt(ctx, manager.OpEdit, index)
	if err != nil {
		return err
	}
	base := current.Schedule
	if current.IsVerbatim() {
		base = model.EveryMinute()
	}
	schedule, err := flags.schedule(fs, base)
	if err != nil {
		return err
	}

	input, err := flags.input(positional[1:])
	if err != nil {
		return err
	}
	if strings.TrimSpace(input.Raw) == "" {
		if current.IsVerbatim() {
			return fmt.Errorf("%w: entry %d is not a scheduled job, give a command to replace it", errUsage, index)
		}
		input.Raw = current.Command
	}

	snapshot, err := a.svc.EditEntry(ctx, index, schedule, input)
	if err != nil {
		return err
	}
	if snapshot.Entries.InRange(index) {
		fmt.Fprintf(a.stdout, "edited entry %d: %s\n", index, snapshot.Entries[index].Line())
	}
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete needs an index", errUsage)
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	snapshot, err := a.svc.DeleteEntry(ctx, index)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "deleted entry %d, %d remaining\n", index, snapshot.Len())
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: export needs a path", errUsage)
	}
	count, err := a.svc.ExportTo(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "exported %d entries to %s\n", count, args[0])
	return nil
}

func (a *app) importFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import needs a path", errUsage)
	}
	result, err := a.svc.ImportFrom(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "imported %s: %d added, %d already present\n", args[0], result.Added, result.Skipped)
	return nil
}

func (a *app) entryAt(ctx context.Context, op string, index int) (model.Entry, error) {
	snapshot, err := a.svc.ListEntries(ctx)
	if err != nil {
		return model.Entry{}, err
	}
	if !snapshot.Entries.InRange(index) {
		return model.Entry{}, &crontab.Error{
			Kind: crontab.KindIndex,
			Op:   op,
			Msg:  fmt.Sprintf("entry %d does not exist (table has %d entries)", index, snapshot.Len()),
		}
	}
	return snapshot.Entries[index], nil
}

func (a *app) printEntry(index int, entry model.Entry) {
	next := "-"
	if t, ok := entry.NextRun(a.now()); ok {
		next = t.Format(nextRunFormat)
	}
	fmt.Fprintf(a.stdout, "%d\t%s\t%s\n", index, entry.Line(), next)
}

// entryFlags are the schedule and script flags shared by add and edit
type entryFlags struct {
	fields     [model.FieldCount]*string
	schedule5  *string
	scriptType *string
}

var fieldFlagNames = [model.FieldCount]string{"minute", "hour", "day", "month", "weekday"}

func newEntryFlags(name string) (*pflag.FlagSet, *entryFlags) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &entryFlags{}
	for i, flagName := range fieldFlagNames {
		f.fields[i] = fs.String(flagName, model.AnyValue, flagName+" field")
	}
	f.schedule5 = fs.StringP("schedule", "s", "", `all five fields, e.g. "*/5 * * * *"`)
	f.scriptType = fs.StringP("type", "t", string(model.ScriptAuto), "script type: auto, bash or python")
	return fs, f
}

// schedule applies the given flags over base
func (f *entryFlags) schedule(fs *pflag.FlagSet, base model.Schedule) (model.Schedule, error) {
	if fs.Changed("schedule") {
		for _, name := range fieldFlagNames {
			if fs.Changed(name) {
				return model.Schedule{}, fmt.Errorf("%w: --schedule cannot be combined with --%s", errUsage, name)
			}
		}
		schedule, ok := model.ScheduleFromFields(strings.Fields(*f.schedule5))
		if !ok {
			return model.Schedule{}, fmt.Errorf("%w: --schedule needs %d fields", errUsage, model.FieldCount)
		}
		return schedule, nil
	}

	fields := base.Fields()
	for i, name := range fieldFlagNames {
		if fs.Changed(name) {
			fields[i] = *f.fields[i]
		}
	}
	schedule, _ := model.ScheduleFromFields(fields)
	return schedule, nil
}

func (f *entryFlags) input(command []string) (model.CommandInput, error) {
	st, ok := model.ParseScriptType(*f.scriptType)
	if !ok {
		return model.CommandInput{}, fmt.Errorf("%w: unknown script type %q", errUsage, *f.scriptType)
	}
	return model.CommandInput{Raw: strings.Join(command, " "), Type: st}, nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: index must be a non-negative number, got %q", errUsage, s)
	}
	return index, nil
}

func flagError(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}
