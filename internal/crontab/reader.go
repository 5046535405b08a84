package crontab

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/model"
)

// Command constants
const (
	DefaultCommand = "crontab"
	ListFlag       = "-l"
	InstallStdin   = "-"

	// NoTableMarker is printed on stderr by crontab -l when the user has no table
	NoTableMarker = "no crontab for"

	DefaultTimeout = 30 * time.Second
)

// Reader lists the installed table
type Reader struct {
	runner  Runner
	command string
	timeout time.Duration
	log     zerolog.Logger
}

// NewReader creates a reader that invokes command (DefaultCommand if empty)
func NewReader(runner Runner, command string, log zerolog.Logger) *Reader {
	if command == "" {
		command = DefaultCommand
	}
	return &Reader{
		runner:  runner,
		command: command,
		timeout: DefaultTimeout,
		log:     log,
	}
}

// SetTimeout bounds each listing invocation; zero disables the bound
func (r *Reader) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Read returns the current table. A missing table is an empty snapshot with
// no error. Any other failure returns an Unavailable snapshot together with
// a KindRead error so callers can show it yet refuse to write over it.
func (r *Reader) Read(ctx context.Context) (model.Snapshot, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	argv := []string{r.command, ListFlag}
	res, err := r.runner.Run(ctx, argv, nil)
	if err != nil {
		r.log.Warn().Err(err).Str("command", r.command).Msg("crontab listing could not run")
		return unavailable(), &Error{Kind: KindRead, Op: "list", Msg: "cannot list crontab", Err: err}
	}

	stderr := strings.TrimSpace(string(res.Stderr))
	if res.ExitCode != 0 {
		if strings.Contains(stderr, NoTableMarker) {
			r.log.Debug().Msg("no crontab installed for user")
			return model.Snapshot{Entries: model.Table{}, Status: model.TableStatusEmpty}, nil
		}
		r.log.Warn().Int("exit_code", res.ExitCode).Str("stderr", stderr).Msg("crontab listing failed")
		return unavailable(), &Error{
			Kind:     KindRead,
			Op:       "list",
			Msg:      "cannot list crontab",
			ExitCode: res.ExitCode,
			Stderr:   stderr,
		}
	}

	table := ParseTable(string(res.Stdout))
	r.log.Debug().Int("entries", len(table)).Msg("crontab listed")
	return model.Snapshot{Entries: table, Status: model.TableStatusInstalled}, nil
}

func unavailable() model.Snapshot {
	return model.Snapshot{Entries: model.Table{}, Status: model.TableStatusUnavailable}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
