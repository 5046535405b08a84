package crontab

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/model"
)

// Writer replaces the installed table wholesale
type Writer struct {
	runner  Runner
	command string
	timeout time.Duration
	log     zerolog.Logger
}

// NewWriter creates a writer that invokes command (DefaultCommand if empty)
func NewWriter(runner Runner, command string, log zerolog.Logger) *Writer {
	if command == "" {
		command = DefaultCommand
	}
	return &Writer{
		runner:  runner,
		command: command,
		timeout: DefaultTimeout,
		log:     log,
	}
}

// SetTimeout bounds each install invocation; zero disables the bound
func (w *Writer) SetTimeout(timeout time.Duration) {
	w.timeout = timeout
}

// Write installs table as the complete new crontab. Entries missing from
// table are gone afterwards.
func (w *Writer) Write(ctx context.Context, table model.Table) error {
	ctx, cancel := withTimeout(ctx, w.timeout)
	defer cancel()

	content := Format(table)
	res, err := w.runner.Run(ctx, []string{w.command, InstallStdin}, []byte(content))
	if err != nil {
		w.log.Error().Err(err).Str("command", w.command).Msg("crontab install could not run")
		return &Error{Kind: KindWrite, Op: "install", Msg: "failed to update crontab", Err: err}
	}
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(string(res.Stderr))
		w.log.Error().Int("exit_code", res.ExitCode).Str("stderr", stderr).Msg("crontab install failed")
		return &Error{
			Kind:     KindWrite,
			Op:       "install",
			Msg:      "failed to update crontab",
			ExitCode: res.ExitCode,
			Stderr:   stderr,
		}
	}

	w.log.Debug().Int("entries", len(table)).Msg("crontab installed")
	return nil
}
