package manager

import (
	"context"

	"github.com/ytget/cron-manager/internal/model"
)

// Manager defines the interface the UI layers call.
type Manager interface {
	ListEntries(ctx context.Context) (model.Snapshot, error)
	AddEntry(ctx context.Context, schedule model.Schedule, input model.CommandInput) (model.Snapshot, error)
	EditEntry(ctx context.Context, index int, schedule model.Schedule, input model.CommandInput) (model.Snapshot, error)
	DeleteEntry(ctx context.Context, index int) (model.Snapshot, error)
	ExportTo(ctx context.Context, path string) (int, error)
	ImportFrom(ctx context.Context, path string) (ImportResult, error)
}

// ImportResult reports how many imported entries were merged
type ImportResult struct {
	Added    int
	Skipped  int
	Snapshot model.Snapshot
}

// TableReader lists the installed table
type TableReader interface {
	Read(ctx context.Context) (model.Snapshot, error)
}

// TableWriter replaces the installed table
type TableWriter interface {
	Write(ctx context.Context, table model.Table) error
}

// CommandResolver turns user input into the stored command
type CommandResolver interface {
	Resolve(input model.CommandInput) (string, error)
}
