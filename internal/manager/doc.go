package manager

// Package manager implements the crontab synchronization procedure used by
// the desktop UI and the CLI. Every action runs read, mutate in memory,
// write, reload. Entries are addressed by their position in the last read;
// concurrent external edits are not detected and the last writer wins.
