package crontab

// Package crontab contains the synchronization primitives around the system
// crontab command: the injected command runner, the line codec, the table
// reader and writer, and the resolver that turns user input into the command
// stored in an entry. Every external invocation has its output drained and
// its exit status checked.
