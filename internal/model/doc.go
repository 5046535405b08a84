package model

// Package model defines domain data structures used across the app: crontab
// entries, their schedule fields, whole-table snapshots and status enums.
// Structures are plain values so the UI can bind and compare them directly.
