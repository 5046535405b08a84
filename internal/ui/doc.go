package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the crontab manager and renders the installed
// entries, the add/edit form, notifications and settings. All UI strings are
// localized via Localization.
