package platform

// Package platform contains OS/platform integration: filesystem helpers,
// executable checks, atomic file writes, and opening the system file manager.
