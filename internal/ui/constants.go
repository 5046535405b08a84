package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "➕"
	IconEdit     = "✏️"
	IconDelete   = "❌"
	IconExport   = "📤"
	IconImport   = "📥"
	IconRefresh  = "🔄"
	IconList     = "📋"
	IconTool     = "🛠️"
	IconFolder   = "📂"
	IconAccept   = "✅"
	IconWarning  = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	NextRunTimeFormat  = "Mon 02 Jan 15:04"
)

// Window sizing
const (
	WindowWidth  float32 = 760
	WindowHeight float32 = 520

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Files
const (
	DefaultExportFileName = "crontab_backup.txt"
)

// NoSelection marks that no list row is selected or being edited
const NoSelection = -1
