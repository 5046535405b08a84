package model

// TableStatus describes how the installed crontab looked at the last read
type TableStatus string

const (
	// TableStatusInstalled means the listing command returned a table
	TableStatusInstalled TableStatus = "Installed"

	// TableStatusEmpty means no crontab exists for the invoking user
	TableStatusEmpty TableStatus = "Empty"

	// TableStatusUnavailable means the listing command failed; the entries are unknown
	TableStatusUnavailable TableStatus = "Unavailable"
)

// String returns the string representation of TableStatus
func (ts TableStatus) String() string {
	return string(ts)
}

// IsKnown returns true if the entries of the snapshot reflect the installed table
func (ts TableStatus) IsKnown() bool {
	return ts == TableStatusInstalled || ts == TableStatusEmpty
}

// IsDegraded returns true if the read failed and the snapshot is a placeholder
func (ts TableStatus) IsDegraded() bool {
	return ts == TableStatusUnavailable
}

// ScriptType is the interpreter the user declared for a script path
type ScriptType string

const (
	// ScriptAuto picks the interpreter from the file extension
	ScriptAuto ScriptType = "auto"

	// ScriptBash runs the file with the shell interpreter
	ScriptBash ScriptType = "bash"

	// ScriptPython runs the file with the python interpreter
	ScriptPython ScriptType = "python"
)

// String returns the string representation of ScriptType
func (st ScriptType) String() string {
	return string(st)
}

// ParseScriptType maps user input to a ScriptType, falling back to ScriptAuto
func ParseScriptType(s string) (ScriptType, bool) {
	switch ScriptType(s) {
	case ScriptAuto, "":
		return ScriptAuto, true
	case ScriptBash, "sh", "shell":
		return ScriptBash, true
	case ScriptPython, "py":
		return ScriptPython, true
	default:
		return ScriptAuto, false
	}
}

// ScriptTypes returns the selectable script types in display order
func ScriptTypes() []ScriptType {
	return []ScriptType{ScriptAuto, ScriptBash, ScriptPython}
}
