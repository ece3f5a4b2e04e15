package ui

// History limits.
const (
	// HistoryLimit is the maximum number of events kept for the backdrop.
	HistoryLimit = 200
)

// Action labels registered on the demo sheet.
const (
	labelCycleTheme = "Cycle theme"
	labelTimestamp  = "Add timestamp"
	labelCloseOnTap = "Toggle close on tap"
	labelQuit       = "Quit"
)

// helpWidth is the width of the help modal.
const helpWidth = 44
