package ui

// Message icons
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "•"
	IconHint    = "→"
)

// Picker icons
const (
	IconCursor   = "›"
	IconBuiltIn  = "◆"
	IconUserMade = "◇"
)
