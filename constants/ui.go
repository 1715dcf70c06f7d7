package constants

// UI Layout Constants
const (
	// StatusBarHeight is the number of rows reserved below the playfield
	StatusBarHeight = 1
)

// Status bar text
const (
	SoundOnText  = "SND ON"
	SoundOffText = "SND OFF"
)
