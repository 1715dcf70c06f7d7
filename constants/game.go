package constants

import "time"

// World Dimensions
const (
	// DefaultWorldWidth is the number of columns in the playfield
	DefaultWorldWidth = 15

	// DefaultWorldHeight is the number of rows in the playfield
	DefaultWorldHeight = 10

	// DefaultStartX is the player's starting column
	DefaultStartX = 5

	// DefaultStartY is the player's starting row
	DefaultStartY = 5
)

// Turn Loop Timing Constants
const (
	// StepInterval is how long the loop waits for a key before running an empty turn
	StepInterval = 500 * time.Millisecond

	// MinStepInterval bounds configured intervals from below
	MinStepInterval = 20 * time.Millisecond
)

// Device Constants
const (
	// RobohandReach is the distance in cells between a robotic arm and its hand
	RobohandReach = 2

	// PistonReach is the distance at which a piston places its moving part
	PistonReach = 1
)

// Logging Constants
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the debug log file name
	LogFileName = "vi-factory.log"

	// MaxLogSize is the size at which the debug log is rotated
	MaxLogSize = 10 * 1024 * 1024
)
