package input

import "github.com/lixenwraith/vi-factory/world"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+Q, Ctrl+C
	IntentToggleSound // Ctrl+S
	IntentResize      // Terminal resize event

	// Turn intents
	IntentWait        // ., space
	IntentMove        // h,j,k,l, arrows
	IntentSpawnItem   // q
	IntentPickup      // d
	IntentRotate      // t
	IntentPlaceDevice // w/p/r + direction
)

// Device selects what a placement intent builds
type Device uint8

const (
	DeviceNone Device = iota
	DeviceTransport
	DevicePiston
	DeviceRobohand
)

func (d Device) String() string {
	switch d {
	case DeviceTransport:
		return "transport"
	case DevicePiston:
		return "piston"
	case DeviceRobohand:
		return "robohand"
	}
	return "none"
}

// Intent is one parsed user command
type Intent struct {
	Type   IntentType
	Dir    world.Facing
	Device Device
}
