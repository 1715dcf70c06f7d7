package input

import "github.com/lixenwraith/vi-factory/world"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the key map loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":         {Behavior: BehaviorSystem, IntentType: IntentQuit},
	"toggle_sound": {Behavior: BehaviorSystem, IntentType: IntentToggleSound},
	"cancel":       {Behavior: BehaviorCancel},

	// Movement
	"move_left":  {Behavior: BehaviorMotion, IntentType: IntentMove, Dir: world.Left},
	"move_down":  {Behavior: BehaviorMotion, IntentType: IntentMove, Dir: world.Down},
	"move_up":    {Behavior: BehaviorMotion, IntentType: IntentMove, Dir: world.Up},
	"move_right": {Behavior: BehaviorMotion, IntentType: IntentMove, Dir: world.Right},

	// Actions
	"wait":       {Behavior: BehaviorAction, IntentType: IntentWait},
	"spawn_item": {Behavior: BehaviorAction, IntentType: IntentSpawnItem},
	"pickup":     {Behavior: BehaviorAction, IntentType: IntentPickup},
	"rotate":     {Behavior: BehaviorAction, IntentType: IntentRotate},

	// Two-key device placement
	"place_transport": {Behavior: BehaviorPrefix, IntentType: IntentPlaceDevice, Device: DeviceTransport},
	"place_piston":    {Behavior: BehaviorPrefix, IntentType: IntentPlaceDevice, Device: DevicePiston},
	"place_robohand":  {Behavior: BehaviorPrefix, IntentType: IntentPlaceDevice, Device: DeviceRobohand},
}

// ActionEntry resolves an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
