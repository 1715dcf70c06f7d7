package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-factory/input"
	"github.com/lixenwraith/vi-factory/world"
)

// GameConfig sizes a new session
type GameConfig struct {
	Width, Height  int
	StartX, StartY int

	// CheckInvariants verifies the world after every turn (debug)
	CheckInvariants bool
}

// Stats is a snapshot of session counters
type Stats struct {
	Turns    int
	Entities int
	Picked   int
	Placed   int
}

// Game is one play session: the world, the player, and the listeners
// observing world events
type Game struct {
	World  *world.World
	Player *world.Player

	checkInvariants bool
	listeners       []world.Listener
	picked          int
	placed          int
}

// NewGame creates the world and places the player
func NewGame(cfg GameConfig) (*Game, error) {
	w, err := world.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		World:           w,
		Player:          world.NewPlayer(),
		checkInvariants: cfg.CheckInvariants,
	}
	w.SetListener(world.ListenerFunc(g.dispatch))

	if err := w.AddEntity(g.Player, cfg.StartX, cfg.StartY); err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	return g, nil
}

// AddListener registers an observer for world events
func (g *Game) AddListener(l world.Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) dispatch(ev world.Event) {
	for _, l := range g.listeners {
		l.OnWorldEvent(ev)
	}
}

// Stats returns the current counters
func (g *Game) Stats() Stats {
	return Stats{
		Turns:    g.World.Turns(),
		Entities: g.World.Len(),
		Picked:   g.picked,
		Placed:   g.placed,
	}
}

// Step advances the world one turn
func (g *Game) Step() error {
	if err := g.World.Step(); err != nil {
		return err
	}
	if g.checkInvariants {
		if err := g.World.CheckInvariants(); err != nil {
			return fmt.Errorf("turn %d: %w", g.World.Turns(), err)
		}
	}
	return nil
}

// Apply performs one player command against the world.
// Rejected gameplay actions are silent; only contract violations return errors.
func (g *Game) Apply(intent *input.Intent) (quit bool, err error) {
	if intent == nil {
		return false, nil
	}

	switch intent.Type {
	case input.IntentQuit:
		return true, nil

	case input.IntentMove:
		_, err = g.World.MovePlayer(g.Player, intent.Dir)

	case input.IntentSpawnItem:
		err = g.World.AddEntityUnder(world.NewTestItem(), g.Player)

	case input.IntentPickup:
		var got world.Entity
		got, err = g.World.Pickup(g.Player)
		if got != nil {
			g.picked++
			log.Printf("[engine] picked %s %d", got.Kind(), got.ID())
		}

	case input.IntentRotate:
		err = g.rotateUnderPlayer()

	case input.IntentPlaceDevice:
		err = g.placeDevice(intent.Device, intent.Dir)
	}
	return false, err
}

// placeDevice builds the device under the player, then steps the player off
// it in the same direction
func (g *Game) placeDevice(d input.Device, dir world.Facing) error {
	var dev world.Entity
	switch d {
	case input.DeviceTransport:
		dev = world.NewTransport(dir)
	case input.DevicePiston:
		dev = world.NewPiston(dir)
	case input.DeviceRobohand:
		dev = world.NewRobohand(dir)
	default:
		return nil
	}

	if err := g.World.AddEntityUnder(dev, g.Player); err != nil {
		return err
	}
	g.placed++
	log.Printf("[engine] placed %s facing %s", dev.Kind(), dir)

	_, err := g.World.MovePlayer(g.Player, dir)
	return err
}

// rotateUnderPlayer turns the topmost conveyor below the player
func (g *Game) rotateUnderPlayer() error {
	below, err := g.World.Below(g.Player)
	if err != nil {
		return err
	}
	for i := len(below) - 1; i >= 0; i-- {
		if tr, ok := below[i].(*world.Transport); ok {
			tr.Rotate()
			return nil
		}
	}
	return nil
}
