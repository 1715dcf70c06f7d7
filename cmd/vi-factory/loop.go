package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/audio"
	"github.com/lixenwraith/vi-factory/engine"
	"github.com/lixenwraith/vi-factory/input"
	"github.com/lixenwraith/vi-factory/render"
)

// session wires the game to the terminal for one run
type session struct {
	game     *engine.Game
	machine  *input.Machine
	renderer *render.Renderer
	screen   tcell.Screen
	sound    *audio.SoundManager
	events   <-chan tcell.Event
	interval time.Duration
}

// run drives turns until quit or the event source closes.
// Each turn: step the world, draw it, then apply at most one command.
func (s *session) run() error {
	for {
		// Step before drawing so the frame shows the state the command acts on
		if err := s.game.Step(); err != nil {
			return err
		}
		s.draw()

		intent, ok := s.waitIntent()
		if !ok {
			return nil
		}
		quit, err := s.game.Apply(intent)
		if err != nil {
			return err
		}
		if quit {
			log.Printf("[main] quit after %d turns", s.game.World.Turns())
			return nil
		}
	}
}

// waitIntent blocks until a world command arrives or the turn interval ends.
// Interface commands (resize, sound) are handled here and do not end the turn.
// ok is false once the event source is closed.
func (s *session) waitIntent() (intent *input.Intent, ok bool) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return nil, false
			}
			intent := s.machine.Process(ev)
			if intent == nil {
				// Show or clear the pending prefix
				s.draw()
				continue
			}

			switch intent.Type {
			case input.IntentResize:
				s.screen.Sync()
				s.draw()
				continue
			case input.IntentToggleSound:
				on := s.sound.Toggle()
				log.Printf("[audio] sound enabled: %v", on)
				s.draw()
				continue
			}
			return intent, true

		case <-timer.C:
			return nil, true
		}
	}
}

func (s *session) draw() {
	x, y, _ := s.game.Player.Position()
	s.renderer.Draw(s.game.World, render.Status{
		PlayerX: x,
		PlayerY: y,
		Pending: s.machine.Pending(),
		SoundOn: s.sound.Enabled(),
		Picked:  s.game.Stats().Picked,
	})
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}
