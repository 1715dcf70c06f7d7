package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/audio"
	"github.com/lixenwraith/vi-factory/engine"
	"github.com/lixenwraith/vi-factory/input"
	"github.com/lixenwraith/vi-factory/render"
	"github.com/lixenwraith/vi-factory/world"
)

func newTestSession(t *testing.T, interval time.Duration, events ...tcell.Event) *session {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	game, err := engine.NewGame(engine.GameConfig{Width: 8, Height: 6, StartX: 2, StartY: 2, CheckInvariants: true})
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan tcell.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}

	return &session{
		game:     game,
		machine:  input.NewMachine(),
		renderer: render.NewRenderer(screen),
		screen:   screen,
		sound:    audio.NewSoundManager(0),
		events:   ch,
		interval: interval,
	}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestRunAppliesCommandsUntilQuit(t *testing.T) {
	quit := tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s := newTestSession(t, time.Hour, key('l'), key('j'), quit)

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	x, y, _ := s.game.Player.Position()
	if x != 3 || y != 3 {
		t.Errorf("player at (%d,%d), want (3,3)", x, y)
	}
	// One step per command, quit included
	if got := s.game.World.Turns(); got != 3 {
		t.Errorf("turns = %d, want 3", got)
	}
}

func TestRunPlacesDeviceWithTwoKeys(t *testing.T) {
	quit := tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s := newTestSession(t, time.Hour, key('w'), key('l'), quit)

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, ok := s.game.World.TopAt(2, 2).(*world.Transport); !ok {
		t.Errorf("expected conveyor at (2,2), got %v", s.game.World.TopAt(2, 2))
	}
	if x, _, _ := s.game.Player.Position(); x != 3 {
		t.Errorf("player x = %d, want 3", x)
	}
}

func TestSoundToggleDoesNotEndTurn(t *testing.T) {
	toggle := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	quit := tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s := newTestSession(t, time.Hour, toggle, quit)

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.sound.Enabled() {
		t.Error("sound should be toggled off")
	}
	if got := s.game.World.Turns(); got != 1 {
		t.Errorf("turns = %d, want 1", got)
	}
}

func TestWaitIntentTimesOut(t *testing.T) {
	s := newTestSession(t, 10*time.Millisecond)

	intent, ok := s.waitIntent()
	if !ok || intent != nil {
		t.Errorf("waitIntent = %v, %v; want empty turn", intent, ok)
	}
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	s := newTestSession(t, time.Hour)
	ch := make(chan tcell.Event)
	close(ch)
	s.events = ch

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := s.game.World.Turns(); got != 1 {
		t.Errorf("turns = %d, want 1", got)
	}
}
