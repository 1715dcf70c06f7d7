package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/audio"
	"github.com/lixenwraith/vi-factory/config"
	"github.com/lixenwraith/vi-factory/core"
	"github.com/lixenwraith/vi-factory/engine"
	"github.com/lixenwraith/vi-factory/input"
	"github.com/lixenwraith/vi-factory/render"
	"golang.org/x/term"
)

var (
	configFlag = flag.String("config", "vi-factory.toml", "Path to the TOML config file")
	widthFlag  = flag.Int("width", 0, "World width, overrides config")
	heightFlag = flag.Int("height", 0, "World height, overrides config")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/ and check world invariants every turn (same as [debug] log and check_invariants)")
	muteFlag   = flag.Bool("mute", false, "Start with sound disabled")
	keymapFlag = flag.String("keymap", "", "Path to a TOML key map, overrides config")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-factory: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("[main] fatal: %v", err)
		fmt.Fprintf(os.Stderr, "vi-factory: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log.Printf("[main] world %dx%d, start (%d,%d), step %v",
		cfg.World.Width, cfg.World.Height, cfg.World.StartX, cfg.World.StartY, cfg.Loop.StepInterval)

	machine := input.NewMachine()
	if cfg.Keymap != "" {
		kt, err := loadKeymap(cfg.Keymap)
		if err != nil {
			return err
		}
		machine.SetKeyTable(kt)
	}

	game, err := engine.NewGame(engine.GameConfig{
		Width:           cfg.World.Width,
		Height:          cfg.World.Height,
		StartX:          cfg.World.StartX,
		StartY:          cfg.World.StartY,
		CheckInvariants: cfg.Debug.CheckInvariants,
	})
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetEnabled(cfg.Audio.Enabled)
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] speaker unavailable, continuing without sound: %v", err)
	} else {
		defer sound.Cleanup()
		game.AddListener(sound.Listener())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	events := make(chan tcell.Event, 16)
	core.Go(func() { pollEvents(screen, events) })

	s := &session{
		game:     game,
		machine:  machine,
		renderer: render.NewRenderer(screen),
		screen:   screen,
		sound:    sound,
		events:   events,
		interval: cfg.Loop.StepInterval,
	}
	return s.run()
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *widthFlag > 0 {
		cfg.World.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.World.Height = *heightFlag
	}
	// Keep the player inside a world shrunk from the command line
	cfg.World.StartX = min(cfg.World.StartX, cfg.World.Width-1)
	cfg.World.StartY = min(cfg.World.StartY, cfg.World.Height-1)

	if *debugFlag {
		cfg.Debug.Log = true
		cfg.Debug.CheckInvariants = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *keymapFlag != "" {
		cfg.Keymap = *keymapFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadKeymap merges a key map file over the default bindings
func loadKeymap(path string) (*input.KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
