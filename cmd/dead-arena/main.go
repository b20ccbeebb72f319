package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/lixenwraith/dead-arena/asset"
	"github.com/lixenwraith/dead-arena/audio"
	"github.com/lixenwraith/dead-arena/config"
	"github.com/lixenwraith/dead-arena/core"
	"github.com/lixenwraith/dead-arena/director"
	"github.com/lixenwraith/dead-arena/engine"
	"github.com/lixenwraith/dead-arena/input"
	"github.com/lixenwraith/dead-arena/render"
	"github.com/lixenwraith/dead-arena/status"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	envFlag    = flag.String("env", "", "Path to .env file (default .env)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the log directory")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dead-arena: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug.Log = true
	}

	if logFile := setupLogging(cfg.Debug.Log, cfg.Debug.LogDir); logFile != nil {
		defer logFile.Close()
	}

	// No render target without a tty
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dead-arena: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("fatal")
		fmt.Fprintf(os.Stderr, "dead-arena: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashRestore(screen.Fini)

	surface, err := render.NewTerminalSurface(screen, cfg.Arena.Width, cfg.Arena.Height)
	if err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Input.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	src := input.NewTerminalSource(keys, surface, cfg.Input.HoldWindow)

	// Audio failure is not fatal, the game runs silent
	var sounds *audio.SoundManager
	if cfg.Audio.Enabled {
		sounds = audio.NewSoundManager(cfg.Audio.MasterVolume)
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	loader := asset.NewLoader(cfg.Assets.Dir, sounds)
	loader.LoadAll(asset.DefaultManifest())

	reg := status.NewRegistry()
	eng := engine.New(surface, cfg.FrameInterval(), engine.MonotonicTimeProvider{}, reg)
	eng.SetImages(loader)

	dir, err := director.New(eng, surface, src, loader, reg, director.Options{
		Seed:         cfg.Seed,
		EffectVolume: cfg.Audio.EffectVolume,
		MusicVolume:  cfg.Audio.MusicVolume,
		DebugOverlay: cfg.Debug.Overlay,
	})
	if err != nil {
		return err
	}

	pres := &presenter{screen: screen, surface: surface, engine: eng}
	eng.AddHook(pres)

	log.Info().
		Float64("width", cfg.Arena.Width).
		Float64("height", cfg.Arena.Height).
		Int("fps", cfg.FPS).
		Bool("audio", sounds != nil).
		Msg("starting")

	eng.Start()
	defer eng.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Screen finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			pres.resized.Store(true)
			continue
		}
		if !src.HandleEvent(ev) {
			break
		}
	}

	log.Info().
		Str("state", dir.State().String()).
		Int("high_score", dir.HighScore()).
		Msg("quit")
	return nil
}

// presenter flushes each frame to the terminal
// Resizes are applied on the frame goroutine so drawing never sees a half-updated mapping
type presenter struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	engine  *engine.Engine
	resized atomic.Bool
}

func (p *presenter) BeginFrame(dt float64) {
	if p.resized.CompareAndSwap(true, false) {
		p.surface.Resize()
		p.screen.Sync()
		// A paused engine skips its frame, so rebuild the frozen scene at the new size
		if p.engine.IsPaused() {
			p.engine.Render()
		}
	}
}

func (p *presenter) EndFrame(dt float64) {
	p.surface.Show()
}
