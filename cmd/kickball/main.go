package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kickball/audio"
	"github.com/lixenwraith/kickball/config"
	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/event"
	"github.com/lixenwraith/kickball/network"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/render"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/tilt"
	"github.com/lixenwraith/kickball/tracking"
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts.apply(cfg)

	if opts.initConfig {
		if err := config.Save(opts.configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", opts.configPath)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	palette, err := render.PaletteFor(cfg.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	joint, _ := cfg.JointType()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := status.NewRegistry()
	router := event.NewRouter()

	// The bridge elevator needs the server, which needs the loop, which owns the game
	var elevator *network.BridgeElevator
	game := engine.NewGame(engine.GameConfig{
		Tuning: cfg.Physics,
		Mapper: tracking.NewColorMapper(),
		Elevator: engine.ElevatorFunc(func(angle int) error {
			return elevator.SetElevation(angle)
		}),
		Router: router,
		Status: reg,
	})
	loop := engine.NewLoop(game)

	netCfg := network.DefaultConfig()
	netCfg.Address = cfg.Listen
	source := tracking.NewSource(joint, loop, reg)
	server := network.NewServer(netCfg, loop, source, reg)
	elevator = network.NewBridgeElevator(server)

	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[main] audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}
	soundObserver := audio.NewObserver(sounds)
	router.Subscribe(soundObserver, soundObserver.Events()...)
	router.Subscribe(event.ObserverFunc(func(ev event.GameEvent) {
		log.Printf("[game] frame %d: %s", ev.Frame, ev.Type)
	}), event.EventGameOver, event.EventGameReset, event.EventTiltChanged)

	core.Go(func() {
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("[main] loop stopped: %v", err)
		}
	})
	core.Go(func() {
		if err := server.ListenAndServe(ctx); err != nil {
			log.Printf("[main] bridge server: %v", err)
			loop.SubmitDeviceStatus(false, "tracker bridge unavailable")
		}
	})

	if cfg.Serial.Port != "" {
		startTilt(ctx, cfg.Serial, loop)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	renderer := render.NewRenderer(screen, palette, reg, cfg.Physics)
	run(ctx, screen, renderer, loop)
}

// startTilt opens the knob's serial port and feeds it to the loop
// A missing port is logged and the game continues with keyboard tilt only
func startTilt(ctx context.Context, sc config.SerialConfig, loop *engine.Loop) {
	name := sc.Port
	if name == "auto" {
		name = ""
	}
	port, err := tilt.Open(name, sc.Baud)
	if err != nil {
		log.Printf("[main] tilt knob unavailable: %v", err)
		return
	}

	ctl := tilt.NewController(port, loop)
	core.Go(func() {
		defer port.Close()
		if err := ctl.Run(ctx); err != nil {
			log.Printf("[main] tilt knob: %v", err)
		}
		accepted, discarded := ctl.Stats()
		log.Printf("[main] tilt knob closed, %d lines accepted, %d discarded", accepted, discarded)
	})
}

// run is the display loop: keyboard input and a fixed-rate redraw from snapshots
func run(ctx context.Context, screen tcell.Screen, renderer *render.Renderer, loop *engine.Loop) {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			switch render.ActionFor(ev) {
			case render.ActionQuit:
				return
			case render.ActionReset:
				loop.SubmitReset()
			case render.ActionTiltUp:
				loop.SubmitTilt(loop.Snapshot().Tilt + parameter.TiltKeyStep)
			case render.ActionTiltDown:
				loop.SubmitTilt(loop.Snapshot().Tilt - parameter.TiltKeyStep)
			case render.ActionRedraw:
				screen.Sync()
			}

		case <-frameTicker.C:
			renderer.Draw(loop.Snapshot())
		}
	}
}
