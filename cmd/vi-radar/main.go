package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-radar/audio"
	"github.com/lixenwraith/vi-radar/config"
	"github.com/lixenwraith/vi-radar/core"
	"github.com/lixenwraith/vi-radar/engine"
	"github.com/lixenwraith/vi-radar/feed"
	"github.com/lixenwraith/vi-radar/render"
	"github.com/lixenwraith/vi-radar/sweep"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vi-radar.log")
	muteFlag   = flag.Bool("mute", false, "Disable sonar pings")
	pointsFlag = flag.String("points", "", "Load a fixed point set instead of the simulator")
	wrapFlag   = flag.Bool("wrap", false, "Match sweep windows that cross north")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *pointsFlag != "" {
		cfg.Feed.PointsFile = *pointsFlag
		cfg.Feed.Simulate = false
	}
	if *wrapFlag {
		cfg.Radar.WrapAware = true
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := engine.NewPausableClock(nil)
	radar := sweep.New(cfg.Radar.Width, cfg.Radar.Height, cfg.Sweep(), clock)

	var sim *feed.Simulator
	switch {
	case cfg.Feed.PointsFile != "":
		coords, err := feed.LoadPoints(cfg.Feed.PointsFile)
		if err != nil {
			return err
		}
		radar.UpdatePoints(coords)
		log.Printf("loaded %d points from %s", len(coords), cfg.Feed.PointsFile)
	case cfg.Feed.Simulate:
		sim = feed.NewSimulator(radar.Radius(), feed.SimConfig{
			Targets:  cfg.Feed.Targets,
			Interval: cfg.Feed.Interval,
			Drift:    cfg.Feed.Drift,
			Seed:     cfg.Feed.Seed,
		}, radar)
		sim.Emit()
	}

	sounds := audio.NewSoundManager(cfg.AudioSettings(), clock)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the scope runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	// Read from the tick goroutine, toggled from the event loop
	var muted atomic.Bool
	muted.Store(!cfg.Audio.Enabled)
	radar.OnIlluminate(func(p sweep.Point) {
		if !muted.Load() {
			sounds.PlayPing(p.Bearing)
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.OnCrash(screen.Fini)

	renderer := render.NewRadarRenderer(screen)

	task := radar.Start(ctx)
	defer task.Stop()
	if sim != nil {
		sim.Start(ctx)
	}

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	status := func() render.Status {
		return render.Status{
			Paused:     clock.IsPaused(),
			FeedPaused: sim != nil && sim.Paused(),
			Muted:      muted.Load(),
			Labels:     cfg.Display.Labels,
		}
	}

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				renderer.Resize()
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(ev, clock, sim, &muted, &cfg.Display.Labels) {
					log.Printf("quit after %d ticks", task.Ticks())
					return nil
				}
			}
			renderer.RenderFrame(radar.Snapshot(clock.Now()), status())

		case <-task.Done():
			return nil

		case <-frameTicker.C:
			renderer.RenderFrame(radar.Snapshot(clock.Now()), status())
		}
	}
}

// handleKey applies a key press and reports whether the loop should continue
func handleKey(ev *tcell.EventKey, clock *engine.PausableClock, sim *feed.Simulator, muted *atomic.Bool, labels *bool) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'p':
		paused := clock.Toggle()
		log.Printf("sweep paused=%v", paused)
	case ' ':
		if sim != nil {
			sim.Toggle()
		}
	case 'r':
		if sim != nil {
			sim.Reseed()
			sim.Emit()
		}
	case 'm':
		muted.Store(!muted.Load())
	case 'l':
		*labels = !*labels
	}
	return true
}
