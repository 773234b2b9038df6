package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/vi-radar/audio"
	"github.com/lixenwraith/vi-radar/config"
	"github.com/lixenwraith/vi-radar/core"
	"github.com/lixenwraith/vi-radar/engine"
	"github.com/lixenwraith/vi-radar/feed"
	"github.com/lixenwraith/vi-radar/gui"
	"github.com/lixenwraith/vi-radar/sweep"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
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
		log.Fatal(err)
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
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()
	radar.OnIlluminate(func(p sweep.Point) {
		sounds.PlayPing(p.Bearing)
	})

	task := radar.Start(ctx)
	defer task.Stop()
	if sim != nil {
		sim.Start(ctx)
	}

	return gui.NewGame(radar, clock, sim, cfg.Display.Labels).Run("vi-radar")
}
