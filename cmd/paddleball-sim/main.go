// Command paddleball-sim runs paddleball headless with both paddles on
// autopilot and prints a report of what happened.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/game"
	"github.com/plus3/paddleball/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	duration := flag.Duration("duration", 0, "simulated time to run for; overrides the config")
	realtime := flag.Bool("realtime", false, "tick on the wall clock instead of stepping as fast as possible")
	format := flag.String("format", "markdown", "report format: markdown or yaml")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "paddleball-sim: unknown profile mode %q\n", *profileMode)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *duration, *realtime, *format); err != nil {
		fmt.Fprintln(os.Stderr, "paddleball-sim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, duration time.Duration, realtime bool, format string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if duration > 0 {
		cfg.Simulation.Duration = duration
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	runId := uuid.NewString()
	log = log.With(zap.String("run", runId))

	pilot := &Autopilot{}
	g, err := game.New(cfg, game.Options{Input: pilot, Logger: log})
	if err != nil {
		return err
	}
	scene := g.Scene()
	pilot.Bind(g.Entities(), scene.Paddles, scene.Ball)

	report := &Report{
		RunId:     runId,
		Mode:      "stepped",
		TickRate:  cfg.Simulation.TickRate,
		Simulated: cfg.Simulation.Duration,
	}
	if realtime {
		report.Mode = "realtime"
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	log.Info("simulation starting",
		zap.String("mode", report.Mode),
		zap.Duration("duration", cfg.Simulation.Duration),
		zap.Duration("tick", cfg.Simulation.TickRate))

	start := time.Now()
	if realtime {
		err = runRealtime(ctx, g, cfg.Simulation)
	} else {
		err = runStepped(ctx, g, cfg.Simulation, &report.UpdateTime)
	}
	report.WallTime = time.Since(start)
	if err != nil {
		return err
	}

	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Collect(g.Systems().Stats(), g.Entities().Stats(), g.Counters())

	log.Info("simulation finished",
		zap.Int64("frames", report.Frames),
		zap.Int("collisions", report.Counters.Collisions),
		zap.Int("resets", report.Counters.Offscreen))

	return report.Generate(os.Stdout, format)
}

// runStepped advances the game by whole ticks until the simulated duration is
// covered, timing each update.
func runStepped(ctx context.Context, g *game.Game, sim config.SimulationConfig, samples *Stats) error {
	delta := sim.TickRate.Seconds()
	steps := int(sim.Duration / sim.TickRate)
	samples.Samples = make([]time.Duration, 0, steps)

	for range steps {
		if ctx.Err() != nil {
			return nil
		}

		updateStart := time.Now()
		if err := g.Update(delta); err != nil {
			return err
		}
		samples.Samples = append(samples.Samples, time.Since(updateStart))
	}
	return nil
}

// runRealtime ticks the system manager on the wall clock for the simulated
// duration.
func runRealtime(ctx context.Context, g *game.Game, sim config.SimulationConfig) error {
	ctx, cancel := context.WithTimeout(ctx, sim.Duration)
	defer cancel()
	return g.Systems().Run(ctx, sim.TickRate)
}
