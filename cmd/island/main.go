package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/island/audio"
	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/core"
	"github.com/lixenwraith/island/engine"
	"github.com/lixenwraith/island/physics"
	"github.com/lixenwraith/island/render"
	"github.com/lixenwraith/island/telemetry"
	"github.com/lixenwraith/island/terminal"
)

var (
	configPath   = flag.String("config", "", "YAML config overlaid on the embedded defaults")
	backendFlag  = flag.String("backend", "", "Display backend: ansi, tcell (default from config)")
	soundFlag    = flag.Bool("sound", false, "Play splash sounds on drip impacts")
	telemetryDir = flag.String("telemetry", "", "Directory for frames.csv and config.yaml")
	seedFlag     = flag.Int64("seed", 0, "Random seed for cloud reversals (0 uses the clock)")
	framesFlag   = flag.Int("frames", 0, "Exit after this many frames (0 runs until quit)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/island.log")
)

// display is a terminal the scene can be sized against and drawn into
type display interface {
	core.SizeSource
	render.Sink
	Init() error
	Fini()
	Flush() error
	Quit() <-chan struct{}
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		terminal.HandleCrash(recover())
	}()

	flag.Parse()

	if logFile := setupLogging(logDir, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "island: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := run(cfg, seed, *framesFlag); err != nil {
		fmt.Fprintf(os.Stderr, "island: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of the config file
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *backendFlag != "" {
		cfg.Display.Backend = *backendFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	if *telemetryDir != "" {
		cfg.Telemetry.Dir = *telemetryDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDisplay(backend string) (display, error) {
	if backend == config.BackendTcell {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		return terminal.NewScreen(screen), nil
	}
	return terminal.New(terminal.NewBackend()), nil
}

func run(cfg *config.Config, seed int64, maxFrames int) error {
	disp, err := newDisplay(cfg.Display.Backend)
	if err != nil {
		return err
	}
	if err := disp.Init(); err != nil {
		return fmt.Errorf("display init: %w", err)
	}
	defer disp.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return animate(ctx, cfg, disp, rand.New(rand.NewSource(seed)), maxFrames)
}

// animate runs the frame loop until the context ends, a quit key arrives, or maxFrames elapse
func animate(ctx context.Context, cfg *config.Config, disp display, rng *rand.Rand, maxFrames int) error {
	world, err := engine.NewWorld(cfg, disp, rng)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	log.Printf("start: %dx%d at %d fps", world.Surface.Width(), world.Surface.Height(), cfg.FrameRate)

	var player *audio.SplashPlayer
	if cfg.Audio.Enabled {
		player = audio.NewSplashPlayer(cfg.Audio)
		if err := player.Initialize(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		log.Printf("telemetry config: %v", err)
	}

	renderer := render.NewRenderer()
	scene := render.Scene{
		Surface: world.Surface,
		Water:   world.Water,
		Drips:   world.Drips,
		Cloud:   world.Cloud,
	}

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("stop: %v after %d frames", ctx.Err(), world.Frame())
			return nil
		case <-disp.Quit():
			log.Printf("stop: quit key after %d frames", world.Frame())
			return nil
		case <-ticker.C:
		}

		report := world.Step()
		logReport(world, report)

		if player != nil {
			player.PlayImpacts(report.Impacts)
		}
		if err := out.Observe(world, report); err != nil {
			log.Printf("telemetry: %v", err)
		}

		renderer.Render(disp, scene)
		if err := disp.Flush(); err != nil {
			log.Printf("frame %d: flush: %v", report.Frame, err)
		}

		if maxFrames > 0 && report.Frame >= uint64(maxFrames) {
			return nil
		}
	}
}

func logReport(w *engine.World, r engine.StepReport) {
	if r.SizeErr != nil {
		log.Printf("frame %d: size query: %v", r.Frame, r.SizeErr)
	}
	if r.SpawnErr != nil {
		if errors.Is(r.SpawnErr, physics.ErrPoolFull) {
			log.Printf("frame %d: drip dropped, pool full", r.Frame)
		} else {
			log.Printf("frame %d: spawn: %v", r.Frame, r.SpawnErr)
		}
	}
	if r.Resized {
		log.Printf("frame %d: resize to %dx%d", r.Frame, w.Surface.Width(), w.Surface.Height())
	}
}
