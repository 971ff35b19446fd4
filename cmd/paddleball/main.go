// Command paddleball runs the two-player paddle game in a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/game"
	"github.com/plus3/paddleball/internal/display"
	"github.com/plus3/paddleball/internal/logging"
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	foreground = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

type Window struct {
	game    *game.Game
	display *display.List
	delta   float64
}

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	debug := flag.Bool("debug", false, "show the frame rate overlay")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "paddleball:", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg.Debug = cfg.Debug || debug

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	keyboard, err := NewKeyboard(cfg.Paddles)
	if err != nil {
		return err
	}

	list := display.NewList(cfg.Playfield.Width, cfg.Playfield.Height)
	g, err := game.New(cfg, game.Options{
		Input:  keyboard,
		Canvas: list,
		Logger: log,
	})
	if err != nil {
		return err
	}

	tps := max(int(time.Second/cfg.Simulation.TickRate), 1)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	ebiten.SetWindowTitle("Paddleball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := &Window{
		game:    g,
		display: list,
		delta:   1 / float64(tps),
	}

	log.Info("starting", zap.Int("tps", tps), zap.Bool("debug", cfg.Debug))
	if err := ebiten.RunGame(w); err != nil {
		return err
	}

	stats := g.Systems().Stats()
	log.Info("stopped",
		zap.Int64("frames", stats.FrameCount),
		zap.Int("collisions", g.Counters().Collisions),
		zap.Int("resets", g.Counters().Offscreen))
	return nil
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := w.game.TogglePause(); err != nil {
			return err
		}
	}

	return w.game.Update(w.delta)
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, op := range w.display.Ops() {
		switch op.Kind {
		case display.OpRect:
			vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.Width), float32(op.Height), foreground, false)
		case display.OpCircle:
			vector.DrawFilledCircle(screen, float32(op.X), float32(op.Y), float32(op.Radius), foreground, true)
		case display.OpText:
			ebitenutil.DebugPrintAt(screen, op.Text, int(op.X), int(op.Y))
		}
	}

	if w.game.Paused() {
		width, height := w.display.Size()
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(width/2)-18, int(height/2)-8)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := w.display.Size()
	return int(width), int(height)
}
