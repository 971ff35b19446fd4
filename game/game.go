// Package game assembles the paddleball world: the event bus, the ordered
// system list and the initial scene.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/ecs"
	"github.com/plus3/paddleball/systems"
)

// Options carries the front-end collaborators of a game.
type Options struct {
	// Input drives the player paddles. Nil leaves them still.
	Input systems.InputProvider
	// Canvas enables the render systems. Nil runs headless.
	Canvas systems.Canvas
	// Now is the clock of the debug overlay. Nil uses time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

// Counters tallies the events published while the game ran.
type Counters struct {
	Collisions int
	Offscreen  int
	Pauses     int
}

// Game owns one paddleball world.
type Game struct {
	log      *zap.Logger
	bus      *ecs.EventBus
	systems  *ecs.SystemManager
	entities *ecs.EntityManager
	physics  *systems.PhysicsSystem
	debug    *systems.DebugRenderSystem
	scene    Scene

	counters Counters
	paused   bool
}

// New builds the systems in update order (input, motion, physics, offscreen
// reset, then render and the debug overlay when a canvas is given) and
// populates the scene described by cfg.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("game: nil config")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{
		log: log,
		bus: ecs.NewEventBus(),
	}

	playfield := component.Rect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)
	g.physics = systems.NewPhysicsSystem(g.bus, playfield)

	list := []ecs.System{
		systems.NewInputSystem(opts.Input),
		systems.NewMotionSystem(),
		g.physics,
		systems.NewOffscreenResetSystem(g.bus),
	}

	if opts.Canvas != nil {
		render, err := systems.NewRenderSystem(opts.Canvas)
		if err != nil {
			return nil, err
		}
		list = append(list, render)

		if cfg.Debug {
			g.debug, err = systems.NewDebugRenderSystem(opts.Canvas, opts.Now)
			if err != nil {
				return nil, err
			}
			list = append(list, g.debug)
		}
	}

	g.systems = ecs.NewSystemManager(log.Named("systems"), list...)
	g.entities = ecs.NewEntityManager(g.systems, component.NewRegistry(), log.Named("entities"))

	g.subscribe()

	scene, err := populate(g.entities, cfg)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.scene = scene

	log.Info("game ready",
		zap.Int("entities", g.entities.Len()),
		zap.Int("systems", len(list)),
		zap.Float64("width", cfg.Playfield.Width),
		zap.Float64("height", cfg.Playfield.Height))

	return g, nil
}

func (g *Game) subscribe() {
	ecs.Subscribe(g.bus, func(ev systems.CollisionEvent) {
		g.counters.Collisions++
		g.log.Debug(ev.Name(),
			zap.Stringer("a", ev.Entities[0]),
			zap.Stringer("b", ev.Entities[1]))
	})
	ecs.Subscribe(g.bus, func(ev systems.OffscreenEvent) {
		g.counters.Offscreen++
		g.log.Debug(ev.Name(), zap.Stringer("entity", ev.Entity))
	})
	ecs.Subscribe(g.bus, func(ev systems.PauseEvent) {
		g.counters.Pauses++
		g.paused = !g.paused
		g.log.Info(ev.Name(), zap.Bool("paused", g.paused))
	})
}

// Update advances the world by delta seconds. A paused game does nothing.
func (g *Game) Update(delta float64) error {
	if g.paused {
		return nil
	}
	return g.systems.Update(delta)
}

// TogglePause publishes a PauseEvent.
func (g *Game) TogglePause() error {
	return ecs.Publish(g.bus, systems.PauseEvent{})
}

func (g *Game) Paused() bool                    { return g.paused }
func (g *Game) Bus() *ecs.EventBus              { return g.bus }
func (g *Game) Systems() *ecs.SystemManager     { return g.systems }
func (g *Game) Entities() *ecs.EntityManager    { return g.entities }
func (g *Game) Physics() *systems.PhysicsSystem { return g.physics }
func (g *Game) Scene() Scene                    { return g.scene }
func (g *Game) Counters() Counters              { return g.counters }

// FPS returns the debug overlay's frame rate, or 0 without one.
func (g *Game) FPS() int {
	if g.debug == nil {
		return 0
	}
	return g.debug.FPS()
}
