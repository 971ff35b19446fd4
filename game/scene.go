package game

import (
	"fmt"
	"math"

	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/ecs"
)

// Scene records the handles of the entities a game was built with.
// Paddle handles double as their input slots.
type Scene struct {
	Paddles []ecs.EntityId
	Ball    ecs.EntityId
	Walls   [2]ecs.EntityId
}

// PaddleComponents builds the component bag of a player paddle with its
// top-left corner at (x, y).
func PaddleComponents(x, y float64, paddle config.PaddleConfig) ecs.Components {
	shape := component.RectShape(0, 0, paddle.Width, paddle.Height)
	return ecs.Components{
		component.KindPosition: component.Position{X: x, Y: y},
		component.KindMotion:   component.Motion{},
		component.KindBounds:   component.Bounds{Shape: shape},
		component.KindMesh:     component.Mesh{Shape: shape},
		component.KindPhysics:  component.Physics{Bounciness: 0},
		component.KindInput:    component.Input{Speed: paddle.Speed},
	}
}

// BallComponents builds the component bag of a ball centered on (x, y) that
// returns there whenever it leaves the playfield.
func BallComponents(x, y float64, ball config.BallConfig) ecs.Components {
	r := ball.Radius
	return ecs.Components{
		component.KindPosition:      component.Position{X: x, Y: y},
		component.KindMotion:        component.Motion{Velocity: component.Vector{X: ball.VelocityX, Y: ball.VelocityY}},
		component.KindBounds:        component.Bounds{Shape: component.RectShape(-r, -r, 2*r, 2*r)},
		component.KindMesh:          component.Mesh{Shape: component.CircleShape(0, 0, r)},
		component.KindPhysics:       component.Physics{Bounciness: ball.Bounciness},
		component.KindResetLocation: component.ResetLocation{X: x, Y: y},
	}
}

// WallComponents builds the component bag of a static wall.
func WallComponents(rect component.Rectangle) ecs.Components {
	shape := component.RectShape(0, 0, rect.Size.Width, rect.Size.Height)
	return ecs.Components{
		component.KindPosition: component.Position{X: rect.Origin.X, Y: rect.Origin.Y},
		component.KindMotion:   component.Motion{},
		component.KindBounds:   component.Bounds{Shape: shape},
		component.KindMesh:     component.Mesh{Shape: shape},
		component.KindPhysics:  component.Physics{Bounciness: 0},
	}
}

// populate creates paddles first so they receive handles 1..n, then the ball
// and the top and bottom walls.
func populate(entities *ecs.EntityManager, cfg *config.Config) (Scene, error) {
	var scene Scene
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	margin := math.Round(w / 64)

	for i, paddle := range cfg.Paddles {
		inset := margin + float64(i/2)*paddle.Width*4
		x := inset
		if i%2 == 1 {
			x = w - inset - paddle.Width
		}
		y := math.Round(h/2) - paddle.Height/2

		id, err := entities.CreateEntity(PaddleComponents(x, y, paddle))
		if err != nil {
			return scene, fmt.Errorf("create paddle %d: %w", i+1, err)
		}
		scene.Paddles = append(scene.Paddles, id)
	}

	ball, err := entities.CreateEntity(BallComponents(math.Round(w/2), math.Round(h/2), cfg.Ball))
	if err != nil {
		return scene, fmt.Errorf("create ball: %w", err)
	}
	scene.Ball = ball

	thickness := cfg.Walls.Thickness
	walls := [2]component.Rectangle{
		component.Rect(0, 0, w, thickness),
		component.Rect(0, h-thickness, w, thickness),
	}
	for i, rect := range walls {
		id, err := entities.CreateEntity(WallComponents(rect))
		if err != nil {
			return scene, fmt.Errorf("create wall %d: %w", i+1, err)
		}
		scene.Walls[i] = id
	}

	return scene, nil
}
