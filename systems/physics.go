package systems

import (
	"slices"

	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
)

// CollisionDirection is a bit set of the sides of an entity a target touches.
type CollisionDirection uint8

const (
	DirectionNone  CollisionDirection = 0
	DirectionNorth CollisionDirection = 1 << 0
	DirectionEast  CollisionDirection = 1 << 1
	DirectionSouth CollisionDirection = 1 << 2
	DirectionWest  CollisionDirection = 1 << 3
)

// Has reports whether every bit of d2 is set in d.
func (d CollisionDirection) Has(d2 CollisionDirection) bool {
	return d&d2 == d2 && d2 != DirectionNone
}

func (d CollisionDirection) String() string {
	if d == DirectionNone {
		return "none"
	}
	s := ""
	for _, dir := range []struct {
		bit  CollisionDirection
		name string
	}{
		{DirectionNorth, "north"},
		{DirectionEast, "east"},
		{DirectionSouth, "south"},
		{DirectionWest, "west"},
	} {
		if d.Has(dir.bit) {
			if s != "" {
				s += "|"
			}
			s += dir.name
		}
	}
	return s
}

type physicsBundle struct {
	Motion   *component.Motion   `ecs:"motion"`
	Position *component.Position `ecs:"position"`
	Bounds   *component.Bounds   `ecs:"bounds"`
	Physics  *component.Physics  `ecs:"physics"`
}

type collision struct {
	entityId  ecs.EntityId
	entity    *physicsBundle
	targetId  ecs.EntityId
	target    *physicsBundle
	direction CollisionDirection
}

// PhysicsSystem detects and resolves overlaps between rectangular bounds and
// reports collisions and offscreen entities on the event bus.
type PhysicsSystem struct {
	ecs.Query[physicsBundle]
	bus       *ecs.EventBus
	playfield component.Rectangle

	collisions []collision
}

// NewPhysicsSystem creates a physics system for the given playfield extent.
func NewPhysicsSystem(bus *ecs.EventBus, playfield component.Rectangle) *PhysicsSystem {
	return &PhysicsSystem{
		bus:       bus,
		playfield: playfield,
	}
}

// Playfield returns the extent used for offscreen checks.
func (s *PhysicsSystem) Playfield() component.Rectangle {
	return s.playfield
}

// Update runs one detection and resolution pass:
//  1. every member outside the playfield gets an OffscreenEvent; handlers run
//     before detection, so a reset entity is tested at its new position
//  2. every ordered pair of members is tested and classified
//  3. non-sensor pairs are resolved against the entity's own velocity
//  4. one CollisionEvent is published per unordered pair
func (s *PhysicsSystem) Update(float64) error {
	for id, item := range s.Iter() {
		offscreen, err := s.isOffscreen(item.Bounds.Normalize(*item.Position))
		if err != nil {
			return err
		}
		if offscreen {
			if err := ecs.Publish(s.bus, OffscreenEvent{Entity: id}); err != nil {
				return err
			}
		}
	}

	s.collisions = s.collisions[:0]
	for id, item := range s.Iter() {
		shape := item.Bounds.Normalize(*item.Position)

		for targetId, target := range s.Iter() {
			if targetId == id {
				continue
			}

			direction, err := collisionDirection(shape, target.Bounds.Normalize(*target.Position))
			if err != nil {
				return err
			}
			if direction == DirectionNone {
				continue
			}

			s.collisions = append(s.collisions, collision{
				entityId:  id,
				entity:    item,
				targetId:  targetId,
				target:    target,
				direction: direction,
			})
		}
	}

	pairs := make([][2]ecs.EntityId, 0, len(s.collisions)/2)
	for _, c := range s.collisions {
		if !c.entity.Physics.IsSensor && !c.target.Physics.IsSensor {
			if err := resolveCollision(c.entity, c.target, c.direction); err != nil {
				return err
			}
		}

		pair := [2]ecs.EntityId{min(c.entityId, c.targetId), max(c.entityId, c.targetId)}
		if !slices.Contains(pairs, pair) {
			pairs = append(pairs, pair)
		}
	}

	for _, pair := range pairs {
		if err := ecs.Publish(s.bus, CollisionEvent{Entities: pair}); err != nil {
			return err
		}
	}

	return nil
}

func (s *PhysicsSystem) isOffscreen(shape component.Shape) (bool, error) {
	rect, ok := shape.Rectangle()
	if !ok {
		return false, &UnsupportedShapePairError{Op: "offscreen", A: shape.Kind, B: component.ShapeRectangle}
	}
	return rect.IsOutside(s.playfield), nil
}

func collisionDirection(entity, target component.Shape) (CollisionDirection, error) {
	entityRect, entityOk := entity.Rectangle()
	targetRect, targetOk := target.Rectangle()
	if !entityOk || !targetOk {
		return DirectionNone, &UnsupportedShapePairError{Op: "detect", A: entity.Kind, B: target.Kind}
	}
	return rectangleCollisionDirection(entityRect, targetRect), nil
}

// rectangleCollisionDirection classifies which side of entity the target hits.
// Overlap on each axis is measured from the side the target's center lies on.
// A wider horizontal overlap means a north/south hit, a taller vertical overlap
// an east/west hit; equal overlap is a diagonal hit and sets both bits.
func rectangleCollisionDirection(entity, target component.Rectangle) CollisionDirection {
	if !entity.Overlaps(target) {
		return DirectionNone
	}

	entityCenter := entity.Center()
	targetCenter := target.Center()
	targetIsEast := entityCenter.X < targetCenter.X
	targetIsSouth := entityCenter.Y < targetCenter.Y

	var overlapX, overlapY float64
	if targetIsEast {
		overlapX = entity.Right() - target.Origin.X
	} else {
		overlapX = target.Right() - entity.Origin.X
	}
	if targetIsSouth {
		overlapY = entity.Bottom() - target.Origin.Y
	} else {
		overlapY = target.Bottom() - entity.Origin.Y
	}

	horizontal := DirectionWest
	if targetIsEast {
		horizontal = DirectionEast
	}
	vertical := DirectionNorth
	if targetIsSouth {
		vertical = DirectionSouth
	}

	// 0/0 is NaN and compares false both ways, landing on the diagonal case.
	ratio := overlapX / overlapY
	switch {
	case ratio > 1:
		return vertical
	case ratio < 1:
		return horizontal
	default:
		return horizontal | vertical
	}
}

// resolveCollision moves entity flush against target on each hit side it is
// moving into and reflects that velocity component scaled by bounciness.
// Target positions are read live, so earlier resolutions in the same pass are
// taken into account.
func resolveCollision(entity, target *physicsBundle, direction CollisionDirection) error {
	entityRect, entityOk := entity.Bounds.Rectangle()
	targetRect, targetOk := target.Bounds.Rectangle()
	if !entityOk || !targetOk {
		return &UnsupportedShapePairError{Op: "resolve", A: entity.Bounds.Kind, B: target.Bounds.Kind}
	}

	velocity := &entity.Motion.Velocity
	bounce := -1 * entity.Physics.Bounciness

	if direction.Has(DirectionNorth) && velocity.Y < 0 {
		entity.Position.Y = target.Position.Y + targetRect.Bottom() - entityRect.Origin.Y
		velocity.Y *= bounce
	}

	if direction.Has(DirectionSouth) && velocity.Y > 0 {
		entity.Position.Y = target.Position.Y + targetRect.Origin.Y - entityRect.Size.Height - entityRect.Origin.Y
		velocity.Y *= bounce
	}

	if direction.Has(DirectionWest) && velocity.X < 0 {
		entity.Position.X = target.Position.X + targetRect.Right() - entityRect.Origin.X
		velocity.X *= bounce
	}

	if direction.Has(DirectionEast) && velocity.X > 0 {
		entity.Position.X = target.Position.X + targetRect.Origin.X - entityRect.Size.Width - entityRect.Origin.X
		velocity.X *= bounce
	}

	return nil
}
