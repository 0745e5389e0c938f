package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/tags"
)

// UpdateCollisions moves every player body through the solid tile set.
// The X axis is resolved fully before Y is attempted, so a falling body
// grazing a perpendicular edge slides around the corner instead of halting.
func UpdateCollisions(ecs *ecs.ECS) {
	settings := mustSettings(ecs)
	terrain := mustTerrain(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		object := components.Object.Get(e)

		resolveHorizontal(terrain.Grid, physics, &object.Rect)
		landed := resolveVertical(terrain.Grid, physics, &object.Rect)

		physics.Grounded = landed
		if landed {
			// Landing is the sole path that replenishes jumps.
			player.RemainingJumps = settings.Player.MaxJumps
		}
	})
}

// resolveHorizontal applies the full X displacement, then snaps back flush
// against the nearest overlapped solid. Speeds stay below the tile scale, so
// testing only the destination cannot tunnel through a tile.
func resolveHorizontal(g *grid.Grid, physics *components.PhysicsData, rect *grid.Rect) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	moved := *rect
	moved.X += dx

	solid, hit := nearestSolid(g, moved, dx, 0)
	if !hit {
		rect.X = moved.X
		return
	}

	if dx > 0 {
		rect.X = solid.X - rect.W
	} else {
		rect.X = solid.X + solid.W
	}
	physics.SpeedX = 0
}

// resolveVertical is the Y counterpart of resolveHorizontal. It reports
// whether the body landed (a downward contact).
func resolveVertical(g *grid.Grid, physics *components.PhysicsData, rect *grid.Rect) bool {
	dy := physics.SpeedY
	if dy == 0 {
		return false
	}

	moved := *rect
	moved.Y += dy

	solid, hit := nearestSolid(g, moved, 0, dy)
	if !hit {
		rect.Y = moved.Y
		return false
	}

	if dy > 0 {
		rect.Y = solid.Y - rect.H
	} else {
		rect.Y = solid.Y + solid.H
	}
	physics.SpeedY = 0
	return dy > 0
}

// nearestSolid returns the solid tile rectangle, among those strictly
// overlapped by the moved hitbox, whose leading edge the body reaches first
// along the displaced axis. Tiles sharing that edge coordinate snap to the
// same position, so ties resolve identically whichever tile wins.
func nearestSolid(g *grid.Grid, moved grid.Rect, dx, dy float64) (grid.Rect, bool) {
	var nearest grid.Rect
	found := false

	for _, c := range g.VisibleTiles(moved) {
		tile, err := g.Get(c)
		if err != nil || tile.Kind != grid.KindBlock {
			// Undecided tiles have no solid in them yet.
			continue
		}
		r := g.RectOf(c)
		if !moved.Overlaps(r) {
			continue
		}
		if !found {
			nearest, found = r, true
			continue
		}
		switch {
		case dx > 0 && r.X < nearest.X:
			nearest = r
		case dx < 0 && r.X+r.W > nearest.X+nearest.W:
			nearest = r
		case dy > 0 && r.Y < nearest.Y:
			nearest = r
		case dy < 0 && r.Y+r.H > nearest.Y+nearest.H:
			nearest = r
		}
	}

	return nearest, found
}
