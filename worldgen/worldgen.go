// Package worldgen decides the contents of tiles as they scroll into view.
// It owns the layered random policy (coin, clumped block, empty space) but
// not the entities themselves: placement goes through a Placer so the policy
// can run and be tested without an ECS world.
package worldgen

import (
	"github.com/yohamta/donburi"

	"github.com/HN67/runner/grid"
)

// Source yields uniform values in [0,1). *rand.Rand satisfies it; tests
// inject scripted sources so a fixed seed reproduces a fixed layout.
type Source interface {
	Float64() float64
}

// Placer materializes the generator's decisions. PlaceBlock returns the
// handle of the solid entity it created so the grid can record it.
// RemoveBlock is only invoked in destructive mode, when a re-rolled splash
// displaces an existing block.
type Placer interface {
	PlaceBlock(c grid.Coord) donburi.Entity
	PlaceCoin(c grid.Coord)
	RemoveBlock(e donburi.Entity)
}

// Config holds the generation densities. Thresholds are cumulative: a draw
// under CoinDensity is a coin, under BlockDensity a block, anything else
// empty space. Coin takes precedence, so CoinDensity should not exceed
// BlockDensity if blocks are wanted at all.
type Config struct {
	CoinDensity  float64
	BlockDensity float64
	ClumpRadius  int
	ClumpDensity float64
	// Destructive permits clump splash to re-roll tiles that are already
	// decided. Off in normal play; the grid invariant that a decided tile is
	// never regenerated holds whenever this is false.
	Destructive bool
}

// Generator lazily fills undecided tiles.
type Generator struct {
	cfg    Config
	grid   *grid.Grid
	rng    Source
	placer Placer
}

// New creates a generator over the given grid. The generator never errors:
// visiting an already-decided tile is a no-op.
func New(cfg Config, g *grid.Grid, rng Source, placer Placer) *Generator {
	return &Generator{cfg: cfg, grid: g, rng: rng, placer: placer}
}

// Visit decides every undecided tile in the batch, in batch order. Tiles
// decided earlier in the same batch (including by clump splash) are skipped,
// so sweeping the same viewport back and forth neither re-rolls tiles nor
// duplicates entities.
func (g *Generator) Visit(tiles []grid.Coord) {
	for _, c := range tiles {
		if g.grid.Contains(c) {
			continue
		}

		v := g.rng.Float64()
		switch {
		case v < g.cfg.CoinDensity:
			// The coin is not the grid occupant: the tile itself is walkable.
			g.placer.PlaceCoin(c)
			g.grid.Set(c, grid.Tile{Kind: grid.KindSpace})
		case v < g.cfg.BlockDensity:
			g.placeBlock(c)
			g.splash(c)
		default:
			g.grid.Set(c, grid.Tile{Kind: grid.KindSpace})
		}
	}
}

// splash grows a clump around a freshly placed block: one independent roll
// per undecided tile in the surrounding square. Splash may decide tiles
// outside the visited batch, and splashed blocks do not splash in turn;
// clumps never cascade.
func (g *Generator) splash(center grid.Coord) {
	r := g.cfg.ClumpRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			n := grid.Coord{Column: center.Column + dx, Row: center.Row + dy}
			if g.grid.Contains(n) && !g.cfg.Destructive {
				continue
			}
			if g.rng.Float64() < g.cfg.ClumpDensity {
				g.placeBlock(n)
			}
		}
	}
}

func (g *Generator) placeBlock(c grid.Coord) {
	if old, err := g.grid.Get(c); err == nil && old.Kind == grid.KindBlock {
		// Destructive re-roll over an existing block.
		g.placer.RemoveBlock(old.Entity)
	}
	e := g.placer.PlaceBlock(c)
	g.grid.Set(c, grid.Tile{Kind: grid.KindBlock, Entity: e})
}
