package systems

import (
	"testing"

	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/tags"
)

func TestGenerationDecidesVisibleTiles(t *testing.T) {
	e := newTestECS()
	terrain := mustTerrain(e)

	press(e) // input singleton with nothing held
	UpdateGeneration(e)

	// 512x512 view centered on the origin: tiles -9..8 on both axes, plus
	// one closed-range edge column/row.
	settings := mustSettings(e)
	view := grid.Rect{
		X: -float64(settings.Window.Width) / 2,
		Y: -float64(settings.Window.Height) / 2,
		W: float64(settings.Window.Width),
		H: float64(settings.Window.Height),
	}
	for _, c := range terrain.Grid.VisibleTiles(view) {
		if !terrain.Grid.Contains(c) {
			t.Fatalf("visible tile (%d,%d) left undecided", c.Column, c.Row)
		}
	}
}

func TestGenerationFollowsCamera(t *testing.T) {
	e := newTestECS()
	terrain := mustTerrain(e)
	camera := mustCamera(e)

	far := grid.Coord{Column: 100, Row: 100}
	if terrain.Grid.Contains(far) {
		t.Fatal("far tile decided before the camera reached it")
	}

	rect := terrain.Grid.RectOf(far)
	camera.Position.X, camera.Position.Y = rect.Center()
	press(e)
	UpdateGeneration(e)

	if !terrain.Grid.Contains(far) {
		t.Error("far tile still undecided after the camera moved onto it")
	}
}

func TestRegenerateRerollsWorld(t *testing.T) {
	e := newTestECS()
	terrain := mustTerrain(e)

	placeBlock(e, grid.Coord{Column: 0, Row: 3})
	press(e)
	UpdateGeneration(e)

	press(e, cfg.ActionRegenerate)
	UpdateGeneration(e)

	if got := countEach(tags.Block, e.World); got != 0 {
		t.Errorf("blocks remaining = %d, want 0", got)
	}
	// The same pass redecides the visible region from scratch.
	if terrain.Grid.Len() == 0 {
		t.Error("grid empty after regenerate pass: visible region not redecided")
	}
	if terrain.Grid.Contains(grid.Coord{Column: 100, Row: 100}) {
		t.Error("regenerate decided tiles outside the view")
	}

	if terrain.Grid.Contains(grid.Coord{Column: 0, Row: 3}) {
		tile, err := terrain.Grid.Get(grid.Coord{Column: 0, Row: 3})
		if err == nil && tile.Kind == grid.KindBlock {
			t.Error("hand-placed block survived regeneration with zero densities")
		}
	}
}

func TestCameraCentersOnPlayer(t *testing.T) {
	e := newTestECS()
	camera := mustCamera(e)
	spawnPlayer(e, 100, 200)

	UpdateCamera(e)

	if camera.Position.X != 110 || camera.Position.Y != 210 {
		t.Errorf("camera = (%v,%v), want (110,210)", camera.Position.X, camera.Position.Y)
	}
}
