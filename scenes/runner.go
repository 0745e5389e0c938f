package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/assets"
	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/leveldata"
	"github.com/HN67/runner/systems"
	"github.com/HN67/runner/systems/factory"
	"github.com/HN67/runner/worldgen"
)

// backgroundColor shows through wherever no tile has been decided yet.
var backgroundColor = color.RGBA{20, 20, 24, 255}

// RunnerScene runs the side-scrolling world: lazy generation around the
// camera, player physics against the solid tiles, coin pickup, minimap.
type RunnerScene struct {
	config cfg.Config
	seed   int64

	ecs  *ecs.ECS
	once sync.Once
}

// NewRunnerScene creates the scene. The seed fixes the generator's random
// stream, so two runs with the same seed and the same camera path decide the
// same world.
func NewRunnerScene(config cfg.Config, seed int64) *RunnerScene {
	return &RunnerScene{config: config, seed: seed}
}

func (rs *RunnerScene) Update() error {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.QuitRequested(rs.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) configure() {
	assets.Load(rs.config.Tiles.Scale)

	e := ecs.NewECS(donburi.NewWorld())

	settings := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(settings, components.SettingsData{Config: rs.config})

	gen := rs.config.Generation
	terrainEntry := factory.CreateTerrain(e, worldgen.Config{
		CoinDensity:  gen.CoinDensity,
		BlockDensity: gen.BlockDensity,
		ClumpRadius:  gen.ClumpRadius,
		ClumpDensity: gen.ClumpDensity,
	}, rs.config.Tiles.Scale, rand.New(rand.NewSource(rs.seed)))
	terrain := components.Terrain.Get(terrainEntry)

	// The authored spawn area guarantees ground under the player's feet
	// before the generator has decided anything.
	spawn, err := leveldata.Load(assets.LevelFS, assets.SpawnAreaPath)
	if err != nil {
		panic("failed to load spawn area: " + err.Error())
	}
	for _, solid := range spawn.Solids {
		c := terrain.Grid.IndexOf(solid.X+solid.W/2, solid.Y+solid.H/2)
		block := factory.CreateBlock(e, terrain.Grid.RectOf(c))
		terrain.Grid.Set(c, grid.Tile{Kind: grid.KindBlock, Entity: block.Entity()})
	}

	player := factory.CreatePlayer(e, rs.config.Player, spawn.SpawnX, spawn.SpawnY)
	centerX, centerY := components.Object.Get(player).Rect.Center()
	factory.CreateCamera(e, centerX, centerY)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdatePickups)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateGeneration)

	e.AddRenderer(cfg.LayerDefault, systems.DrawWorld)
	e.AddRenderer(cfg.LayerDefault, systems.DrawMinimap)
	e.AddRenderer(cfg.LayerDefault, systems.DrawHUD)

	rs.ecs = e
}
