// Package config defines the fixed numeric parameters the game consumes.
// A Config is built once by Default (optionally adjusted by the caller),
// validated, and passed into the scene; no package has mutable config state.
package config

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	LayerDefault ecs.LayerID = iota
)

// WindowConfig describes the display surface, which doubles as the viewbox
// size in world pixels.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// TileConfig describes the world grid.
type TileConfig struct {
	Scale int // pixels per tile side
}

// GenerationConfig holds the lazy world generator densities. Thresholds are
// cumulative: coin wins below CoinDensity, block below BlockDensity.
type GenerationConfig struct {
	BlockDensity float64
	CoinDensity  float64
	ClumpRadius  int
	ClumpDensity float64
}

// PlayerConfig holds player movement and collision parameters.
type PlayerConfig struct {
	JumpImpulse  float64 // upward speed set on jump
	Gravity      float64 // per-tick downward acceleration
	MaxFallSpeed float64 // terminal fall speed
	MaxSpeed     float64 // horizontal speed cap
	Acceleration float64 // per-tick horizontal speed step, both accel and decel

	MaxJumps int // jumps available between landings

	CollisionWidth  float64
	CollisionHeight float64
}

// MinimapConfig describes the corner minimap.
type MinimapConfig struct {
	TilePixels int // on-screen pixels per world tile
	Margin     int // distance from the screen corner
	ViewTiles  int // tiles shown in each direction from the camera
}

// Config is the complete, read-only parameter set for one game run.
type Config struct {
	Window     WindowConfig
	TPS        int
	Tiles      TileConfig
	Generation GenerationConfig
	Player     PlayerConfig
	Minimap    MinimapConfig
	Input      InputConfig
}

// Default returns the standard parameter set.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  512,
			Height: 512,
			Title:  "Runner",
		},
		TPS: 60,
		Tiles: TileConfig{
			Scale: 32,
		},
		Generation: GenerationConfig{
			BlockDensity: 0.2,
			CoinDensity:  0.05,
			ClumpRadius:  1,
			ClumpDensity: 0.35,
		},
		Player: PlayerConfig{
			JumpImpulse:     15,
			Gravity:         1,
			MaxFallSpeed:    16,
			MaxSpeed:        7,
			Acceleration:    1,
			MaxJumps:        2,
			CollisionWidth:  20,
			CollisionHeight: 20,
		},
		Minimap: MinimapConfig{
			TilePixels: 4,
			Margin:     10,
			ViewTiles:  12,
		},
		Input: DefaultInput(),
	}
}

// Validate checks every parameter once, at construction, so the simulation
// itself never has to defend against bad values.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.Tiles.Scale <= 0 {
		return fmt.Errorf("tile scale %d: must be positive", c.Tiles.Scale)
	}

	gen := c.Generation
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"block density", gen.BlockDensity},
		{"coin density", gen.CoinDensity},
		{"clump density", gen.ClumpDensity},
	} {
		if d.value < 0 || d.value > 1 {
			return fmt.Errorf("%s %v: must be within [0,1]", d.name, d.value)
		}
	}
	if gen.ClumpRadius < 0 {
		return fmt.Errorf("clump radius %d: must be non-negative", gen.ClumpRadius)
	}

	p := c.Player
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"jump impulse", p.JumpImpulse},
		{"gravity", p.Gravity},
		{"max fall speed", p.MaxFallSpeed},
		{"max speed", p.MaxSpeed},
		{"acceleration", p.Acceleration},
	} {
		if v.value < 0 {
			return fmt.Errorf("%s %v: must be non-negative", v.name, v.value)
		}
	}
	if p.MaxJumps < 0 {
		return fmt.Errorf("max jumps %d: must be non-negative", p.MaxJumps)
	}
	if p.CollisionWidth <= 0 || p.CollisionHeight <= 0 {
		return fmt.Errorf("player collision box %vx%v: must be positive", p.CollisionWidth, p.CollisionHeight)
	}

	if c.Minimap.TilePixels <= 0 || c.Minimap.ViewTiles <= 0 {
		return fmt.Errorf("minimap %d px per tile, %d view tiles: must be positive",
			c.Minimap.TilePixels, c.Minimap.ViewTiles)
	}

	return nil
}
