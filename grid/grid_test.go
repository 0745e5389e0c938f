package grid

import (
	"errors"
	"testing"
)

func TestRectOf(t *testing.T) {
	g := New(32)

	tests := []struct {
		name  string
		coord Coord
		want  Rect
	}{
		{"origin", Coord{0, 0}, Rect{0, 0, 32, 32}},
		{"positive", Coord{2, 3}, Rect{64, 96, 32, 32}},
		{"negative", Coord{-1, -2}, Rect{-32, -64, 32, 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.RectOf(tt.coord); got != tt.want {
				t.Errorf("RectOf(%v) = %v, want %v", tt.coord, got, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	g := New(32)

	tests := []struct {
		name string
		x, y float64
		want Coord
	}{
		{"origin", 0, 0, Coord{0, 0}},
		{"interior", 31.9, 31.9, Coord{0, 0}},
		{"right edge owned by next tile", 32, 0, Coord{1, 0}},
		{"bottom edge owned by next tile", 0, 32, Coord{0, 1}},
		{"negative floors toward -inf", -0.5, -32, Coord{-1, -1}},
		{"far negative", -33, -1, Coord{-2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IndexOf(tt.x, tt.y); got != tt.want {
				t.Errorf("IndexOf(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestVisibleTiles(t *testing.T) {
	g := New(32)

	// A view from (0,0) to (63,63) covers exactly the 2x2 tile square.
	got := g.VisibleTiles(Rect{X: 0, Y: 0, W: 63, H: 63})
	want := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	if len(got) != len(want) {
		t.Fatalf("VisibleTiles returned %d tiles, want %d: %v", len(got), len(want), got)
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("VisibleTiles[%d] = %v, want %v (row-major order)", i, got[i], c)
		}
	}
}

func TestVisibleTilesSpansNegative(t *testing.T) {
	g := New(32)

	got := g.VisibleTiles(Rect{X: -16, Y: -16, W: 32, H: 32})
	want := []Coord{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}}

	if len(got) != len(want) {
		t.Fatalf("VisibleTiles returned %d tiles, want %d: %v", len(got), len(want), got)
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("VisibleTiles[%d] = %v, want %v", i, got[i], c)
		}
	}
}

func TestGetSetDelete(t *testing.T) {
	g := New(32)
	c := Coord{4, -7}

	if g.Contains(c) {
		t.Fatal("fresh grid should not contain any tile")
	}
	if _, err := g.Get(c); !errors.Is(err, ErrUndecided) {
		t.Fatalf("Get on undecided tile: err = %v, want ErrUndecided", err)
	}
	if err := g.Delete(c); !errors.Is(err, ErrUndecided) {
		t.Fatalf("Delete on undecided tile: err = %v, want ErrUndecided", err)
	}

	g.Set(c, Tile{Kind: KindBlock})
	if !g.Contains(c) {
		t.Fatal("Contains = false after Set")
	}
	tile, err := g.Get(c)
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if tile.Kind != KindBlock {
		t.Errorf("Kind = %v, want KindBlock", tile.Kind)
	}

	if err := g.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if g.Contains(c) {
		t.Error("Contains = true after Delete")
	}
}

func TestClear(t *testing.T) {
	g := New(32)
	g.Set(Coord{0, 0}, Tile{Kind: KindSpace})
	g.Set(Coord{5, -3}, Tile{Kind: KindBlock})

	g.Clear()

	if g.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", g.Len())
	}
	if g.Contains(Coord{0, 0}) {
		t.Error("cleared tile still decided")
	}
}

func TestRectCenter(t *testing.T) {
	x, y := (Rect{X: 10, Y: 20, W: 20, H: 40}).Center()
	if x != 20 || y != 40 {
		t.Errorf("Center = (%v,%v), want (20,40)", x, y)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 32, 32}, Rect{0, 0, 32, 32}, true},
		{"partial", Rect{0, 0, 32, 32}, Rect{16, 16, 32, 32}, true},
		{"touching right edge", Rect{0, 0, 32, 32}, Rect{32, 0, 32, 32}, false},
		{"touching bottom edge", Rect{0, 0, 32, 32}, Rect{0, 32, 32, 32}, false},
		{"touching corner", Rect{0, 0, 32, 32}, Rect{32, 32, 32, 32}, false},
		{"separate", Rect{0, 0, 32, 32}, Rect{64, 64, 32, 32}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("overlap not symmetric: %v vs %v", tt.b, tt.a)
			}
		})
	}
}
