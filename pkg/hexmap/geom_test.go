package hexmap

import (
	"math"
	"testing"
)

func dist2D(a, b WorldPos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func TestGeom_InRadius(t *testing.T) {
	g := DefaultGeom()
	want := 0.5 * math.Sqrt(3) / 2
	if math.Abs(float64(g.InRadius())-want) > 1e-6 {
		t.Fatalf("InRadius = %f, want %f", g.InRadius(), want)
	}
}

func TestTileToWorld_NeighboursTouch(t *testing.T) {
	g := DefaultGeom()
	want := 2 * float64(g.InRadius())
	for _, p := range samplePositions() {
		c := g.TileToWorld(p)
		for _, d := range AllDirs {
			n := g.TileToWorld(Neighbor(p, d))
			if got := dist2D(c, n); math.Abs(got-want) > 1e-4 {
				t.Fatalf("centers of %v and its %v neighbour are %f apart, want %f", p, d, got, want)
			}
		}
	}
}

func TestTileToWorld_NonNeighboursDoNotOverlap(t *testing.T) {
	g := DefaultGeom()
	minDist := 2 * float64(g.InRadius())
	ps := samplePositions()
	for i, a := range ps {
		for _, b := range ps[i+1:] {
			if got := dist2D(g.TileToWorld(a), g.TileToWorld(b)); got < minDist-1e-4 {
				t.Fatalf("tiles %v and %v overlap: centers %f apart", a, b, got)
			}
		}
	}
}

func TestHexCorner_Order(t *testing.T) {
	g := DefaultGeom()
	c0 := g.HexCorner(0)
	if math.Abs(float64(c0.X)) > 1e-6 || math.Abs(float64(c0.Y)-0.5) > 1e-6 {
		t.Fatalf("corner 0 = %+v, want (0, 0.5)", c0)
	}
	for i := 0; i < DirCount; i++ {
		a, b := g.HexCorner(i), g.HexCorner(i+1)
		if got := dist2D(a, b); math.Abs(got-float64(g.ExRadius())) > 1e-5 {
			t.Fatalf("edge %d has length %f, want %f", i, got, g.ExRadius())
		}
	}
	if g.HexCorner(6) != g.HexCorner(0) || g.HexCorner(-1) != g.HexCorner(5) {
		t.Fatal("corner index is not taken mod 6")
	}
}

func TestWorldPos_Lerp(t *testing.T) {
	a := WorldPos{X: 0, Y: 0, Z: 0}
	b := WorldPos{X: 2, Y: 4, Z: 8}
	if got := a.Lerp(b, 0.5); got != (WorldPos{X: 1, Y: 2, Z: 4}) {
		t.Fatalf("Lerp = %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1) = %+v", got)
	}
}

func TestMapSize_Positions(t *testing.T) {
	s := MapSize{W: 3, H: 2}
	ps := s.Positions()
	if len(ps) != 6 {
		t.Fatalf("len = %d, want 6", len(ps))
	}
	if ps[0] != (MapPos{0, 0}) || ps[5] != (MapPos{2, 1}) {
		t.Fatalf("unexpected order: %v", ps)
	}
	if s.Contains(MapPos{3, 0}) || s.Contains(MapPos{0, -1}) || !s.Contains(MapPos{2, 1}) {
		t.Fatal("Contains gives wrong answers")
	}
}
