package picker

import (
	"errors"
	"math"
	"testing"

	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
)

func TestBuildTileMesh_FlatFans(t *testing.T) {
	g := hexmap.DefaultGeom()
	size := hexmap.MapSize{W: 3, H: 2}
	m, err := BuildTileMesh(g, size)
	if err != nil {
		t.Fatalf("BuildTileMesh: %v", err)
	}
	if m.Triangles() != 6*size.W*size.H {
		t.Fatalf("triangles = %d, want %d", m.Triangles(), 6*size.W*size.H)
	}
	if len(m.Colors) != len(m.Vertices) {
		t.Fatalf("colors %d != vertices %d", len(m.Colors), len(m.Vertices))
	}
	for i, pos := range size.Positions() {
		want, _ := EncodeTile(pos)
		center := g.TileToWorld(pos)
		for k := 0; k < 18; k++ {
			if m.Colors[i*18+k] != want {
				t.Fatalf("tile %v vertex %d color = %v, want %v", pos, k, m.Colors[i*18+k], want)
			}
		}
		for tri := 0; tri < 6; tri++ {
			if m.Vertices[i*18+tri*3+2] != center {
				t.Fatalf("tile %v triangle %d does not end at the center", pos, tri)
			}
		}
	}
}

func TestBuildTileMesh_TooLarge(t *testing.T) {
	_, err := BuildTileMesh(hexmap.DefaultGeom(), hexmap.MapSize{W: 257, H: 1})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestBuildUnitMesh_SkipsSpecialNodes(t *testing.T) {
	g := hexmap.DefaultGeom()
	ix := scene.NewIndex()
	_ = ix.Insert(scene.UnitNode(4), g.TileToWorld(hexmap.MapPos{X: 1, Y: 1}))
	_ = ix.Insert(scene.MarkerNode, hexmap.WorldPos{})
	m, skipped := BuildUnitMesh(g, ix)
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v", skipped)
	}
	if m.Triangles() != 6 {
		t.Fatalf("triangles = %d, want 6", m.Triangles())
	}
	want, _ := EncodeUnit(4)
	for _, c := range m.Colors {
		if c != want {
			t.Fatalf("color = %v, want %v", c, want)
		}
	}
	center := m.Vertices[2]
	corner := m.Vertices[0]
	r := math.Hypot(float64(corner.X-center.X), float64(corner.Y-center.Y))
	if math.Abs(r-float64(g.ExRadius())*unitScale) > 1e-5 {
		t.Fatalf("unit hex radius = %f, want %f", r, float64(g.ExRadius())*unitScale)
	}
	if center.Z <= 0 {
		t.Fatal("unit hexes are not lifted above the tiles")
	}
}

func TestBuildUnitMesh_SkipsUnencodableIDs(t *testing.T) {
	ix := scene.NewIndex()
	_ = ix.Insert(scene.NodeID(300), hexmap.WorldPos{})
	_ = ix.Insert(scene.UnitNode(1), hexmap.WorldPos{X: 1})
	m, skipped := BuildUnitMesh(hexmap.DefaultGeom(), ix)
	if len(skipped) != 1 || skipped[0] != scene.NodeID(300) {
		t.Fatalf("skipped = %v, want [300]", skipped)
	}
	if m.Triangles() != 6 {
		t.Fatalf("triangles = %d, want 6 for the encodable unit", m.Triangles())
	}
}
