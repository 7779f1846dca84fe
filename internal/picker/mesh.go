// internal/picker/mesh.go
package picker

import (
	"fmt"
	"image/color"

	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
)

const (
	// unitScale shrinks unit hexes so the tile around a unit stays pickable.
	unitScale = 0.5
	// unitLift raises units above the tile plane.
	unitLift = 0.01
)

// Mesh is a flat-colored triangle list in world space.
// Vertices and Colors are parallel, three entries per triangle.
type Mesh struct {
	Vertices []hexmap.WorldPos
	Colors   []color.RGBA
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Vertices) / 3
}

// AddHex emits a fan of 6 triangles around center, each made of corner i,
// corner i+1 and the center.
func (m *Mesh) AddHex(geom *hexmap.Geom, center hexmap.WorldPos, scale float32, c color.RGBA) {
	for i := 0; i < hexmap.DirCount; i++ {
		v := geom.HexCorner(i).Scale(scale)
		next := geom.HexCorner(i + 1).Scale(scale)
		m.Vertices = append(m.Vertices, center.Add(v), center.Add(next), center)
		m.Colors = append(m.Colors, c, c, c)
	}
}

// BuildTileMesh encodes every tile of the map. Tile identities never change,
// so this runs once per map.
func BuildTileMesh(geom *hexmap.Geom, size hexmap.MapSize) (*Mesh, error) {
	m := &Mesh{}
	for _, pos := range size.Positions() {
		c, err := EncodeTile(pos)
		if err != nil {
			return nil, fmt.Errorf("build tile mesh for %dx%d map: %w", size.W, size.H, err)
		}
		m.AddHex(geom, geom.TileToWorld(pos), 1, c)
	}
	return m, nil
}

// BuildUnitMesh encodes every unit node of the scene index. Non-unit nodes are
// skipped silently; unit nodes whose id does not fit a color channel are left out
// and returned in skipped, so the remaining units stay pickable.
func BuildUnitMesh(geom *hexmap.Geom, ix *scene.Index) (m *Mesh, skipped []scene.NodeID) {
	m = &Mesh{}
	for _, n := range ix.Nodes() {
		id, ok := n.ID.UnitID()
		if !ok {
			continue
		}
		c, err := EncodeUnit(id)
		if err != nil {
			skipped = append(skipped, n.ID)
			continue
		}
		m.AddHex(geom, n.Pos.Add(hexmap.WorldPos{Z: unitLift}), unitScale, c)
	}
	return m, skipped
}
