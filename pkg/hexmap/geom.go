// pkg/hexmap/geom.go
package hexmap

import (
	"math"

	"go-hex-tactics/pkg/utils"
)

// DefaultExRadius is the circumradius of a tile in world units.
const DefaultExRadius = 0.5

// WorldPos is a render-space coordinate.
type WorldPos struct {
	X, Y, Z float32
}

func (p WorldPos) Add(o WorldPos) WorldPos {
	return WorldPos{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p WorldPos) Sub(o WorldPos) WorldPos {
	return WorldPos{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

func (p WorldPos) Scale(k float32) WorldPos {
	return WorldPos{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Lerp interpolates linearly from p to o, t=0 yields p and t=1 yields o.
func (p WorldPos) Lerp(o WorldPos, t float32) WorldPos {
	return WorldPos{
		X: utils.Lerp(p.X, o.X, t),
		Y: utils.Lerp(p.Y, o.Y, t),
		Z: utils.Lerp(p.Z, o.Z, t),
	}
}

// Geom converts grid positions into world space for pointy-top hexes.
type Geom struct {
	exRadius float32
	inRadius float32
}

// NewGeom builds the geometry for tiles with the given circumradius.
func NewGeom(exRadius float32) *Geom {
	r := float64(exRadius)
	in := math.Sqrt(r*r - (r/2)*(r/2))
	return &Geom{exRadius: exRadius, inRadius: float32(in)}
}

// DefaultGeom returns the geometry used by the game.
func DefaultGeom() *Geom {
	return NewGeom(DefaultExRadius)
}

// ExRadius is the distance from a tile center to its corners.
func (g *Geom) ExRadius() float32 { return g.exRadius }

// InRadius is the distance from a tile center to the middle of its edges.
func (g *Geom) InRadius() float32 { return g.inRadius }

// TileToWorld returns the center of the tile in world space.
// Even rows are shifted by one inradius, matching the even-row neighbour table.
func (g *Geom) TileToWorld(pos MapPos) WorldPos {
	x := float32(pos.X) * g.inRadius * 2
	y := float32(pos.Y) * g.exRadius * 1.5
	if rowParity(pos.Y) == 0 {
		x += g.inRadius
	}
	return WorldPos{X: x, Y: y}
}

// HexCorner returns the offset of corner i (taken mod 6) from the tile center.
// Corner 0 points at 90 degrees and each next corner is 60 degrees further.
func (g *Geom) HexCorner(i int) WorldPos {
	i %= DirCount
	if i < 0 {
		i += DirCount
	}
	a := math.Pi/2 + 2*math.Pi*float64(i)/DirCount
	return WorldPos{
		X: float32(math.Cos(a)) * g.exRadius,
		Y: float32(math.Sin(a)) * g.exRadius,
	}
}
