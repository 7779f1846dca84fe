// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"go-hex-tactics/pkg/utils"
)

// MapPos addresses a tile on an offset-coordinate hex grid (column X, row Y).
type MapPos struct {
	X, Y int
}

// Add returns the sum of two positions.
func (p MapPos) Add(other MapPos) MapPos {
	return MapPos{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two positions.
func (p MapPos) Sub(other MapPos) MapPos {
	return MapPos{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p MapPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// toAxial converts an offset position to axial coordinates.
// Even rows are shifted right, so the row's parity bit is added before halving.
func (p MapPos) toAxial() (q, r int) {
	r = p.Y
	q = p.X - (p.Y+rowParity(p.Y))/2
	return q, r
}

// Distance returns the number of steps between two tiles.
// It is only used as a search heuristic; adjacency always goes through the neighbour tables.
func Distance(a, b MapPos) int {
	aq, ar := a.toAxial()
	bq, br := b.toAxial()
	dq := aq - bq
	dr := ar - br
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// MapSize is the width and height of a rectangular map.
type MapSize struct {
	W, H int
}

// Contains reports whether pos lies inside the map.
func (s MapSize) Contains(pos MapPos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < s.W && pos.Y < s.H
}

// Positions returns every tile of the map in row-major order.
func (s MapSize) Positions() []MapPos {
	if s.W <= 0 || s.H <= 0 {
		return nil
	}
	out := make([]MapPos, 0, s.W*s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			out = append(out, MapPos{X: x, Y: y})
		}
	}
	return out
}
