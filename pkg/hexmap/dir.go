// pkg/hexmap/dir.go
package hexmap

import (
	"errors"
	"fmt"
)

// Dir is one of the six directions from a hex to its neighbours.
type Dir int

const (
	NorthEast Dir = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

// DirCount is the number of hex directions.
const DirCount = 6

var (
	ErrDirOutOfRange = errors.New("direction out of range")
	ErrNotAdjacent   = errors.New("positions are not adjacent")
)

// AllDirs lists the directions in their integer order.
var AllDirs = [DirCount]Dir{NorthEast, East, SouthEast, SouthWest, West, NorthWest}

var dirNames = [DirCount]string{"NorthEast", "East", "SouthEast", "SouthWest", "West", "NorthWest"}

// dirToPosDiff holds neighbour offsets for even rows (index 0) and odd rows (index 1).
// Even rows are the shifted ones, see Geom.TileToWorld.
var dirToPosDiff = [2][DirCount]MapPos{
	{
		{X: 1, Y: -1},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
	},
	{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: 0},
		{X: -1, Y: -1},
	},
}

// rowParity returns 0 for even rows and 1 for odd rows, negative rows included.
// Both the neighbour tables and the world layout key off this value.
func rowParity(y int) int {
	return y & 1
}

// DirFromInt converts n in [0, 6) to a direction.
func DirFromInt(n int) (Dir, error) {
	if n < 0 || n >= DirCount {
		return 0, fmt.Errorf("%w: %d", ErrDirOutOfRange, n)
	}
	return AllDirs[n], nil
}

// ToInt returns the direction's index in [0, 6).
func (d Dir) ToInt() int {
	return int(d)
}

func (d Dir) String() string {
	if d < 0 || int(d) >= DirCount {
		return fmt.Sprintf("Dir(%d)", int(d))
	}
	return dirNames[d]
}

// Neighbor returns the tile adjacent to pos in direction dir.
// dir must be one of AllDirs.
func Neighbor(pos MapPos, dir Dir) MapPos {
	return pos.Add(dirToPosDiff[rowParity(pos.Y)][dir.ToInt()])
}

// Neighbors returns all six neighbours of pos, indexed by direction.
func Neighbors(pos MapPos) [DirCount]MapPos {
	var out [DirCount]MapPos
	for i, d := range AllDirs {
		out[i] = Neighbor(pos, d)
	}
	return out
}

// DirBetween returns the direction leading from one tile to an adjacent one.
func DirBetween(from, to MapPos) (Dir, error) {
	diff := to.Sub(from)
	for i, d := range dirToPosDiff[rowParity(from.Y)] {
		if diff == d {
			return AllDirs[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, from, to)
}

// IsAdjacent reports whether to is one of the neighbours of from.
func IsAdjacent(from, to MapPos) bool {
	_, err := DirBetween(from, to)
	return err == nil
}
