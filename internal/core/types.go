// internal/core/types.go
package core

import (
	"errors"
	"fmt"

	"go-hex-tactics/pkg/hexmap"
)

// UnitID identifies a unit for its whole lifetime. Ids are assigned before any
// event that creates the unit is constructed.
type UnitID int

// PlayerID identifies the side a unit belongs to.
type PlayerID int

// Unit is the authoritative record of a unit.
type Unit struct {
	ID       UnitID        `json:"id"`
	PlayerID PlayerID      `json:"player"`
	Pos      hexmap.MapPos `json:"pos"`
}

func (u Unit) String() string {
	return fmt.Sprintf("unit#%d(p%d)@%v", u.ID, u.PlayerID, u.Pos)
}

var (
	ErrDuplicateUnit = errors.New("unit id already exists")
	ErrUnitNotFound  = errors.New("unit not found")
	ErrNoFreeUnitID  = errors.New("no free unit id")
	ErrTileOccupied  = errors.New("tile is occupied")
	ErrOutsideMap    = errors.New("position is outside the map")
	ErrNoPath        = errors.New("no path to destination")
	ErrNotYourUnit   = errors.New("unit belongs to another player")
)
