// internal/core/core.go
package core

import (
	"fmt"

	"go-hex-tactics/pkg/hexmap"
)

// MaxUnitID is the largest id a unit may get: unit ids are encoded in a single
// byte of the picking color.
const MaxUnitID UnitID = 255

// EventKind tells which action a CoreEvent describes.
type EventKind int

const (
	EventMove EventKind = iota
	EventEndTurn
	EventCreateUnit
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventEndTurn:
		return "end_turn"
	case EventCreateUnit:
		return "create_unit"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// CoreEvent is an action that has been decided but not applied yet.
// The visualizer animates it and commits it to State afterwards.
type CoreEvent struct {
	Kind   EventKind
	Unit   UnitID
	Player PlayerID
	Path   []hexmap.MapPos
	Pos    hexmap.MapPos
}

// Core decides actions against the authoritative state. It never writes units itself.
type Core struct {
	state         *State
	players       int
	currentPlayer PlayerID
	turn          int
	nextUnitID    UnitID
}

// NewCore creates a decider for the given state and number of players.
func NewCore(state *State, players int) *Core {
	if players < 1 {
		players = 1
	}
	c := &Core{state: state, players: players, turn: 1}
	for _, u := range state.Units {
		if u.ID >= c.nextUnitID {
			c.nextUnitID = u.ID + 1
		}
	}
	return c
}

func (c *Core) State() *State           { return c.state }
func (c *Core) CurrentPlayer() PlayerID { return c.currentPlayer }
func (c *Core) Turn() int               { return c.turn }

func (c *Core) isFree(p hexmap.MapPos) bool {
	_, taken := c.state.UnitAt(p)
	return !taken
}

// MoveUnit plans a path for the unit to dest.
func (c *Core) MoveUnit(id UnitID, dest hexmap.MapPos) (CoreEvent, error) {
	u, ok := c.state.FindUnit(id)
	if !ok {
		return CoreEvent{}, fmt.Errorf("move unit %d: %w", id, ErrUnitNotFound)
	}
	if u.PlayerID != c.currentPlayer {
		return CoreEvent{}, fmt.Errorf("move unit %d: %w", id, ErrNotYourUnit)
	}
	if !c.state.MapSize.Contains(dest) {
		return CoreEvent{}, fmt.Errorf("move unit %d to %v: %w", id, dest, ErrOutsideMap)
	}
	if !c.isFree(dest) {
		return CoreEvent{}, fmt.Errorf("move unit %d to %v: %w", id, dest, ErrTileOccupied)
	}
	passable := func(p hexmap.MapPos) bool {
		return c.state.MapSize.Contains(p) && c.isFree(p)
	}
	path := hexmap.AStar(u.Pos, dest, passable)
	if len(path) < 2 {
		return CoreEvent{}, fmt.Errorf("move unit %d to %v: %w", id, dest, ErrNoPath)
	}
	return CoreEvent{Kind: EventMove, Unit: id, Player: u.PlayerID, Path: path}, nil
}

// CreateUnit allocates a new unit id for the current player at pos.
func (c *Core) CreateUnit(pos hexmap.MapPos) (CoreEvent, error) {
	if !c.state.MapSize.Contains(pos) {
		return CoreEvent{}, fmt.Errorf("create unit at %v: %w", pos, ErrOutsideMap)
	}
	if !c.isFree(pos) {
		return CoreEvent{}, fmt.Errorf("create unit at %v: %w", pos, ErrTileOccupied)
	}
	if c.nextUnitID > MaxUnitID {
		return CoreEvent{}, fmt.Errorf("create unit at %v: %w", pos, ErrNoFreeUnitID)
	}
	id := c.nextUnitID
	c.nextUnitID++
	return CoreEvent{Kind: EventCreateUnit, Unit: id, Player: c.currentPlayer, Pos: pos}, nil
}

// EndTurn passes control to the next player.
func (c *Core) EndTurn() CoreEvent {
	ended := c.currentPlayer
	c.currentPlayer = PlayerID((int(c.currentPlayer) + 1) % c.players)
	if c.currentPlayer == 0 {
		c.turn++
	}
	return CoreEvent{Kind: EventEndTurn, Player: ended}
}
