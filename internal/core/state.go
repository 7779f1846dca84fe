// internal/core/state.go
package core

import (
	"fmt"

	"go-hex-tactics/pkg/hexmap"
)

// State is the authoritative game state. Only committed events write to it.
type State struct {
	MapSize hexmap.MapSize
	Units   []Unit
}

// NewState returns an empty state for a map of the given size.
func NewState(size hexmap.MapSize) *State {
	return &State{MapSize: size}
}

// FindUnit returns a pointer to the unit with the given id.
func (s *State) FindUnit(id UnitID) (*Unit, bool) {
	for i := range s.Units {
		if s.Units[i].ID == id {
			return &s.Units[i], true
		}
	}
	return nil, false
}

// UnitAt returns the unit standing on pos.
func (s *State) UnitAt(pos hexmap.MapPos) (*Unit, bool) {
	for i := range s.Units {
		if s.Units[i].Pos == pos {
			return &s.Units[i], true
		}
	}
	return nil, false
}

// AddUnit appends a new unit record.
func (s *State) AddUnit(u Unit) error {
	if _, ok := s.FindUnit(u.ID); ok {
		return fmt.Errorf("add unit %d: %w", u.ID, ErrDuplicateUnit)
	}
	s.Units = append(s.Units, u)
	return nil
}

// SetUnitPos moves a unit to pos.
func (s *State) SetUnitPos(id UnitID, pos hexmap.MapPos) error {
	u, ok := s.FindUnit(id)
	if !ok {
		return fmt.Errorf("move unit %d: %w", id, ErrUnitNotFound)
	}
	u.Pos = pos
	return nil
}
