// internal/defs/scenario.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/core"
	"go-hex-tactics/pkg/hexmap"
)

// UnitDef places a unit at scenario start.
type UnitDef struct {
	ID     int `json:"id"`
	Player int `json:"player"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// CommandDef is a scripted action for the headless runner.
// Op is one of "move", "create" or "end_turn".
type CommandDef struct {
	Op   string `json:"op"`
	Unit int    `json:"unit,omitempty"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
}

// Scenario describes the map, the starting units and optional scripted commands.
type Scenario struct {
	Map struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"map"`
	Players  int          `json:"players"`
	Units    []UnitDef    `json:"units"`
	Commands []CommandDef `json:"commands"`
}

var ErrInvalidScenario = errors.New("invalid scenario")

// DefaultScenario is used when no scenario file is given.
func DefaultScenario() *Scenario {
	s := &Scenario{Players: config.Players}
	s.Map.W = config.MapWidth
	s.Map.H = config.MapHeight
	s.Units = []UnitDef{
		{ID: 0, Player: 0, X: 1, Y: 1},
		{ID: 1, Player: 0, X: 2, Y: 3},
		{ID: 2, Player: 1, X: config.MapWidth - 2, Y: config.MapHeight - 2},
	}
	return s
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(file, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if s.Players == 0 {
		s.Players = config.Players
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// MapSize returns the scenario's map dimensions.
func (s *Scenario) MapSize() hexmap.MapSize {
	return hexmap.MapSize{W: s.Map.W, H: s.Map.H}
}

// Validate checks map bounds, unit placement and id uniqueness.
func (s *Scenario) Validate() error {
	size := s.MapSize()
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidScenario, size.W, size.H)
	}
	// Tile coordinates are encoded in one byte each for picking.
	if size.W > 256 || size.H > 256 {
		return fmt.Errorf("%w: map size %dx%d exceeds 256x256", ErrInvalidScenario, size.W, size.H)
	}
	if s.Players < 1 {
		return fmt.Errorf("%w: %d players", ErrInvalidScenario, s.Players)
	}
	ids := make(map[int]bool)
	tiles := make(map[hexmap.MapPos]bool)
	for _, u := range s.Units {
		pos := hexmap.MapPos{X: u.X, Y: u.Y}
		switch {
		case u.ID < 0 || core.UnitID(u.ID) > core.MaxUnitID:
			return fmt.Errorf("%w: unit id %d out of range", ErrInvalidScenario, u.ID)
		case ids[u.ID]:
			return fmt.Errorf("%w: duplicate unit id %d", ErrInvalidScenario, u.ID)
		case !size.Contains(pos):
			return fmt.Errorf("%w: unit %d outside the map at %v", ErrInvalidScenario, u.ID, pos)
		case tiles[pos]:
			return fmt.Errorf("%w: two units on %v", ErrInvalidScenario, pos)
		case u.Player < 0 || u.Player >= s.Players:
			return fmt.Errorf("%w: unit %d has unknown player %d", ErrInvalidScenario, u.ID, u.Player)
		}
		ids[u.ID] = true
		tiles[pos] = true
	}
	for i, c := range s.Commands {
		switch c.Op {
		case "move", "create", "end_turn":
		default:
			return fmt.Errorf("%w: command %d has unknown op %q", ErrInvalidScenario, i, c.Op)
		}
	}
	return nil
}

// NewState builds the authoritative state the scenario starts from.
func (s *Scenario) NewState() *core.State {
	st := core.NewState(s.MapSize())
	for _, u := range s.Units {
		st.Units = append(st.Units, core.Unit{
			ID:       core.UnitID(u.ID),
			PlayerID: core.PlayerID(u.Player),
			Pos:      hexmap.MapPos{X: u.X, Y: u.Y},
		})
	}
	return st
}
