// internal/visualizer/event.go
package visualizer

import (
	"errors"
	"fmt"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
)

// Kind selects the variant of an Event.
type Kind int

const (
	KindMove Kind = iota
	KindEndTurn
	KindCreateUnit
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindEndTurn:
		return "end_turn"
	case KindCreateUnit:
		return "create_unit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Status is the lifecycle stage of an event. It only moves forward.
type Status int

const (
	Pending Status = iota
	Active
	Finished
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var (
	ErrShortPath        = errors.New("move path needs at least two waypoints")
	ErrBadFrameBudget   = errors.New("frames per segment must be positive")
	ErrAlreadyCommitted = errors.New("event already committed")
	ErrNotFinished      = errors.New("event is not finished")
	ErrUnitIDOutOfRange = errors.New("unit id cannot be picked")
)

func validUnitID(id core.UnitID) bool {
	return id >= 0 && id <= core.MaxUnitID
}

// Event is a queued piece of visual work that ends with one commit to the game state.
// Variant data: Move uses Unit and Path, CreateUnit uses Unit, Player and Pos,
// EndTurn uses Player only.
type Event struct {
	Kind   Kind
	Unit   core.UnitID
	Player core.PlayerID
	Path   []hexmap.MapPos
	Pos    hexmap.MapPos

	framesPerSegment int
	frame            int
	status           Status
	committed        bool
}

// NewMove animates a unit along path, spending framesPerSegment frames per step.
// Every pair of consecutive waypoints must be adjacent.
func NewMove(unit core.UnitID, path []hexmap.MapPos, framesPerSegment int) (*Event, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("move unit %d: %w", unit, ErrShortPath)
	}
	if framesPerSegment <= 0 {
		return nil, fmt.Errorf("move unit %d: %w: %d", unit, ErrBadFrameBudget, framesPerSegment)
	}
	for i := 1; i < len(path); i++ {
		if _, err := hexmap.DirBetween(path[i-1], path[i]); err != nil {
			return nil, fmt.Errorf("move unit %d, step %d: %w", unit, i, err)
		}
	}
	p := make([]hexmap.MapPos, len(path))
	copy(p, path)
	return &Event{Kind: KindMove, Unit: unit, Path: p, framesPerSegment: framesPerSegment}, nil
}

// NewEndTurn marks the boundary between two turns in the queue.
func NewEndTurn(player core.PlayerID) *Event {
	return &Event{Kind: KindEndTurn, Player: player}
}

// NewCreateUnit places a new unit once it reaches the head of the queue.
// The id must fit the picking color channel.
func NewCreateUnit(unit core.UnitID, player core.PlayerID, pos hexmap.MapPos) (*Event, error) {
	if !validUnitID(unit) {
		return nil, fmt.Errorf("create unit %d: %w", unit, ErrUnitIDOutOfRange)
	}
	return &Event{Kind: KindCreateUnit, Unit: unit, Player: player, Pos: pos}, nil
}

// FromCore wraps a decided core action into an event.
func FromCore(ce core.CoreEvent, framesPerSegment int) (*Event, error) {
	switch ce.Kind {
	case core.EventMove:
		e, err := NewMove(ce.Unit, ce.Path, framesPerSegment)
		if err != nil {
			return nil, err
		}
		e.Player = ce.Player
		return e, nil
	case core.EventEndTurn:
		return NewEndTurn(ce.Player), nil
	case core.EventCreateUnit:
		return NewCreateUnit(ce.Unit, ce.Player, ce.Pos)
	}
	return nil, fmt.Errorf("unknown core event kind %v", ce.Kind)
}

// ToCore describes the event as a core action.
func (e *Event) ToCore() core.CoreEvent {
	ce := core.CoreEvent{Unit: e.Unit, Player: e.Player, Path: e.Path, Pos: e.Pos}
	switch e.Kind {
	case KindMove:
		ce.Kind = core.EventMove
	case KindEndTurn:
		ce.Kind = core.EventEndTurn
	case KindCreateUnit:
		ce.Kind = core.EventCreateUnit
	}
	return ce
}

func (e *Event) Status() Status { return e.status }
func (e *Event) Frame() int     { return e.frame }

// TotalFrames is the number of Advance calls the event needs.
func (e *Event) TotalFrames() int {
	if e.Kind != KindMove {
		return 0
	}
	return (len(e.Path) - 1) * e.framesPerSegment
}

// IsFinished reports whether the animated phase is over. It never changes the event.
func (e *Event) IsFinished() bool {
	switch e.Kind {
	case KindMove:
		return e.frame >= e.TotalFrames()
	case KindEndTurn, KindCreateUnit:
		return true
	}
	return true
}

func (e *Event) activate() {
	if e.status == Pending {
		e.status = Active
	}
}

// Advance plays one frame of the animation.
func (e *Event) Advance(geom *hexmap.Geom, ix *scene.Index) error {
	if e.status == Finished || e.IsFinished() {
		return nil
	}
	switch e.Kind {
	case KindMove:
		if err := ix.SetPos(scene.UnitNode(e.Unit), e.currentPos(geom)); err != nil {
			return fmt.Errorf("advance move of unit %d: %w", e.Unit, err)
		}
		e.frame++
	case KindEndTurn, KindCreateUnit:
	}
	return nil
}

// currentPos interpolates between the waypoints of the current segment.
func (e *Event) currentPos(geom *hexmap.Geom) hexmap.WorldPos {
	seg := e.frame / e.framesPerSegment
	step := e.frame % e.framesPerSegment
	from := geom.TileToWorld(e.Path[seg])
	to := geom.TileToWorld(e.Path[seg+1])
	return from.Lerp(to, float32(step)/float32(e.framesPerSegment))
}

// Commit applies the event to the scene and the game state. It runs once, after
// the event is finished, and either applies everything or nothing.
func (e *Event) Commit(geom *hexmap.Geom, ix *scene.Index, st *core.State) error {
	if e.committed {
		return fmt.Errorf("commit %v: %w", e.Kind, ErrAlreadyCommitted)
	}
	if !e.IsFinished() {
		return fmt.Errorf("commit %v at frame %d/%d: %w", e.Kind, e.frame, e.TotalFrames(), ErrNotFinished)
	}
	switch e.Kind {
	case KindMove:
		last := e.Path[len(e.Path)-1]
		node := scene.UnitNode(e.Unit)
		if _, ok := st.FindUnit(e.Unit); !ok {
			return fmt.Errorf("commit move of unit %d: %w", e.Unit, core.ErrUnitNotFound)
		}
		if !ix.Has(node) {
			return fmt.Errorf("commit move of unit %d: %w", e.Unit, scene.ErrNodeNotFound)
		}
		if err := ix.SetPos(node, geom.TileToWorld(last)); err != nil {
			return err
		}
		if err := st.SetUnitPos(e.Unit, last); err != nil {
			return err
		}
	case KindCreateUnit:
		if !validUnitID(e.Unit) {
			return fmt.Errorf("commit create of unit %d: %w", e.Unit, ErrUnitIDOutOfRange)
		}
		node := scene.UnitNode(e.Unit)
		if _, ok := st.FindUnit(e.Unit); ok {
			return fmt.Errorf("commit create of unit %d: %w", e.Unit, core.ErrDuplicateUnit)
		}
		if ix.Has(node) {
			return fmt.Errorf("commit create of unit %d: %w", e.Unit, scene.ErrNodeExists)
		}
		if err := ix.Insert(node, geom.TileToWorld(e.Pos)); err != nil {
			return err
		}
		if err := st.AddUnit(core.Unit{ID: e.Unit, PlayerID: e.Player, Pos: e.Pos}); err != nil {
			return err
		}
	case KindEndTurn:
	}
	e.committed = true
	e.status = Finished
	return nil
}
