// internal/app/visualizer.go
package app

import (
	"errors"
	"fmt"
	"image"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/core"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/picker"
	"go-hex-tactics/internal/render"
	"go-hex-tactics/internal/scene"
	"go-hex-tactics/internal/visualizer"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrNoTarget is returned when a command needs a tile and none was picked.
var ErrNoTarget = errors.New("no tile under cursor")

// Visualizer owns everything a session needs and is passed explicitly to
// whoever drives it: the window states or the headless runner.
type Visualizer struct {
	Geom       *hexmap.Geom
	Scene      *scene.Index
	State      *core.State
	Core       *core.Core
	Pipeline   *visualizer.Pipeline
	Dispatcher *event.Dispatcher
	Picker     *picker.Picker
	Camera     *render.Camera

	selected    core.UnitID
	hasSelected bool
	lastPick    picker.Result
	hasPick     bool
	log         *logrus.Entry
}

// New builds a session from a scenario, picking into dev.
func New(sc *defs.Scenario, dev picker.Device) (*Visualizer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	geom := hexmap.NewGeom(config.HexExRadius)
	st := sc.NewState()
	ix := scene.NewIndex()
	if err := scene.Populate(ix, geom, st); err != nil {
		return nil, fmt.Errorf("populate scene: %w", err)
	}
	pk, err := picker.New(geom, dev, st.MapSize)
	if err != nil {
		return nil, err
	}
	dispatcher := event.NewDispatcher()
	v := &Visualizer{
		Geom:       geom,
		Scene:      ix,
		State:      st,
		Core:       core.NewCore(st, sc.Players),
		Pipeline:   visualizer.NewPipeline(geom, ix, st, dispatcher),
		Dispatcher: dispatcher,
		Picker:     pk,
		Camera:     render.NewCamera(),
		log:        logger.For("visualizer"),
	}
	v.Camera.LookAt(v.MapCenter())

	dispatcher.SubscribeAll(&visualizerListener{v: v}, event.Committed...)
	dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		v.log.WithField("event", e.Type).Info("committed")
	}), event.Committed...)

	return v, nil
}

// MapCenter is the world point halfway between the first and the last tile.
func (v *Visualizer) MapCenter() hexmap.WorldPos {
	size := v.State.MapSize
	first := v.Geom.TileToWorld(hexmap.MapPos{})
	last := v.Geom.TileToWorld(hexmap.MapPos{X: size.W - 1, Y: size.H - 1})
	return first.Lerp(last, 0.5)
}

// Busy reports whether events are still being shown. Player input is ignored
// meanwhile, so decisions are always taken against a fully committed state.
func (v *Visualizer) Busy() bool {
	return !v.Pipeline.Idle()
}

// Update advances the pipeline by one frame. An error means the scene and the
// state disagree and the session cannot continue.
func (v *Visualizer) Update() error {
	return v.Pipeline.Tick()
}

// Resize switches picking to a device matching the new window size.
func (v *Visualizer) Resize(dev picker.Device) {
	v.Picker.SetDevice(dev)
}

// Pick resolves the pixel under mouse and remembers the result.
func (v *Visualizer) Pick(mouse image.Point) picker.Result {
	res := v.Picker.Pick(v.Camera, v.Scene, mouse)
	v.lastPick, v.hasPick = res, true
	return res
}

// LastPick returns the result of the most recent pick.
func (v *Visualizer) LastPick() (picker.Result, bool) {
	return v.lastPick, v.hasPick
}

// Selected returns the unit the player has selected.
func (v *Visualizer) Selected() (core.UnitID, bool) {
	return v.selected, v.hasSelected
}

// selectUnit selects id and puts the marker node on its tile.
func (v *Visualizer) selectUnit(id core.UnitID) {
	u, ok := v.State.FindUnit(id)
	if !ok {
		return
	}
	v.selected, v.hasSelected = id, true
	pos := v.Geom.TileToWorld(u.Pos)
	var err error
	if v.Scene.Has(scene.MarkerNode) {
		err = v.Scene.SetPos(scene.MarkerNode, pos)
	} else {
		err = v.Scene.Insert(scene.MarkerNode, pos)
	}
	if err != nil {
		v.log.WithError(err).WithField("unit", id).Error("selection marker not placed")
	}
}

func (v *Visualizer) deselect() {
	v.hasSelected = false
	v.Scene.Remove(scene.MarkerNode)
}

// Click handles a left click: own units get selected, a tile moves the
// selected unit there, the background clears the selection.
func (v *Visualizer) Click(mouse image.Point) error {
	if v.Busy() {
		v.log.Debug("click ignored while events are shown")
		return nil
	}
	res := v.Pick(mouse)
	switch res.Kind {
	case picker.KindUnit:
		u, ok := v.State.FindUnit(res.Unit)
		if !ok {
			return fmt.Errorf("picked unit %d: %w", res.Unit, core.ErrUnitNotFound)
		}
		if u.PlayerID != v.Core.CurrentPlayer() {
			v.log.WithField("unit", u.ID).Warn("unit belongs to another player")
			return nil
		}
		v.selectUnit(u.ID)
	case picker.KindTile:
		if !v.hasSelected {
			return nil
		}
		return v.decide(v.Core.MoveUnit(v.selected, res.Pos))
	default:
		v.deselect()
	}
	return nil
}

// CreateUnitAt creates a unit for the current player on the tile under mouse.
func (v *Visualizer) CreateUnitAt(mouse image.Point) error {
	if v.Busy() {
		return nil
	}
	res := v.Pick(mouse)
	if res.Kind != picker.KindTile {
		v.log.WithError(ErrNoTarget).Warn("create unit rejected")
		return nil
	}
	return v.decide(v.Core.CreateUnit(res.Pos))
}

// EndTurn passes control to the next player.
func (v *Visualizer) EndTurn() error {
	if v.Busy() {
		return nil
	}
	return v.submit(v.Core.EndTurn())
}

// decide queues an accepted core decision. Rejections are the player's
// mistakes and are only logged.
func (v *Visualizer) decide(ce core.CoreEvent, err error) error {
	if err != nil {
		v.log.WithError(err).Warn("command rejected")
		return nil
	}
	return v.submit(ce)
}

func (v *Visualizer) submit(ce core.CoreEvent) error {
	e, err := visualizer.FromCore(ce, config.FramesPerSegment)
	if err != nil {
		return fmt.Errorf("visualize %v: %w", ce.Kind, err)
	}
	v.Pipeline.Push(e)
	return nil
}

// Apply runs one scripted command. Unlike interactive input, rejections are
// returned so a broken script stops the run.
func (v *Visualizer) Apply(cmd defs.CommandDef) error {
	var (
		ce  core.CoreEvent
		err error
	)
	switch cmd.Op {
	case "move":
		ce, err = v.Core.MoveUnit(core.UnitID(cmd.Unit), hexmap.MapPos{X: cmd.X, Y: cmd.Y})
	case "create":
		ce, err = v.Core.CreateUnit(hexmap.MapPos{X: cmd.X, Y: cmd.Y})
	case "end_turn":
		ce = v.Core.EndTurn()
	default:
		return fmt.Errorf("%w: unknown op %q", defs.ErrInvalidScenario, cmd.Op)
	}
	if err != nil {
		return err
	}
	return v.submit(ce)
}

// ActivePath returns the path of the move being shown, if any.
func (v *Visualizer) ActivePath() []hexmap.MapPos {
	if e, ok := v.Pipeline.Active(); ok && e.Kind == visualizer.KindMove {
		return e.Path
	}
	return nil
}

// PickReport describes the last pick for the clipboard.
func (v *Visualizer) PickReport() string {
	if !v.hasPick {
		return "no pick yet"
	}
	res := v.lastPick
	if res.Kind == picker.KindUnit {
		if u, ok := v.State.FindUnit(res.Unit); ok {
			return fmt.Sprintf("%v: %v", res, u)
		}
	}
	return res.String()
}

// visualizerListener keeps the selection in line with committed events.
type visualizerListener struct {
	v *Visualizer
}

func (l *visualizerListener) OnEvent(e event.Event) {
	ce, ok := e.Data.(core.CoreEvent)
	if !ok {
		return
	}
	switch e.Type {
	case event.UnitMoved:
		if id, ok := l.v.Selected(); ok && id == ce.Unit {
			l.v.selectUnit(id)
		}
	case event.UnitCreated:
		if ce.Player == l.v.Core.CurrentPlayer() {
			l.v.selectUnit(ce.Unit)
		}
	case event.TurnEnded:
		l.v.deselect()
	}
}
