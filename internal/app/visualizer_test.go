package app

import (
	"errors"
	"image"
	"strings"
	"testing"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/picker"
	"go-hex-tactics/internal/render"
	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
)

const flushLimit = 10000

func newTestVisualizer(t *testing.T) *Visualizer {
	t.Helper()
	sc := &defs.Scenario{Players: 2}
	sc.Map.W, sc.Map.H = 5, 5
	sc.Units = []defs.UnitDef{
		{ID: 0, Player: 0, X: 1, Y: 1},
		{ID: 1, Player: 1, X: 3, Y: 3},
	}
	v, err := New(sc, render.NewSoftDevice(800, 600))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func screenPos(v *Visualizer, pos hexmap.MapPos) image.Point {
	w, h := v.Picker.Device().Size()
	x, y, _ := v.Camera.Project(v.Geom.TileToWorld(pos), w, h)
	return image.Pt(int(x), int(y))
}

func flush(t *testing.T, v *Visualizer) {
	t.Helper()
	if _, err := v.Pipeline.Flush(flushLimit); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if v.Busy() {
		t.Fatal("pipeline still busy after flush")
	}
}

func TestNew_RejectsInvalidScenario(t *testing.T) {
	sc := &defs.Scenario{Players: 1}
	sc.Map.W, sc.Map.H = 2, 2
	sc.Units = []defs.UnitDef{{ID: 0, X: 5, Y: 5}}
	if _, err := New(sc, render.NewSoftDevice(10, 10)); !errors.Is(err, defs.ErrInvalidScenario) {
		t.Fatalf("err = %v, want ErrInvalidScenario", err)
	}
}

func TestClick_SelectsOwnUnit(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if id, ok := v.Selected(); !ok || id != 0 {
		t.Fatalf("selected = %d,%v, want 0", id, ok)
	}
	n, ok := v.Scene.Get(scene.MarkerNode)
	if !ok || n.Pos != v.Geom.TileToWorld(hexmap.MapPos{X: 1, Y: 1}) {
		t.Fatalf("marker = %v,%v", n, ok)
	}
}

func TestClick_IgnoresOtherPlayersUnit(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 3, Y: 3})); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if _, ok := v.Selected(); ok {
		t.Fatal("enemy unit got selected")
	}
}

func TestClick_MovesSelectedUnit(t *testing.T) {
	v := newTestVisualizer(t)
	dest := hexmap.MapPos{X: 1, Y: 3}
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := v.Click(screenPos(v, dest)); err != nil {
		t.Fatalf("move: %v", err)
	}
	if !v.Busy() {
		t.Fatal("move was not queued")
	}
	if path := v.ActivePath(); path != nil {
		t.Fatal("path highlighted before the move started")
	}
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if path := v.ActivePath(); len(path) < 2 || path[len(path)-1] != dest {
		t.Fatalf("highlighted path = %v", path)
	}

	// Input is locked until the move is shown.
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 0, Y: 0})); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if v.Pipeline.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", v.Pipeline.Len())
	}

	u, _ := v.State.FindUnit(0)
	if u.Pos != (hexmap.MapPos{X: 1, Y: 1}) {
		t.Fatalf("state changed before commit: %v", u.Pos)
	}
	flush(t, v)
	if u, _ := v.State.FindUnit(0); u.Pos != dest {
		t.Fatalf("unit at %v, want %v", u.Pos, dest)
	}
	n, _ := v.Scene.Get(scene.UnitNode(0))
	if n.Pos != v.Geom.TileToWorld(dest) {
		t.Fatalf("node at %v, want %v", n.Pos, v.Geom.TileToWorld(dest))
	}
	if res := v.Pick(screenPos(v, dest)); res != picker.UnitResult(0) {
		t.Fatalf("pick on destination = %v", res)
	}
	if m, _ := v.Scene.Get(scene.MarkerNode); m.Pos != v.Geom.TileToWorld(dest) {
		t.Fatalf("marker did not follow the unit: %v", m.Pos)
	}
}

func TestClick_RejectedMoveIsNotFatal(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("select: %v", err)
	}
	// Clicking the enemy would pick the unit, so ask the core for its tile directly.
	if err := v.decide(v.Core.MoveUnit(0, hexmap.MapPos{X: 3, Y: 3})); err != nil {
		t.Fatalf("decide: %v", err)
	}
	if v.Busy() {
		t.Fatal("rejected move was queued")
	}
}

func TestEndTurn_ClearsSelection(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := v.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	flush(t, v)
	if v.Core.CurrentPlayer() != 1 {
		t.Fatalf("current player = %d, want 1", v.Core.CurrentPlayer())
	}
	if _, ok := v.Selected(); ok {
		t.Fatal("selection survived the end of turn")
	}
	if v.Scene.Has(scene.MarkerNode) {
		t.Fatal("marker survived the end of turn")
	}
}

func TestCreateUnitAt_SelectsNewUnit(t *testing.T) {
	v := newTestVisualizer(t)
	pos := hexmap.MapPos{X: 0, Y: 4}
	if err := v.CreateUnitAt(screenPos(v, pos)); err != nil {
		t.Fatalf("CreateUnitAt: %v", err)
	}
	flush(t, v)
	u, ok := v.State.UnitAt(pos)
	if !ok {
		t.Fatalf("no unit on %v", pos)
	}
	if u.ID != 2 || u.PlayerID != 0 {
		t.Fatalf("created %v", u)
	}
	if !v.Scene.Has(scene.UnitNode(2)) {
		t.Fatal("no scene node for the new unit")
	}
	if id, ok := v.Selected(); !ok || id != 2 {
		t.Fatalf("selected = %d,%v, want 2", id, ok)
	}
	if m, _ := v.Scene.Get(scene.MarkerNode); m.Pos != v.Geom.TileToWorld(pos) {
		t.Fatalf("marker at %v, want the new unit's tile", m.Pos)
	}
}

func TestSelect_MovesExistingMarker(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := v.CreateUnitAt(screenPos(v, hexmap.MapPos{X: 0, Y: 4})); err != nil {
		t.Fatalf("CreateUnitAt: %v", err)
	}
	flush(t, v)
	if err := v.Click(screenPos(v, hexmap.MapPos{X: 1, Y: 1})); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	nodes := 0
	for _, n := range v.Scene.Nodes() {
		if n.ID == scene.MarkerNode {
			nodes++
			if n.Pos != v.Geom.TileToWorld(hexmap.MapPos{X: 1, Y: 1}) {
				t.Fatalf("marker at %v", n.Pos)
			}
		}
	}
	if nodes != 1 {
		t.Fatalf("%d marker nodes, want 1", nodes)
	}
}

func TestCreateUnitAt_NeedsTile(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.CreateUnitAt(image.Pt(0, 0)); err != nil {
		t.Fatalf("CreateUnitAt: %v", err)
	}
	if v.Busy() {
		t.Fatal("unit created without a tile")
	}
}

func TestApply(t *testing.T) {
	v := newTestVisualizer(t)
	cmds := []defs.CommandDef{
		{Op: "move", Unit: 0, X: 2, Y: 1},
		{Op: "end_turn"},
		{Op: "create", X: 4, Y: 4},
	}
	for _, c := range cmds {
		if err := v.Apply(c); err != nil {
			t.Fatalf("Apply(%+v): %v", c, err)
		}
		flush(t, v)
	}
	if u, _ := v.State.FindUnit(0); u.Pos != (hexmap.MapPos{X: 2, Y: 1}) {
		t.Errorf("unit 0 at %v", u.Pos)
	}
	u, ok := v.State.UnitAt(hexmap.MapPos{X: 4, Y: 4})
	if !ok || u.PlayerID != 1 {
		t.Errorf("created unit = %v, %v", u, ok)
	}
}

func TestApply_Errors(t *testing.T) {
	v := newTestVisualizer(t)
	if err := v.Apply(defs.CommandDef{Op: "fly"}); !errors.Is(err, defs.ErrInvalidScenario) {
		t.Errorf("unknown op: %v", err)
	}
	if err := v.Apply(defs.CommandDef{Op: "move", Unit: 1, X: 0, Y: 0}); !errors.Is(err, core.ErrNotYourUnit) {
		t.Errorf("foreign unit: %v", err)
	}
	if v.Busy() {
		t.Error("failed command was queued")
	}
}

func TestPickReport(t *testing.T) {
	v := newTestVisualizer(t)
	if got := v.PickReport(); got != "no pick yet" {
		t.Fatalf("report = %q", got)
	}
	v.Pick(screenPos(v, hexmap.MapPos{X: 1, Y: 1}))
	if got := v.PickReport(); !strings.Contains(got, "unit") {
		t.Fatalf("report = %q", got)
	}
}
