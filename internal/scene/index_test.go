package scene

import (
	"errors"
	"testing"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/pkg/hexmap"
)

func TestIndex_InsertGetSetPos(t *testing.T) {
	ix := NewIndex()
	p := hexmap.WorldPos{X: 1, Y: 2}
	if err := ix.Insert(3, p); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := ix.Insert(3, p); !errors.Is(err, ErrNodeExists) {
		t.Fatalf("second Insert err = %v, want ErrNodeExists", err)
	}
	n, ok := ix.Get(3)
	if !ok || n.Pos != p {
		t.Fatalf("Get = %+v, %v", n, ok)
	}
	q := hexmap.WorldPos{X: 5}
	if err := ix.SetPos(3, q); err != nil {
		t.Fatalf("SetPos: %v", err)
	}
	if n, _ := ix.Get(3); n.Pos != q {
		t.Fatalf("pos after SetPos = %+v", n.Pos)
	}
	if err := ix.SetPos(4, q); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("SetPos missing err = %v", err)
	}
}

func TestIndex_VersionTracksMutations(t *testing.T) {
	ix := NewIndex()
	v0 := ix.Version()
	_ = ix.Insert(1, hexmap.WorldPos{})
	v1 := ix.Version()
	if v1 == v0 {
		t.Fatal("Insert did not change version")
	}
	ix.Get(1)
	ix.Nodes()
	if ix.Version() != v1 {
		t.Fatal("reads changed version")
	}
	ix.Remove(1)
	if ix.Version() == v1 {
		t.Fatal("Remove did not change version")
	}
	if ix.Remove(1) {
		t.Fatal("removing twice reported success")
	}
}

func TestIndex_NodesSorted(t *testing.T) {
	ix := NewIndex()
	for _, id := range []NodeID{MarkerNode, 5, 2, 9} {
		_ = ix.Insert(id, hexmap.WorldPos{})
	}
	nodes := ix.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].ID >= nodes[i].ID {
			t.Fatalf("nodes not sorted: %v", nodes)
		}
	}
}

func TestNodeID_UnitRange(t *testing.T) {
	if !UnitNode(7).IsUnit() {
		t.Fatal("unit node 7 not a unit")
	}
	if MarkerNode.IsUnit() {
		t.Fatal("marker node reported as unit")
	}
	if id, ok := NodeID(999).UnitID(); !ok || id != core.UnitID(999) {
		t.Fatalf("UnitID(999) = %d, %v", id, ok)
	}
}

func TestPopulate(t *testing.T) {
	g := hexmap.DefaultGeom()
	st := core.NewState(hexmap.MapSize{W: 4, H: 4})
	st.Units = []core.Unit{{ID: 1, Pos: hexmap.MapPos{X: 2, Y: 3}}}
	ix := NewIndex()
	if err := Populate(ix, g, st); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	n, ok := ix.Get(UnitNode(1))
	if !ok || n.Pos != g.TileToWorld(hexmap.MapPos{X: 2, Y: 3}) {
		t.Fatalf("node = %+v, %v", n, ok)
	}
}
