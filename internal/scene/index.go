// internal/scene/index.go
package scene

import (
	"errors"
	"fmt"
	"sort"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/pkg/hexmap"
)

// NodeID keys the scene index. Ids below MaxUnitNodeID are units, the rest are
// reserved for special nodes.
type NodeID int

const (
	MaxUnitNodeID NodeID = 1000
	// MarkerNode is the selection marker.
	MarkerNode NodeID = MaxUnitNodeID + iota
)

var (
	ErrNodeExists   = errors.New("scene node already exists")
	ErrNodeNotFound = errors.New("scene node not found")
)

// UnitNode returns the node id of a unit.
func UnitNode(id core.UnitID) NodeID {
	return NodeID(id)
}

// UnitID returns the unit behind the node, if the node is a unit.
func (id NodeID) UnitID() (core.UnitID, bool) {
	if id < 0 || id >= MaxUnitNodeID {
		return 0, false
	}
	return core.UnitID(id), true
}

// IsUnit reports whether the node represents a unit.
func (id NodeID) IsUnit() bool {
	_, ok := id.UnitID()
	return ok
}

// Node is a visual entity at its current render position.
type Node struct {
	ID  NodeID
	Pos hexmap.WorldPos
}

// Index maps node ids to their current render positions.
type Index struct {
	nodes   map[NodeID]*Node
	version uint64
}

func NewIndex() *Index {
	return &Index{nodes: make(map[NodeID]*Node)}
}

// Version changes on every mutation of the index.
func (ix *Index) Version() uint64 {
	return ix.version
}

func (ix *Index) Len() int {
	return len(ix.nodes)
}

// Insert adds a new node.
func (ix *Index) Insert(id NodeID, pos hexmap.WorldPos) error {
	if _, exists := ix.nodes[id]; exists {
		return fmt.Errorf("insert node %d: %w", id, ErrNodeExists)
	}
	ix.nodes[id] = &Node{ID: id, Pos: pos}
	ix.version++
	return nil
}

func (ix *Index) Has(id NodeID) bool {
	_, ok := ix.nodes[id]
	return ok
}

func (ix *Index) Get(id NodeID) (Node, bool) {
	n, ok := ix.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// SetPos moves an existing node.
func (ix *Index) SetPos(id NodeID, pos hexmap.WorldPos) error {
	n, ok := ix.nodes[id]
	if !ok {
		return fmt.Errorf("set node %d: %w", id, ErrNodeNotFound)
	}
	n.Pos = pos
	ix.version++
	return nil
}

// Remove deletes a node and reports whether it existed.
func (ix *Index) Remove(id NodeID) bool {
	if _, ok := ix.nodes[id]; !ok {
		return false
	}
	delete(ix.nodes, id)
	ix.version++
	return true
}

// Nodes returns a snapshot of all nodes ordered by id.
func (ix *Index) Nodes() []Node {
	out := make([]Node, 0, len(ix.nodes))
	for _, n := range ix.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Populate inserts a node for every unit of the state at its tile center.
func Populate(ix *Index, geom *hexmap.Geom, st *core.State) error {
	for _, u := range st.Units {
		if err := ix.Insert(UnitNode(u.ID), geom.TileToWorld(u.Pos)); err != nil {
			return err
		}
	}
	return nil
}
