// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// AStar finds a shortest path from start to goal, both included.
// Tiles for which passable returns false are never entered; start is always allowed.
// Returns nil when goal cannot be reached.
func AStar(start, goal MapPos, passable func(MapPos) bool) []MapPos {
	if start == goal {
		return []MapPos{start}
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Pos: start, Cost: 0, Parent: nil})
	costSoFar := make(map[MapPos]int)
	costSoFar[start] = 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range Neighbors(current.Pos) {
			if !passable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Pos] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + Distance(neighbor, goal)
				heap.Push(pq, &Node{Pos: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil
}

// PriorityQueue orders A* nodes by estimated total cost.
type PriorityQueue []*Node

type Node struct {
	Pos    MapPos
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []MapPos {
	path := []MapPos{}
	for node != nil {
		path = append([]MapPos{node.Pos}, path...)
		node = node.Parent
	}
	return path
}
