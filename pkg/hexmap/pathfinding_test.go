package hexmap

import "testing"

func TestAStar_PathIsContiguous(t *testing.T) {
	size := MapSize{W: 8, H: 8}
	blocked := map[MapPos]bool{{3, 2}: true, {3, 3}: true, {3, 4}: true}
	passable := func(p MapPos) bool { return size.Contains(p) && !blocked[p] }

	start, goal := MapPos{1, 3}, MapPos{6, 3}
	path := AStar(start, goal, passable)
	if len(path) == 0 {
		t.Fatal("no path found")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path endpoints = %v..%v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if !IsAdjacent(path[i-1], path[i]) {
			t.Fatalf("step %d: %v -> %v is not adjacent", i, path[i-1], path[i])
		}
		if blocked[path[i]] {
			t.Fatalf("path enters blocked tile %v", path[i])
		}
	}
}

func TestAStar_Unreachable(t *testing.T) {
	size := MapSize{W: 4, H: 4}
	goal := MapPos{3, 3}
	passable := func(p MapPos) bool { return size.Contains(p) && p != goal }
	if path := AStar(MapPos{0, 0}, goal, passable); path != nil {
		t.Fatalf("expected nil path, got %v", path)
	}
}

func TestAStar_SameTile(t *testing.T) {
	path := AStar(MapPos{2, 2}, MapPos{2, 2}, func(MapPos) bool { return true })
	if len(path) != 1 {
		t.Fatalf("path = %v", path)
	}
}
