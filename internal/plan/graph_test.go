package plan

import (
	"testing"
)

func TestGraphSortEmptyGraphKeepsIndexOrder(t *testing.T) {
	g := newGraph(4)
	got := g.sort()
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("sort = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort = %v, want %v", got, want)
		}
	}
}

func TestGraphSortRespectsEdges(t *testing.T) {
	// 2 before 1, 1 before 0.
	g := newGraph(3)
	g.addEdge(2, 1)
	g.addEdge(1, 0)

	got := g.sort()
	pos := make(map[int]int, len(got))
	for i, n := range got {
		pos[n] = i
	}
	if pos[2] > pos[1] || pos[1] > pos[0] {
		t.Errorf("sort = %v violates edges 2->1->0", got)
	}
	if len(got) != 3 {
		t.Errorf("sort dropped nodes: %v", got)
	}
}

func TestGraphAddEdgeDeduplicates(t *testing.T) {
	g := newGraph(2)
	g.addEdge(0, 1)
	g.addEdge(0, 1)
	if len(g.adj[0]) != 1 {
		t.Errorf("adjacency list = %v, want single edge", g.adj[0])
	}
}

func TestGraphFindCycleAcyclic(t *testing.T) {
	g := newGraph(3)
	g.addEdge(0, 1)
	g.addEdge(0, 2)
	g.addEdge(1, 2)
	if cycle := g.findCycle(); cycle != nil {
		t.Errorf("findCycle = %v on acyclic graph", cycle)
	}
}

func TestGraphFindCycle(t *testing.T) {
	g := newGraph(4)
	g.addEdge(0, 1)
	g.addEdge(1, 2)
	g.addEdge(2, 1)
	g.addEdge(2, 3)

	cycle := g.findCycle()
	if len(cycle) != 2 {
		t.Fatalf("findCycle = %v, want the 1-2 cycle", cycle)
	}
	seen := map[int]bool{cycle[0]: true, cycle[1]: true}
	if !seen[1] || !seen[2] {
		t.Errorf("findCycle = %v, want nodes 1 and 2", cycle)
	}
}

func TestGraphFindCycleSelfLoop(t *testing.T) {
	g := newGraph(2)
	g.addEdge(1, 1)

	cycle := g.findCycle()
	if len(cycle) != 1 || cycle[0] != 1 {
		t.Errorf("findCycle = %v, want [1]", cycle)
	}
}
