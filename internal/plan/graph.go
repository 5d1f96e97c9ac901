package plan

// graph is a directed graph over the tasks of one plan, keyed by task
// index rather than by object reference so cyclic inputs cannot cause
// unbounded traversal. An edge from -> to means "from must execute before
// to".
type graph struct {
	n     int
	adj   [][]int
	edges map[[2]int]bool
}

// newGraph creates a graph with n nodes and no edges.
func newGraph(n int) *graph {
	return &graph{
		n:     n,
		adj:   make([][]int, n),
		edges: make(map[[2]int]bool),
	}
}

// addEdge records that node from must execute before node to. Duplicate
// edges are ignored.
func (g *graph) addEdge(from, to int) {
	key := [2]int{from, to}
	if g.edges[key] {
		return
	}
	g.edges[key] = true
	g.adj[from] = append(g.adj[from], to)
}

// findCycle returns the node indices of one cycle in edge order, or nil if
// the graph is acyclic. Depth-first search with a recursion-stack marker.
func (g *graph) findCycle() []int {
	const (
		white = 0 // unvisited
		gray  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make([]int, g.n)
	var stack []int

	var visit func(node int) []int
	visit = func(node int) []int {
		color[node] = gray
		stack = append(stack, node)

		for _, next := range g.adj[node] {
			switch color[next] {
			case gray:
				// Found a back edge; the cycle is the stack suffix
				// starting at next.
				for i, n := range stack {
					if n == next {
						return append([]int(nil), stack[i:]...)
					}
				}
			case white:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}

		stack = stack[:len(stack)-1]
		color[node] = black
		return nil
	}

	for node := 0; node < g.n; node++ {
		if color[node] == white {
			if cycle := visit(node); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// sort returns a topological order of all nodes using Kahn's algorithm.
// Nodes with no relative constraint keep their index order, so the result
// is deterministic. The graph must be acyclic.
func (g *graph) sort() []int {
	inDegree := make([]int, g.n)
	for _, neighbors := range g.adj {
		for _, next := range neighbors {
			inDegree[next]++
		}
	}

	// Seed with unconstrained nodes in index order; the queue then keeps
	// insertion order as ties resolve.
	var queue []int
	for node := 0; node < g.n; node++ {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	result := make([]int, 0, g.n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, next := range g.adj[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return result
}
