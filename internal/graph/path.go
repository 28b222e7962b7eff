package graph

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Path is a sequence of devices from a start device to an end device in
// which consecutive devices are linked and no device repeats.
type Path []int

// Hops returns the number of links on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String formats the path as "0 -> 1 -> 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}

// PairPath is the shortest path found between two devices.
type PairPath struct {
	From int
	To   int
	Path Path
}

// none marks a device without predecessor.
const none = -1

// walker holds the state of one breadth-first traversal.
type walker struct {
	g       *Graph
	queue   []int
	visited []bool
	prev    []int
	depth   []int
}

func newWalker(g *Graph) *walker {
	n := g.NumDevices()
	w := &walker{
		g:       g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		depth:   make([]int, n),
	}
	for i := range w.prev {
		w.prev[i] = none
		w.depth[i] = none
	}
	return w
}

// enqueue marks v visited and records its predecessor. Marking happens at
// enqueue time so no device enters the queue twice.
func (w *walker) enqueue(v, from int) {
	w.visited[v] = true
	w.prev[v] = from
	if from == none {
		w.depth[v] = 0
	} else {
		w.depth[v] = w.depth[from] + 1
	}
	w.queue = append(w.queue, v)
}

// run traverses from start in level order. It stops early once stop is
// dequeued; pass none to traverse the whole component.
func (w *walker) run(start, stop int) {
	w.enqueue(start, none)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		if v == stop {
			return
		}
		for _, nbr := range w.g.neighbors(v) {
			if !w.visited[nbr] {
				w.enqueue(nbr, v)
			}
		}
	}
}

// ShortestPath returns a path with the fewest hops from start to end.
//
// Neighbours are explored in ascending order, so among equally short paths
// the one reached first by that order is returned. When start == end the
// path is the single device. When no path exists the error matches
// ErrUnreachable.
func ShortestPath(g *Graph, start, end int) (Path, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}
	if err := g.check(end); err != nil {
		return nil, err
	}

	w := newWalker(g)
	w.run(start, end)

	if !w.visited[end] {
		return nil, errors.Wrapf(ErrUnreachable, "from %d to %d", start, end)
	}

	var path Path
	for v := end; v != none; v = w.prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// HopDistances returns the hop count from start to every device, with -1
// for devices that cannot be reached.
func HopDistances(g *Graph, start int) ([]int, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}
	w := newWalker(g)
	w.run(start, none)
	return w.depth, nil
}

// LinkPaths returns the shortest path between the endpoints of every link,
// in the order of g.Edges.
func LinkPaths(g *Graph) []PairPath {
	edges := g.Edges()
	paths := make([]PairPath, 0, len(edges))
	for _, e := range edges {
		// Both endpoints are valid and linked, so no error is possible.
		p, _ := ShortestPath(g, e.A, e.B)
		paths = append(paths, PairPath{From: e.A, To: e.B, Path: p})
	}
	return paths
}
