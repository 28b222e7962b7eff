package graph

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
)

// DefaultMaxDevices is the sanity limit applied by New unless WithMaxDevices
// overrides it.
const DefaultMaxDevices = 100

// Edge is an undirected link between two devices. Graph.Edges always
// returns edges with A < B.
type Edge struct {
	A int
	B int
}

// String formats the edge as "A-B".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Graph is an undirected graph of devices identified by index.
// The device count is fixed at construction; links are only ever added.
type Graph struct {
	// adjacency holds, per device, its neighbours in ascending order
	// without duplicates.
	adjacency [][]int
	edges     int
}

// Option configures New.
type Option func(*options)

type options struct {
	maxDevices int
}

// WithMaxDevices sets the largest device count New accepts.
// A value <= 0 disables the limit.
func WithMaxDevices(n int) Option {
	return func(o *options) {
		o.maxDevices = n
	}
}

// New creates a graph with numDevices devices and no links.
func New(numDevices int, opts ...Option) (*Graph, error) {
	o := options{maxDevices: DefaultMaxDevices}
	for _, opt := range opts {
		opt(&o)
	}

	if numDevices < 1 {
		return nil, errors.Wrapf(ErrInvalidDeviceCount, "%d devices", numDevices)
	}
	if o.maxDevices > 0 && numDevices > o.maxDevices {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d devices requested, limit is %d", numDevices, o.maxDevices)
	}

	return &Graph{adjacency: make([][]int, numDevices)}, nil
}

// NumDevices returns the number of devices.
func (g *Graph) NumDevices() int {
	return len(g.adjacency)
}

// NumEdges returns the number of distinct links.
func (g *Graph) NumEdges() int {
	return g.edges
}

// AddEdge links src and dst in both directions. It reports whether a new
// link was stored; adding an existing link is a no-op.
func (g *Graph) AddEdge(src, dst int) (bool, error) {
	if err := g.check(src); err != nil {
		return false, err
	}
	if err := g.check(dst); err != nil {
		return false, err
	}
	if src == dst {
		return false, errors.Wrapf(ErrSelfLoop, "device %d", src)
	}

	pos, found := slices.BinarySearch(g.adjacency[src], dst)
	if found {
		return false, nil
	}
	g.adjacency[src] = slices.Insert(g.adjacency[src], pos, dst)

	pos, _ = slices.BinarySearch(g.adjacency[dst], src)
	g.adjacency[dst] = slices.Insert(g.adjacency[dst], pos, src)

	g.edges++
	return true, nil
}

// Adjacent reports whether a and b are directly linked.
func (g *Graph) Adjacent(a, b int) (bool, error) {
	if err := g.check(a); err != nil {
		return false, err
	}
	if err := g.check(b); err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(g.adjacency[a], b)
	return found, nil
}

// Neighbors returns the neighbours of v in ascending order.
// The returned slice is a copy.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	return slices.Clone(g.adjacency[v]), nil
}

// Degree returns the number of links of v.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}
	return len(g.adjacency[v]), nil
}

// Edges returns every link once, with A < B, sorted by A then B.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for a, nbrs := range g.adjacency {
		for _, b := range nbrs {
			if a < b {
				edges = append(edges, Edge{A: a, B: b})
			}
		}
	}
	return edges
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adjacency: make([][]int, len(g.adjacency)),
		edges:     g.edges,
	}
	for v, nbrs := range g.adjacency {
		c.adjacency[v] = slices.Clone(nbrs)
	}
	return c
}

// neighbors returns the internal neighbour slice of a validated device.
// Callers must not modify it.
func (g *Graph) neighbors(v int) []int {
	return g.adjacency[v]
}

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return errors.Wrapf(ErrInvalidDevice, "device %d not in [0, %d)", v, len(g.adjacency))
	}
	return nil
}
