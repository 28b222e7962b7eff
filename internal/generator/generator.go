// Package generator populates device networks with random links.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/hurou927/netgraph/internal/graph"
)

// Generator produces random networks. The same seed always produces the
// same sequence of networks.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed. A zero seed is replaced by
// the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// DeviceCount returns a random device count in [lo, hi). When the range
// is empty it returns lo.
func (gen *Generator) DeviceCount(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + gen.rnd.IntN(hi-lo)
}

// Populate draws n + rand(2n) candidate links between random devices of
// g, where n is the device count, and adds each one that is neither a self
// link nor already present. It returns the number of links added.
func (gen *Generator) Populate(g *graph.Graph) (int, error) {
	n := g.NumDevices()
	candidates := n + gen.rnd.IntN(2*n)

	added := 0
	for i := 0; i < candidates; i++ {
		src, dst := gen.rnd.IntN(n), gen.rnd.IntN(n)
		if src == dst {
			continue
		}
		ok, err := g.AddEdge(src, dst)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Network creates a graph with numDevices devices and populates it.
func (gen *Generator) Network(numDevices int, opts ...graph.Option) (*graph.Graph, error) {
	g, err := graph.New(numDevices, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := gen.Populate(g); err != nil {
		return nil, err
	}
	return g, nil
}
