package graph_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hurou927/netgraph/internal/graph"
)

// randomGraph decodes raw values into a graph with n devices. Each value
// encodes one candidate link; self links are skipped.
func randomGraph(n int, raw []int) *graph.Graph {
	g, err := graph.New(n)
	if err != nil {
		panic(err)
	}
	for _, r := range raw {
		a, b := (r/16)%n, (r%16)%n
		if a == b {
			continue
		}
		if _, err := g.AddEdge(a, b); err != nil {
			panic(err)
		}
	}
	return g
}

// exhaustiveHops returns the hop count of the shortest simple
// path from a to b found by enumerating every simple path, or -1.
func exhaustiveHops(g *graph.Graph, a, b int) int {
	best := -1
	onPath := make([]bool, g.NumDevices())
	var walk func(v, hops int)
	walk = func(v, hops int) {
		if v == b {
			if best < 0 || hops < best {
				best = hops
			}
			return
		}
		onPath[v] = true
		nbrs, _ := g.Neighbors(v)
		for _, nbr := range nbrs {
			if !onPath[nbr] {
				walk(nbr, hops+1)
			}
		}
		onPath[v] = false
	}
	walk(a, 0)
	return best
}

func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	devices := gen.IntRange(1, 16)
	links := gen.SliceOf(gen.IntRange(0, 255))

	properties.Property("components partition all devices", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			seen := make([]int, n)
			for _, c := range graph.FindComponents(g) {
				for _, d := range c.Devices {
					seen[d]++
				}
			}
			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		devices, links,
	))

	properties.Property("singleton component iff no links", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			comps := graph.FindComponents(g)
			for v := 0; v < n; v++ {
				deg, _ := g.Degree(v)
				singleton := comps[comps.Of(v)].Size() == 1
				if (deg == 0) != singleton {
					return false
				}
			}
			return true
		},
		devices, links,
	))

	properties.Property("linked devices share a component", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			comps := graph.FindComponents(g)
			for _, e := range g.Edges() {
				if comps.Of(e.A) != comps.Of(e.B) {
					return false
				}
			}
			return true
		},
		devices, links,
	))

	properties.Property("adjacency is symmetric", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					ab, _ := g.Adjacent(a, b)
					ba, _ := g.Adjacent(b, a)
					if ab != ba || (a == b && ab) {
						return false
					}
				}
			}
			return true
		},
		devices, links,
	))

	properties.Property("shortest path is never longer than any simple path", prop.ForAll(
		func(n int, raw []int, a, b int) bool {
			g := randomGraph(n, raw)
			a, b = a%n, b%n
			p, err := graph.ShortestPath(g, a, b)
			want := exhaustiveHops(g, a, b)
			if want < 0 {
				return errors.Is(err, graph.ErrUnreachable)
			}
			if err != nil || p.Hops() != want || p[0] != a || p[len(p)-1] != b {
				return false
			}
			for i := 1; i < len(p); i++ {
				if ok, _ := g.Adjacent(p[i-1], p[i]); !ok {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8), links, gen.IntRange(0, 7), gen.IntRange(0, 7),
	))

	properties.Property("path to self has zero hops", prop.ForAll(
		func(n int, raw []int, x int) bool {
			g := randomGraph(n, raw)
			x %= n
			p, err := graph.ShortestPath(g, x, x)
			return err == nil && len(p) == 1 && p[0] == x && p.Hops() == 0
		},
		devices, links, gen.IntRange(0, 15),
	))

	properties.Property("devices in different components are unreachable", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			comps := graph.FindComponents(g)
			if len(comps) < 2 {
				return true
			}
			_, err := graph.ShortestPath(g, comps[0].First(), comps[len(comps)-1].First())
			return errors.Is(err, graph.ErrUnreachable)
		},
		devices, links,
	))

	properties.Property("connect leaves one component with k-1 new links", prop.ForAll(
		func(n int, raw []int) bool {
			g := randomGraph(n, raw)
			before := g.NumEdges()
			comps := graph.FindComponents(g)
			added, err := graph.Connect(g, comps)
			if err != nil {
				return false
			}
			return len(added) == len(comps)-1 &&
				g.NumEdges() == before+len(comps)-1 &&
				len(graph.FindComponents(g)) == 1
		},
		devices, links,
	))

	properties.TestingRun(t)
}
