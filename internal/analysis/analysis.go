// Package analysis runs a complete analysis session over a device
// network: component discovery, path queries and component bridging.
package analysis

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/hurou927/netgraph/internal/graph"
)

// Query asks for the shortest path between two devices.
type Query struct {
	From int
	To   int
}

// QueryResult is the answer to a Query. Err is set, and matches
// graph.ErrUnreachable, when the devices are not connected.
type QueryResult struct {
	Query
	Path graph.Path
	Err  error
	// Eccentricity is the largest hop count from From to any device it
	// can reach.
	Eccentricity int
}

// Reachable reports whether a path was found.
func (q QueryResult) Reachable() bool {
	return q.Err == nil
}

// Options configures Run.
type Options struct {
	// Queries are answered before and, unless SkipConnect is set, after
	// the network is connected.
	Queries []Query
	// SkipConnect leaves the graph unchanged.
	SkipConnect bool
	// Logger receives progress messages. Defaults to log.Default().
	Logger *log.Logger
}

// Result collects everything a session found.
type Result struct {
	Devices int
	Links   int
	// Edges are the links present before any were added.
	Edges []graph.Edge

	Components graph.Components
	LinkPaths  []graph.PairPath
	Queries    []QueryResult

	// Suggestions are the links added to connect the network, in the
	// order they were added. Empty when the network was already
	// connected or SkipConnect was set.
	Suggestions     []graph.Edge
	Connected       bool
	ComponentsAfter graph.Components
	After           []QueryResult
}

// Run analyses g. Unless opts.SkipConnect is set, g is modified by the
// links added to connect it.
//
// Query indices are validated first; an invalid one aborts the session
// with graph.ErrInvalidDevice before anything else runs. Unreachable
// queries are recorded on the result.
func Run(g *graph.Graph, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	for _, q := range opts.Queries {
		for _, v := range []int{q.From, q.To} {
			if v < 0 || v >= g.NumDevices() {
				return nil, errors.Wrapf(graph.ErrInvalidDevice, "query %d-%d: device %d not in [0, %d)", q.From, q.To, v, g.NumDevices())
			}
		}
	}

	res := &Result{
		Devices: g.NumDevices(),
		Links:   g.NumEdges(),
		Edges:   g.Edges(),
	}

	start := time.Now()
	res.Components = graph.FindComponents(g)
	logger.Info("Found components", "count", len(res.Components), "elapsed", since(start))

	start = time.Now()
	res.LinkPaths = graph.LinkPaths(g)
	logger.Debug("Computed link paths", "count", len(res.LinkPaths), "elapsed", since(start))

	res.Queries = answer(g, opts.Queries, logger)

	if opts.SkipConnect {
		logger.Debug("Skipping connection step")
		return res, nil
	}

	start = time.Now()
	suggestions, err := graph.Connect(g, res.Components)
	if err != nil {
		return nil, errors.Wrap(err, "connecting components")
	}
	res.Suggestions = suggestions
	res.Connected = true
	logger.Info("Connected network", "added", len(suggestions), "elapsed", since(start))

	res.ComponentsAfter = graph.FindComponents(g)
	res.After = answer(g, opts.Queries, logger)

	return res, nil
}

func answer(g *graph.Graph, queries []Query, logger *log.Logger) []QueryResult {
	if len(queries) == 0 {
		return nil
	}
	results := make([]QueryResult, len(queries))
	for i, q := range queries {
		p, err := graph.ShortestPath(g, q.From, q.To)
		results[i] = QueryResult{Query: q, Path: p, Err: err, Eccentricity: eccentricity(g, q.From)}
		if err != nil {
			logger.Debug("No path", "from", q.From, "to", q.To)
		} else {
			logger.Debug("Path", "from", q.From, "to", q.To, "hops", p.Hops())
		}
	}
	return results
}

func eccentricity(g *graph.Graph, v int) int {
	dist, err := graph.HopDistances(g, v)
	if err != nil {
		return 0
	}
	farthest := 0
	for _, d := range dist {
		farthest = max(farthest, d)
	}
	return farthest
}

func since(t time.Time) time.Duration {
	return time.Since(t).Round(time.Microsecond)
}
