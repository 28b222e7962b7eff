// Package graph models a network of devices as an undirected graph and
// answers structural questions about it.
//
// Devices are identified by their index in [0, NumDevices). Links are
// undirected and only ever added; a device is never linked to itself.
//
// # Algorithms
//
//   - [FindComponents] partitions the devices into connected components
//     with a depth-first traversal.
//   - [ShortestPath] finds a path with the fewest hops with a breadth-first
//     traversal, or fails with [ErrUnreachable].
//   - [Connect] links the components into one with the minimum number of
//     new links.
//
// Neighbours are always explored in ascending index order, which makes
// every result deterministic.
//
// # Example
//
//	g, _ := graph.New(5)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(3, 4)
//
//	comps := graph.FindComponents(g)       // [[0 1 2] [3 4]]
//	path, _ := graph.ShortestPath(g, 0, 2) // 0 -> 1 -> 2
//	links, _ := graph.Connect(g, comps)    // [0-3]
//
// A Graph is not safe for concurrent use. Callers that share one must
// serialize link additions against traversals.
package graph
