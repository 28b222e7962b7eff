package graph

// Component is a connected group of devices, listed in depth-first
// discovery order starting from its lowest-indexed device.
type Component struct {
	Devices []int
}

// First returns the device the component was discovered from.
func (c Component) First() int {
	return c.Devices[0]
}

// Size returns the number of devices in the component.
func (c Component) Size() int {
	return len(c.Devices)
}

// Components is a partition of a graph's devices, ordered by the lowest
// device of each component.
type Components []Component

// Of returns the index of the component containing device, or -1.
func (cs Components) Of(device int) int {
	for i, c := range cs {
		for _, d := range c.Devices {
			if d == device {
				return i
			}
		}
	}
	return -1
}

// FindComponents partitions the devices of g into connected components
// using depth-first traversal.
//
// Devices are taken in ascending order; each unvisited one starts a new
// component. Within a component, neighbours are explored in ascending
// order, so the result matches a recursive traversal exactly. The
// traversal keeps an explicit stack and does not recurse.
//
// The partition describes g at the time of the call. It is not updated
// when links are added afterwards.
func FindComponents(g *Graph) Components {
	n := g.NumDevices()
	visited := make([]bool, n)
	var components Components

	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		components = append(components, Component{Devices: dfs(g, v, visited)})
	}

	return components
}

// frame is a device on the DFS stack with the position of the next
// neighbour to examine.
type frame struct {
	device int
	next   int
}

func dfs(g *Graph, start int, visited []bool) []int {
	visited[start] = true
	order := []int{start}
	stack := []frame{{device: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.neighbors(top.device)

		for top.next < len(nbrs) && visited[nbrs[top.next]] {
			top.next++
		}
		if top.next == len(nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}

		v := nbrs[top.next]
		top.next++
		visited[v] = true
		order = append(order, v)
		stack = append(stack, frame{device: v})
	}

	return order
}
