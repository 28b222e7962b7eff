package graph

import "github.com/cockroachdb/errors"

// Connect adds the links needed to merge the given components into one
// and returns them in the order they were added.
//
// The first device of component i is linked to the first device of
// component i+1, giving exactly len(comps)-1 links. With zero or one
// component nothing is added.
//
// comps must be a partition of g, usually from FindComponents. g is
// modified, so comps no longer describes it once Connect returns.
func Connect(g *Graph, comps Components) ([]Edge, error) {
	if len(comps) <= 1 {
		return nil, nil
	}

	for _, c := range comps {
		if len(c.Devices) == 0 {
			return nil, errors.Wrap(ErrInvalidDevice, "empty component")
		}
		if err := g.check(c.First()); err != nil {
			return nil, err
		}
	}

	suggestions := make([]Edge, 0, len(comps)-1)
	for i := 0; i < len(comps)-1; i++ {
		u, v := comps[i].First(), comps[i+1].First()
		if _, err := g.AddEdge(u, v); err != nil {
			return suggestions, err
		}
		suggestions = append(suggestions, Edge{A: u, B: v})
	}

	return suggestions, nil
}
