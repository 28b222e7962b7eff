package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hurou927/netgraph/internal/analysis"
)

// parseQuery parses "A,B" into a query from device A to device B.
func parseQuery(s string) (analysis.Query, error) {
	from, to, ok := strings.Cut(s, ",")
	if !ok {
		return analysis.Query{}, fmt.Errorf("query %q: want FROM,TO", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return analysis.Query{}, fmt.Errorf("query %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return analysis.Query{}, fmt.Errorf("query %q: %w", s, err)
	}
	return analysis.Query{From: a, To: b}, nil
}

func parseQueries(args []string) ([]analysis.Query, error) {
	queries := make([]analysis.Query, 0, len(args))
	for _, s := range args {
		q, err := parseQuery(s)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// promptQuery asks on w for a source and destination device and reads
// the two indices from r.
func promptQuery(r io.Reader, w io.Writer) (analysis.Query, error) {
	fmt.Fprint(w, "Enter source and destination devices: ")
	var q analysis.Query
	if _, err := fmt.Fscan(r, &q.From, &q.To); err != nil {
		return analysis.Query{}, fmt.Errorf("reading devices: %w", err)
	}
	return q, nil
}
