package cmd

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/graph"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		src     source
		connect bool
	)

	cmd := &cobra.Command{
		Use:   "path START END",
		Short: "Print the shortest path between two devices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("start device: %w", err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("end device: %w", err)
			}

			g, err := src.load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			if connect {
				added, err := graph.Connect(g, graph.FindComponents(g))
				if err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("Connected network", "added", len(added))
			}

			out := cmd.OutOrStdout()
			p, err := graph.ShortestPath(g, start, end)
			switch {
			case errors.Is(err, graph.ErrUnreachable):
				fmt.Fprintf(out, "No path between %d and %d.\n", start, end)
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(out, "Shortest path between %d and %d: %s (%d hops)\n", start, end, p, p.Hops())
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().BoolVar(&connect, "connect", false, "connect the network before searching")

	return cmd
}
