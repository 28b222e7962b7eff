package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/export"
	"github.com/hurou927/netgraph/internal/topology"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src    source
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a network as a YAML or TOML topology file",
		Long: `Generates a random network, or converts one read with --topology or
--postgres, and writes it as a topology file that analyze --topology reads
back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tf := topology.Format(format)
			if format == "" {
				tf = topology.FormatYAML
				if output != "" && output != "-" {
					var err error
					if tf, err = topology.FormatFromPath(output); err != nil {
						return err
					}
				}
			}

			g, err := src.load(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := export.WriteTopology(w, g, tf); err != nil {
				closeOut()
				return fmt.Errorf("writing topology: %w", err)
			}
			return closeOut()
		},
	}

	src.addFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&format, "format", "", "topology format: yaml or toml (default from the output extension, else yaml)")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
