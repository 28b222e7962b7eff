package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/db"
	"github.com/hurou927/netgraph/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		src    source
		output string
		apply  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a network as PostgreSQL COPY data",
		Long: `Writes the devices and links of a network in pg_dump-compatible COPY format,
using the table and column names of the postgres config section. With
--apply the rows are copied straight into the configured database instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := src.load(ctx, a.cfg)
			if err != nil {
				return err
			}

			if apply {
				if err := a.cfg.ValidateForPostgres(); err != nil {
					return err
				}
				pool, err := db.NewPool(ctx, &a.cfg.Connection)
				if err != nil {
					return fmt.Errorf("connecting to database: %w", err)
				}
				defer pool.Close()

				devices, links, err := export.CopyToPostgres(ctx, pool, g, a.cfg.Postgres)
				if err != nil {
					return err
				}
				logger.Info("Copied network", "devices", devices, "links", links)
				return nil
			}

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := export.WriteCopy(w, g, a.cfg.Postgres); err != nil {
				closeOut()
				return fmt.Errorf("writing COPY data: %w", err)
			}
			if err := closeOut(); err != nil {
				return err
			}
			if output != "" && output != "-" {
				logger.Info("Output written", "path", output)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&apply, "apply", false, "copy the rows into the configured database")
	cmd.MarkFlagsMutuallyExclusive("output", "apply")

	return cmd
}
