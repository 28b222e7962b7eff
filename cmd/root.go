package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/config"
)

// app holds state shared by every command. cfg is set before any
// command runs.
type app struct {
	cfgPath    string
	verbose    bool
	maxDevices int
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "netgraph",
		Short: "Analyse the connectivity of a device network",
		Long: `netgraph models a network of devices as an undirected graph. It finds the
connected components, the shortest hop paths between devices and the links
needed to connect the whole network.

Networks are generated at random, read from a YAML or TOML topology file, or
read from PostgreSQL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(ctx, logger))

			if a.cfgPath == "" {
				a.cfg = config.Default()
			} else {
				cfg, err := config.Load(a.cfgPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
				logger.Debug("Loaded config", "path", a.cfgPath)
			}
			if cmd.Flags().Changed("max-devices") {
				a.cfg.Network.MaxDevices = a.maxDevices
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.IntVar(&a.maxDevices, "max-devices", 0, "largest accepted device count (<= 0 disables the limit)")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		newLogger(os.Stderr, log.InfoLevel).Error(err)
		os.Exit(1)
	}
}
