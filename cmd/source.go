package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/config"
	"github.com/hurou927/netgraph/internal/db"
	"github.com/hurou927/netgraph/internal/generator"
	"github.com/hurou927/netgraph/internal/graph"
	"github.com/hurou927/netgraph/internal/topology"
)

// source selects where a command's network comes from: a random
// generator (the default), a topology file or PostgreSQL.
type source struct {
	devices  int
	seed     int64
	topology string
	postgres bool
}

func (s *source) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&s.devices, "devices", 0, "device count of a random network (0 picks one at random)")
	f.Int64Var(&s.seed, "seed", 0, "seed of a random network (0 uses the config, then the clock)")
	f.StringVar(&s.topology, "topology", "", "read the network from a YAML or TOML topology file")
	f.BoolVar(&s.postgres, "postgres", false, "read the network from the PostgreSQL tables in the config")
	cmd.MarkFlagsMutuallyExclusive("topology", "postgres")
}

func (s *source) load(ctx context.Context, cfg *config.Config) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)
	opts := cfg.GraphOptions()

	switch {
	case s.topology != "":
		t, err := topology.LoadFile(s.topology)
		if err != nil {
			return nil, err
		}
		g, err := topology.Build(t, opts...)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", s.topology, err)
		}
		logger.Info("Loaded topology", "path", s.topology, "devices", g.NumDevices(), "links", g.NumEdges())
		return g, nil

	case s.postgres:
		if err := cfg.ValidateForPostgres(); err != nil {
			return nil, err
		}
		pool, err := db.NewPool(ctx, &cfg.Connection)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		t, err := topology.LoadPostgres(ctx, pool, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		g, err := topology.Build(t, opts...)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded topology", "database", cfg.Connection.Database, "devices", g.NumDevices(), "links", g.NumEdges())
		return g, nil
	}

	seed := s.seed
	if seed == 0 {
		seed = cfg.Network.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := generator.New(seed)

	n := s.devices
	if n == 0 {
		n = cfg.Network.Devices
	}
	if n == 0 {
		n = gen.DeviceCount(cfg.Network.DeviceRange())
	}

	g, err := gen.Network(n, opts...)
	if err != nil {
		return nil, err
	}
	logger.Info("Generated network", "devices", g.NumDevices(), "links", g.NumEdges(), "seed", seed)
	return g, nil
}

// openOutput returns the writer for path; "" and "-" select the
// command's standard output. The returned close function is never nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
