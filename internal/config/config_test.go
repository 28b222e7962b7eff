package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurou927/netgraph/internal/graph"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// clearEnv unsets every variable applyEnv reads so the host environment
// does not leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"NETGRAPH_MAX_DEVICES", "NETGRAPH_SEED",
		"PGHOST", "POSTGRES_HOST", "PGPORT", "POSTGRES_PORT", "PGDATABASE", "POSTGRES_DB",
		"PGUSER", "POSTGRES_USER", "PGPASSWORD", "POSTGRES_PASSWORD", "PGSSLMODE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
network:
  max_devices: 500
  devices: 42
  seed: 7
connection:
  host: db.local
  database: inventory
  user: netops
postgres:
  devices_table: nodes
report:
  format: mermaid
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Network{MaxDevices: 500, Devices: 42, MinDevices: 20, Seed: 7}, cfg.Network)
	assert.Equal(t, 5432, cfg.Connection.Port)
	assert.Equal(t, "disable", cfg.Connection.SSLMode)
	assert.Equal(t, "nodes", cfg.Postgres.DevicesTable)
	assert.Equal(t, "links", cfg.Postgres.LinksTable)
	assert.Equal(t, "mermaid", cfg.Report.Format)
	assert.Equal(t, "host=db.local port=5432 dbname=inventory user=netops password= sslmode=disable", cfg.Connection.DSN())
	assert.NoError(t, cfg.ValidateForPostgres())
}

func TestLoadEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("NETGRAPH_MAX_DEVICES", "-1")
	t.Setenv("NETGRAPH_SEED", "99")
	t.Setenv("POSTGRES_HOST", "pg")
	t.Setenv("PGPORT", "6543")
	t.Setenv("PGUSER", "env-user")

	path := writeConfig(t, `
connection:
  user: yaml-user
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -1, cfg.Network.MaxDevices)
	assert.Equal(t, int64(99), cfg.Network.Seed)
	assert.Equal(t, "pg", cfg.Connection.Host)
	assert.Equal(t, 6543, cfg.Connection.Port)
	assert.Equal(t, "yaml-user", cfg.Connection.User, "YAML takes precedence over env")
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed", body: "network: [", want: "parsing config file"},
		{name: "negative devices", body: "network:\n  devices: -4\n", want: "network.devices"},
		{name: "negative min devices", body: "network:\n  min_devices: -1\n", want: "network.min_devices"},
		{name: "negative max conns", body: "connection:\n  max_conns: -2\n", want: "connection.max_conns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestDefault(t *testing.T) {
	clearEnv(t)
	cfg := Default()

	assert.Equal(t, graph.DefaultMaxDevices, cfg.Network.MaxDevices)
	assert.Equal(t, 20, cfg.Network.MinDevices)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "public", cfg.Postgres.Schema)
	assert.Len(t, cfg.GraphOptions(), 1)
	assert.ErrorContains(t, cfg.ValidateForPostgres(), "connection.host is required")
}

func TestDeviceRange(t *testing.T) {
	tests := []struct {
		name   string
		net    Network
		lo, hi int
	}{
		{name: "defaults", net: Network{MaxDevices: 100, MinDevices: 20}, lo: 20, hi: 100},
		{name: "limit below min", net: Network{MaxDevices: 10, MinDevices: 20}, lo: 10, hi: 10},
		{name: "limit equals min", net: Network{MaxDevices: 20, MinDevices: 20}, lo: 20, hi: 20},
		{name: "limit disabled", net: Network{MaxDevices: -1, MinDevices: 20}, lo: 20, hi: graph.DefaultMaxDevices},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.net.DeviceRange()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}
