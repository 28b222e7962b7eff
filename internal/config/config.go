package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hurou927/netgraph/internal/graph"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Network    Network    `yaml:"network"`
	Connection Connection `yaml:"connection"`
	Postgres   Postgres   `yaml:"postgres"`
	Report     Report     `yaml:"report"`
}

// Network controls the size of the analysed network and how a random
// one is generated.
type Network struct {
	// MaxDevices is the sanity limit on the device count; 0 selects
	// graph.DefaultMaxDevices and a negative value disables the limit.
	MaxDevices int `yaml:"max_devices"`
	// Devices is the device count of a generated network. 0 picks a random
	// count in [MinDevices, MaxDevices).
	Devices    int   `yaml:"devices"`
	MinDevices int   `yaml:"min_devices"`
	Seed       int64 `yaml:"seed"`
}

// Connection holds database connection parameters.
type Connection struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int32  `yaml:"max_conns"`
}

// Postgres names the tables a topology is read from and written to.
type Postgres struct {
	Schema       string `yaml:"schema"`
	DevicesTable string `yaml:"devices_table"`
	DeviceID     string `yaml:"device_id"`
	LinksTable   string `yaml:"links_table"`
	LinkSource   string `yaml:"link_source"`
	LinkTarget   string `yaml:"link_target"`
}

// Report selects the output format.
type Report struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

// DSN builds a PostgreSQL connection string.
func (c *Connection) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode,
	)
}

// Default returns the configuration used when no file is given.
// Environment variables are applied as for Load.
func Default() *Config {
	var cfg Config
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills in empty fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.Network.MaxDevices == 0 {
		if n, ok := envInt("NETGRAPH_MAX_DEVICES"); ok {
			c.Network.MaxDevices = n
		}
	}
	if c.Network.Seed == 0 {
		if s := envOr("NETGRAPH_SEED"); s != "" {
			if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
				c.Network.Seed = seed
			}
		}
	}

	conn := &c.Connection
	if conn.Host == "" {
		conn.Host = envOr("PGHOST", "POSTGRES_HOST")
	}
	if conn.Port == 0 {
		if p, ok := envInt("PGPORT", "POSTGRES_PORT"); ok {
			conn.Port = p
		}
	}
	if conn.Database == "" {
		conn.Database = envOr("PGDATABASE", "POSTGRES_DB")
	}
	if conn.User == "" {
		conn.User = envOr("PGUSER", "POSTGRES_USER")
	}
	if conn.Password == "" {
		conn.Password = envOr("PGPASSWORD", "POSTGRES_PASSWORD")
	}
	if conn.SSLMode == "" {
		conn.SSLMode = envOr("PGSSLMODE")
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

func envInt(names ...string) (int, bool) {
	s := envOr(names...)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Config) applyDefaults() {
	if c.Network.MaxDevices == 0 {
		c.Network.MaxDevices = graph.DefaultMaxDevices
	}
	if c.Network.MinDevices == 0 {
		c.Network.MinDevices = 20
	}
	if c.Connection.Port == 0 {
		c.Connection.Port = 5432
	}
	if c.Connection.SSLMode == "" {
		c.Connection.SSLMode = "disable"
	}

	pg := &c.Postgres
	if pg.Schema == "" {
		pg.Schema = "public"
	}
	if pg.DevicesTable == "" {
		pg.DevicesTable = "devices"
	}
	if pg.DeviceID == "" {
		pg.DeviceID = "id"
	}
	if pg.LinksTable == "" {
		pg.LinksTable = "links"
	}
	if pg.LinkSource == "" {
		pg.LinkSource = "source_id"
	}
	if pg.LinkTarget == "" {
		pg.LinkTarget = "target_id"
	}

	if c.Report.Format == "" {
		c.Report.Format = "text"
	}
}

// validate checks values that defaults cannot repair.
func (c *Config) validate() error {
	n := c.Network
	if n.Devices < 0 {
		return fmt.Errorf("network.devices must not be negative")
	}
	if n.MinDevices < 1 {
		return fmt.Errorf("network.min_devices must be at least 1")
	}
	if c.Connection.MaxConns < 0 {
		return fmt.Errorf("connection.max_conns must not be negative")
	}
	return nil
}

// ValidateForPostgres checks fields required to read or write a topology
// in PostgreSQL.
func (c *Config) ValidateForPostgres() error {
	if c.Connection.Host == "" {
		return fmt.Errorf("connection.host is required")
	}
	if c.Connection.Database == "" {
		return fmt.Errorf("connection.database is required")
	}
	if c.Connection.User == "" {
		return fmt.Errorf("connection.user is required")
	}
	return nil
}

// DeviceRange returns the bounds [lo, hi) a random device count is drawn
// from. hi is the device limit, or graph.DefaultMaxDevices when the limit
// is disabled; lo is min_devices lowered to hi when it does not fit.
func (n Network) DeviceRange() (lo, hi int) {
	hi = n.MaxDevices
	if hi <= 0 {
		hi = graph.DefaultMaxDevices
	}
	return min(n.MinDevices, hi), hi
}

// GraphOptions returns the graph options implied by the network section.
func (c *Config) GraphOptions() []graph.Option {
	return []graph.Option{graph.WithMaxDevices(c.Network.MaxDevices)}
}
