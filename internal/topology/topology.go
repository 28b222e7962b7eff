// Package topology reads device networks from files and PostgreSQL and
// turns them into graphs.
package topology

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hurou927/netgraph/internal/graph"
)

// Format is a topology file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Topology is the serialisable form of a network: a device count and the
// links between device indices.
type Topology struct {
	Devices int      `yaml:"devices" toml:"devices"`
	Links   [][2]int `yaml:"links,flow" toml:"links"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown topology file extension %q (supported: .yaml, .yml, .toml)", filepath.Ext(path))
	}
}

// LoadFile reads a topology file, choosing the decoder by extension.
func LoadFile(path string) (*Topology, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode reads a topology in the given format.
func Decode(r io.Reader, format Format) (*Topology, error) {
	var t Topology
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&t); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown topology format: %s (supported: yaml, toml)", format)
	}
	return &t, nil
}

// Encode writes t in the given format.
func Encode(w io.Writer, t *Topology, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(t); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown topology format: %s (supported: yaml, toml)", format)
	}
}

// Build creates a graph from t. Duplicate links are ignored; invalid
// indices, self links and oversized device counts are errors.
func Build(t *Topology, opts ...graph.Option) (*graph.Graph, error) {
	g, err := graph.New(t.Devices, opts...)
	if err != nil {
		return nil, err
	}
	for i, l := range t.Links {
		if _, err := g.AddEdge(l[0], l[1]); err != nil {
			return nil, fmt.Errorf("links[%d]: %w", i, err)
		}
	}
	return g, nil
}

// FromGraph returns the topology of g with links in ascending order.
func FromGraph(g *graph.Graph) *Topology {
	edges := g.Edges()
	t := &Topology{
		Devices: g.NumDevices(),
		Links:   make([][2]int, len(edges)),
	}
	for i, e := range edges {
		t.Links[i] = [2]int{e.A, e.B}
	}
	return t
}
