// Package export writes device networks as topology files and as
// PostgreSQL data.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hurou927/netgraph/internal/config"
	"github.com/hurou927/netgraph/internal/graph"
	"github.com/hurou927/netgraph/internal/topology"
)

// Writer writes COPY-format SQL output.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new COPY output writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the BEGIN statement.
func (cw *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(cw.w, "BEGIN;")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cw.w)
	return err
}

// WriteFooter writes the COMMIT statement.
func (cw *Writer) WriteFooter() error {
	_, err := fmt.Fprintln(cw.w, "COMMIT;")
	return err
}

// WriteTableData writes a COPY block for a single table. Nothing is
// written when rows is empty.
func (cw *Writer) WriteTableData(table pgx.Identifier, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	_, err := fmt.Fprintf(cw.w, "COPY %s (%s) FROM stdin;\n",
		table.Sanitize(), strings.Join(quoted, ", "))
	if err != nil {
		return err
	}

	for _, row := range rows {
		vals := make([]string, len(row))
		for i, v := range row {
			vals[i] = EscapeCopyValue(v)
		}
		_, err := fmt.Fprintln(cw.w, strings.Join(vals, "\t"))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cw.w, `\.`)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cw.w)
	return err
}

// deviceRows returns one row per device holding its index.
func deviceRows(g *graph.Graph) [][]any {
	rows := make([][]any, g.NumDevices())
	for i := range rows {
		rows[i] = []any{i}
	}
	return rows
}

// linkRows returns one row per link, lower index first.
func linkRows(g *graph.Graph) [][]any {
	edges := g.Edges()
	rows := make([][]any, len(edges))
	for i, e := range edges {
		rows[i] = []any{e.A, e.B}
	}
	return rows
}

// WriteCopy writes g as pg_dump-compatible COPY blocks for the devices and
// links tables named in pg, inside a single transaction.
func WriteCopy(w io.Writer, g *graph.Graph, pg config.Postgres) error {
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteTableData(pgx.Identifier{pg.Schema, pg.DevicesTable}, []string{pg.DeviceID}, deviceRows(g)); err != nil {
		return err
	}
	if err := cw.WriteTableData(pgx.Identifier{pg.Schema, pg.LinksTable}, []string{pg.LinkSource, pg.LinkTarget}, linkRows(g)); err != nil {
		return err
	}
	return cw.WriteFooter()
}

// CopyFromer is the subset of pgx.Tx and *pgxpool.Pool used to bulk load
// a network.
type CopyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// CopyToPostgres bulk loads g into the devices and links tables named in
// pg. It returns the number of device and link rows copied.
func CopyToPostgres(ctx context.Context, db CopyFromer, g *graph.Graph, pg config.Postgres) (int64, int64, error) {
	devices, err := db.CopyFrom(ctx,
		pgx.Identifier{pg.Schema, pg.DevicesTable},
		[]string{pg.DeviceID},
		pgx.CopyFromRows(deviceRows(g)))
	if err != nil {
		return 0, 0, fmt.Errorf("copying devices: %w", err)
	}

	links, err := db.CopyFrom(ctx,
		pgx.Identifier{pg.Schema, pg.LinksTable},
		[]string{pg.LinkSource, pg.LinkTarget},
		pgx.CopyFromRows(linkRows(g)))
	if err != nil {
		return devices, 0, fmt.Errorf("copying links: %w", err)
	}

	return devices, links, nil
}

// WriteTopology writes g as a topology file in the given format.
func WriteTopology(w io.Writer, g *graph.Graph, format topology.Format) error {
	return topology.Encode(w, topology.FromGraph(g), format)
}
