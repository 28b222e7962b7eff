package topology_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurou927/netgraph/internal/config"
	"github.com/hurou927/netgraph/internal/topology"
)

// fakeRows serves fixed int64 rows through the pgx.Rows interface.
type fakeRows struct {
	data [][]int64
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		*(d.(*int64)) = row[i]
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	row := r.data[r.pos-1]
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out, nil
}

// fakeQuerier answers queries by table name.
type fakeQuerier struct {
	tables  map[string][][]int64
	queries []string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	for name, data := range q.tables {
		if strings.Contains(sql, name) {
			return &fakeRows{data: data}, nil
		}
	}
	return nil, fmt.Errorf("relation does not exist")
}

func pgConfig() config.Postgres {
	return config.Postgres{
		Schema:       "inventory",
		DevicesTable: "devices",
		DeviceID:     "id",
		LinksTable:   "links",
		LinkSource:   "source_id",
		LinkTarget:   "target_id",
	}
}

func TestLoadPostgres(t *testing.T) {
	q := &fakeQuerier{tables: map[string][][]int64{
		`"inventory"."devices"`: {{10}, {20}, {35}, {40}},
		`"inventory"."links"`:   {{10, 20}, {35, 40}},
	}}

	got, err := topology.LoadPostgres(context.Background(), q, pgConfig())
	require.NoError(t, err)
	assert.Equal(t, &topology.Topology{Devices: 4, Links: [][2]int{{0, 1}, {2, 3}}}, got)

	require.Len(t, q.queries, 2)
	assert.Equal(t, `SELECT "id" FROM "inventory"."devices" ORDER BY "id"`, q.queries[0])
	assert.Equal(t, `SELECT "source_id", "target_id" FROM "inventory"."links" ORDER BY 1, 2`, q.queries[1])
}

func TestLoadPostgresUnknownDevice(t *testing.T) {
	q := &fakeQuerier{tables: map[string][][]int64{
		`"inventory"."devices"`: {{1}, {2}},
		`"inventory"."links"`:   {{1, 3}},
	}}

	_, err := topology.LoadPostgres(context.Background(), q, pgConfig())
	assert.ErrorContains(t, err, "unknown device 3")
}

func TestLoadPostgresQueryError(t *testing.T) {
	q := &fakeQuerier{tables: map[string][][]int64{}}

	_, err := topology.LoadPostgres(context.Background(), q, pgConfig())
	assert.ErrorContains(t, err, "querying devices")
}
