package topology

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hurou927/netgraph/internal/config"
)

// Querier is the subset of *pgxpool.Pool used to read a topology.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres reads devices and links from the tables named in pg.
// Device ids are mapped to indices in ascending id order; a link that
// references an unknown device is an error.
func LoadPostgres(ctx context.Context, q Querier, pg config.Postgres) (*Topology, error) {
	ids, err := queryDeviceIDs(ctx, q, pg)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	links, err := queryLinks(ctx, q, pg, index)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}

	return &Topology{Devices: len(ids), Links: links}, nil
}

func queryDeviceIDs(ctx context.Context, q Querier, pg config.Postgres) ([]int64, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		pgx.Identifier{pg.DeviceID}.Sanitize(),
		pgx.Identifier{pg.Schema, pg.DevicesTable}.Sanitize(),
		pgx.Identifier{pg.DeviceID}.Sanitize(),
	)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func queryLinks(ctx context.Context, q Querier, pg config.Postgres, index map[int64]int) ([][2]int, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY 1, 2",
		pgx.Identifier{pg.LinkSource}.Sanitize(),
		pgx.Identifier{pg.LinkTarget}.Sanitize(),
		pgx.Identifier{pg.Schema, pg.LinksTable}.Sanitize(),
	)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links [][2]int
	for rows.Next() {
		var src, dst int64
		if err := rows.Scan(&src, &dst); err != nil {
			return nil, err
		}
		a, ok := index[src]
		if !ok {
			return nil, fmt.Errorf("link %d-%d references unknown device %d", src, dst, src)
		}
		b, ok := index[dst]
		if !ok {
			return nil, fmt.Errorf("link %d-%d references unknown device %d", src, dst, dst)
		}
		links = append(links, [2]int{a, b})
	}
	return links, rows.Err()
}
