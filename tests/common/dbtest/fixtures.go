//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"place-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedTaxonomy inserts the location, resource type, resource and tag described by b.
func SeedTaxonomy(t *testing.T, db DBLike, b *builder.TaxonomyBuilder) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO locations (id, name, address) VALUES ($1, $2, $3)",
		b.LocationID, b.LocationName, b.Address)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO resource_types (id, name) VALUES ($1, $2)", b.TypeID, b.TypeName)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO resources (id, name, location_id, type_id) VALUES ($1, $2, $3, $4)",
		b.ResourceID, b.ResourceName, b.LocationID, b.TypeID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO tags (id, name, resource_type_id) VALUES ($1, $2, $3)",
		b.TagID, b.TagName, b.TypeID)
	require.NoError(t, err)
}

// AddResource inserts another resource sharing b's location and type.
func AddResource(t *testing.T, db DBLike, b *builder.TaxonomyBuilder, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, location_id, type_id) VALUES ($1, $2, $3, $4)",
		id, name, b.LocationID, b.TypeID)
	require.NoError(t, err)
	return id
}

// CountActiveOverlaps counts pairs of active bookings on one resource whose slots overlap.
func CountActiveOverlaps(t *testing.T, db DBLike, resourceID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM bookings a
		JOIN bookings b ON a.resource_id = b.resource_id AND a.id < b.id
		WHERE a.resource_id = $1
		  AND a.status = 'active' AND b.status = 'active'
		  AND a.start_time < b.end_time AND b.start_time < a.end_time`, resourceID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData is a hook for rows every test expects; the schema currently needs none.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
