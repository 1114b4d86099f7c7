package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// newTestDB opens an in-memory SQLite database with the schema the
// repositories expect. Each test gets its own database; cache=shared
// keeps the memory store alive across the pooled connections.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, model := range []any{
		(*models.Gift)(nil),
		(*models.UserInventory)(nil),
		(*models.InventoryItem)(nil),
	} {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		require.NoError(t, err)
	}

	return db
}
