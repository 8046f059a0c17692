// Package infratest opens throwaway migrated databases for tests.
package infratest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tripplanner/internal/infra"
)

// OpenTestDB returns a sqlite database in a temp dir with every migration applied.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.OpenSQLite(filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
