// Package testutils provides database helpers for repository tests
package testutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormdb "gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	persistence "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
)

// NewTestDB opens an in-memory SQLite database with the full schema.
// Each test gets its own database, closed on cleanup.
func NewTestDB(t *testing.T) *gormdb.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormdb.Open(sqlite.Open(dsn), &gormdb.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&persistence.RecipeModel{},
		&persistence.PantryItemModel{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
