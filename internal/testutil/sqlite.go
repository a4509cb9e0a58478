// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"fieldbooking/internal/database"
	"fieldbooking/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB returns a migrated in-memory database private to t.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := database.Connect(dsn)
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(context.Background(), db), "migrate")
	return db
}
