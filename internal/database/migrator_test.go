package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	subtree, err := MigrationsFS()
	require.NoError(t, err)

	files, err := fs.Glob(subtree, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_products.sql"}, files)

	body, err := fs.ReadFile(subtree, "001_create_products.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS products")
	assert.Contains(t, string(body), "price NUMERIC(10, 2)")
}
