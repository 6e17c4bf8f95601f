package migrations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/melisd/campushub/internal/db"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMigrator() *Migrator {
	// The error-path tests below never reach the database, so an empty
	// handle is enough.
	return NewMigrator(&db.PostgresDB{}, zerolog.Nop())
}

func TestMigrateFromFile_MissingFile(t *testing.T) {
	m := newTestMigrator()

	err := m.MigrateFromFile(context.Background(), filepath.Join(t.TempDir(), "001_missing.sql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read migration file")
}

func TestMigrateFromDirectory_MissingDirectory(t *testing.T) {
	m := newTestMigrator()

	err := m.MigrateFromDirectory(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read migration directory")
}

func TestMigrateFromDirectory_IgnoresNonSQLFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.sql"), 0o755))

	m := newTestMigrator()

	// Nothing to apply, so the run succeeds without a live connection.
	assert.NoError(t, m.MigrateFromDirectory(context.Background(), dir))
}
