package account

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/stretchr/testify/require"
)

func openRawDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenStore_RecordsMigrationVersion(t *testing.T) {
	s := openTestStore(t, ":memory:")

	drv, err := newMigrationDriver(s.db)
	require.NoError(t, err)
	version, dirty, err := drv.Version()
	require.NoError(t, err)
	require.Equal(t, schemaVersion, version)
	require.False(t, dirty)

	var table string
	require.NoError(t, s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='accounts'",
	).Scan(&table))
	require.Equal(t, "accounts", table)
}

func TestRunMigrations_SecondRunIsNoChange(t *testing.T) {
	db := openRawDB(t)

	require.NoError(t, runMigrations(db))
	require.NoError(t, runMigrations(db))

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&rows))
	require.Equal(t, 1, rows)
}

func TestMigrationDriver_FreshDatabaseHasNilVersion(t *testing.T) {
	drv, err := newMigrationDriver(openRawDB(t))
	require.NoError(t, err)

	version, dirty, err := drv.Version()
	require.NoError(t, err)
	require.Equal(t, database.NilVersion, version)
	require.False(t, dirty)
}

func TestMigrationDriver_SetVersion(t *testing.T) {
	drv, err := newMigrationDriver(openRawDB(t))
	require.NoError(t, err)

	require.NoError(t, drv.SetVersion(3, true))
	version, dirty, err := drv.Version()
	require.NoError(t, err)
	require.Equal(t, 3, version)
	require.True(t, dirty)

	require.NoError(t, drv.SetVersion(database.NilVersion, false))
	version, _, err = drv.Version()
	require.NoError(t, err)
	require.Equal(t, database.NilVersion, version)
}

func TestMigrationDriver_Lock(t *testing.T) {
	drv, err := newMigrationDriver(openRawDB(t))
	require.NoError(t, err)

	require.NoError(t, drv.Lock())
	require.ErrorIs(t, drv.Lock(), database.ErrLocked)
	require.NoError(t, drv.Unlock())
	require.ErrorIs(t, drv.Unlock(), database.ErrNotLocked)
}

func TestMigrationDriver_RunFailureKeepsSchema(t *testing.T) {
	db := openRawDB(t)
	drv, err := newMigrationDriver(db)
	require.NoError(t, err)

	err = drv.Run(strings.NewReader("CREATE TABLE ok (id INTEGER); NOT SQL;"))
	var dbErr *database.Error
	require.ErrorAs(t, err, &dbErr)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name='ok'").Scan(&n))
	require.Zero(t, n)
}

func TestMigrationDriver_Drop(t *testing.T) {
	db := openRawDB(t)
	require.NoError(t, runMigrations(db))

	drv, err := newMigrationDriver(db)
	require.NoError(t, err)
	require.NoError(t, drv.Drop())

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name='accounts'").Scan(&n))
	require.Zero(t, n)
	version, _, err := drv.Version()
	require.NoError(t, err)
	require.Equal(t, database.NilVersion, version)

	require.NoError(t, runMigrations(db))
}
