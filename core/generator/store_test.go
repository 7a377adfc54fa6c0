package generator_test

import (
	"context"
	"errors"
	"testing"

	"blocks-generator/core/database"
	"blocks-generator/core/generator"
	"blocks-generator/core/world"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		store := openStore(t)
		require.NoError(t, store.Upsert(ctx, home, "ab"))
		require.NoError(t, store.Upsert(ctx, world.Coord{World: "nether", X: -1, Y: 5, Z: 2}, "ores"))

		rows, err := store.ScanAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []generator.Row{
			{World: "w", X: 10, Y: 64, Z: 10, Type: "ab"},
			{World: "nether", X: -1, Y: 5, Z: 2, Type: "ores"},
		}, rows)
	})

	t.Run("UpsertIsIdempotent", func(t *testing.T) {
		store := openStore(t)
		require.NoError(t, store.Upsert(ctx, home, "ab"))
		require.NoError(t, store.Upsert(ctx, home, "ab"))
		require.NoError(t, store.Upsert(ctx, home, "ores"))

		rows, err := store.ScanAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "ores", rows[0].Type)
		assert.Equal(t, home, rows[0].Coord())
	})

	t.Run("DeleteAbsentRow", func(t *testing.T) {
		store := openStore(t)
		assert.NoError(t, store.Delete(ctx, home))

		require.NoError(t, store.Upsert(ctx, home, "ab"))
		require.NoError(t, store.Delete(ctx, home))
		rows, err := store.ScanAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("SchemaColumns", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		defer database.Close(db)

		_, err = generator.OpenStore(db, zap.NewNop())
		require.NoError(t, err)

		cols, err := database.GetTableColumns(db, "generators")
		require.NoError(t, err)
		names := make([]string, 0, len(cols))
		for _, c := range cols {
			names = append(names, c.Field)
		}
		assert.Equal(t, []string{"world", "x", "y", "z", "type"}, names)
	})

	t.Run("IncompatibleTable", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		defer database.Close(db)
		require.NoError(t, db.Exec("CREATE TABLE generators (world TEXT)").Error)

		store, err := generator.OpenStore(db, nil)
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestStore_Failures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	t.Run("Upsert", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := generator.NewStore(db, nil)

		mock.ExpectExec("INSERT INTO `generators`").WillReturnError(boom)

		err := store.Upsert(ctx, home, "ab")
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := generator.NewStore(db, nil)

		mock.ExpectExec("DELETE FROM `generators`").
			WithArgs("w", 10, 64, 10).
			WillReturnError(boom)

		err := store.Delete(ctx, home)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ScanAll", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := generator.NewStore(db, nil)

		mock.ExpectQuery("SELECT \\* FROM `generators`").WillReturnError(boom)

		rows, err := store.ScanAll(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_MySQLScan(t *testing.T) {
	db, mock := setupMockDB(t)
	store := generator.NewStore(db, nil)

	rows := sqlmock.NewRows([]string{"world", "x", "y", "z", "type"}).
		AddRow("w", 10, 64, 10, "ab").
		AddRow("w", 0, 70, 0, "ores")
	mock.ExpectQuery("SELECT \\* FROM `generators`").WillReturnRows(rows)

	got, err := store.ScanAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, home, got[0].Coord())
	assert.Equal(t, "ores", got[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnresolvable(t *testing.T) {
	rows := []generator.Row{
		{World: "w", Type: "ab"},
		{World: "w", X: 1, Type: "AB"},
		{World: "w", X: 2, Type: "retired"},
	}
	got := generator.Unresolvable(rows, testRegistry())
	assert.Equal(t, []generator.Row{{World: "w", X: 2, Type: "retired"}}, got)
	assert.Empty(t, generator.Unresolvable(nil, testRegistry()))
}
