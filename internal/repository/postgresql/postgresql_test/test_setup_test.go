package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/attendly/checkin-backend-go/internal/pkg/database"
	"github.com/attendly/checkin-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// requireTestDB connects to the database named by TEST_DATABASE_URL and
// ensures the schema exists. Tests are skipped when the variable is unset
// so the suite stays runnable without a local Postgres.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
		require.NoError(t, postgresql.EnsureSchema(context.Background(), db))
		testDB = db
	})
	require.NotNil(t, testDB)

	return testDB
}

// truncateTables clears the attendance and directory tables between tests.
func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"attendance_records", "employees", "departments"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
}
