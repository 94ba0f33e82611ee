package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesjet/internal/domain"
	"themesjet/internal/testutil"
)

// Integration Tests

func TestAdminRepository_SumCompletedTotals_ExcludesPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	insert := `INSERT INTO Orders (userId, total, status) VALUES (?, ?, ?)`
	for _, row := range []struct {
		total  float64
		status string
	}{
		{10, domain.OrderStatusCompleted},
		{20, domain.OrderStatusCompleted},
		{30, domain.OrderStatusCompleted},
		{500, domain.OrderStatusPending},
	} {
		_, err := db.Exec(insert, 1, row.total, row.status)
		require.NoError(t, err)
	}

	sum, err := repo.SumCompletedTotals(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 60, sum, 0.001)
}

func TestAdminRepository_SumCompletedTotalsSince_RespectsCutoff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	insert := `INSERT INTO Orders (userId, total, status, createdAt) VALUES (?, ?, ?, ?)`
	now := time.Now()

	_, err := db.Exec(insert, 1, 100.0, domain.OrderStatusCompleted, now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = db.Exec(insert, 1, 40.0, domain.OrderStatusCompleted, now.Add(-100*time.Hour))
	require.NoError(t, err)

	sum, err := repo.SumCompletedTotalsSince(context.Background(), now.Add(-72*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 100, sum, 0.001)
}

func TestAdminRepository_FindRecentCompleted_AscendingWithinLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	insert := `INSERT INTO Orders (userId, total, status, createdAt) VALUES (?, ?, ?, ?)`
	base := time.Now().Add(-10 * time.Hour)
	for i := 0; i < 5; i++ {
		status := domain.OrderStatusCompleted
		if i == 2 {
			status = domain.OrderStatusPending
		}
		_, err := db.Exec(insert, 1, float64(10*(i+1)), status, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}

	orders, err := repo.FindRecentCompleted(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Newest three completed orders, returned oldest first.
	assert.InDelta(t, 20, orders[0].Total, 0.001)
	assert.InDelta(t, 40, orders[1].Total, 0.001)
	assert.InDelta(t, 50, orders[2].Total, 0.001)
	for _, order := range orders {
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	}
}

func TestAdminRepository_FindRecentUsersByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	insert := `INSERT INTO Users (name, email, passwordHash, role) VALUES (?, ?, ?, ?)`
	_, err := db.Exec(insert, "Ada", "ada@example.com", "x", domain.RoleUser)
	require.NoError(t, err)
	_, err = db.Exec(insert, "Root", "root@example.com", "x", domain.RoleAdmin)
	require.NoError(t, err)

	users, err := repo.FindRecentUsersByRole(context.Background(), domain.RoleUser, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ada@example.com", users[0].Email)
}
