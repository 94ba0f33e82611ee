package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
	"themesjet/internal/testutil"
)

// Integration Tests

func TestUserRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	id, err := repo.Insert(context.Background(), domain.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	assert.Greater(t, id, uint(0))

	byID, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, domain.RoleUser, byEmail.Role)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	seed := domain.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", Role: domain.RoleUser}
	_, err := repo.Insert(context.Background(), seed)
	require.NoError(t, err)

	_, err = repo.Insert(context.Background(), seed)
	require.Error(t, err)
	assert.True(t, isDuplicateEntry(err))
}
