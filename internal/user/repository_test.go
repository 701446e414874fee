package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
	"foodcourt/internal/testutil"
)

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func testUser(id, email string) *domain.User {
	return &domain.User{
		UserID:       id,
		Username:     "alice",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleUser,
	}
}

func TestMySQLRepository_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	require.NoError(t, repo.Create(context.Background(), testUser("u1", "alice@example.com")))

	byID, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Equal(t, domain.RoleUser, byID.Role)

	byEmail, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.UserID)
}

func TestMySQLRepository_Create_DuplicateEmailConflicts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	require.NoError(t, repo.Create(context.Background(), testUser("u1", "alice@example.com")))

	err := repo.Create(context.Background(), testUser("u2", "alice@example.com"))
	ce, ok := apperrors.IsConflictError(err)
	require.True(t, ok)
	assert.NotNil(t, ce)
}

func TestMySQLRepository_Update_SameValuesIsNotMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	u := testUser("u1", "alice@example.com")
	require.NoError(t, repo.Create(context.Background(), u))

	// clientFoundRows makes an identical rewrite count as matched, so
	// this must not surface as a missing record.
	assert.NoError(t, repo.Update(context.Background(), u))
}

func TestMySQLRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	require.NoError(t, repo.Create(context.Background(), testUser("u1", "alice@example.com")))
	require.NoError(t, repo.Delete(context.Background(), "u1"))

	_, err := repo.FindByID(context.Background(), "u1")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(context.Background(), "u1")
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
