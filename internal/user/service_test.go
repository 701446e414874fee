package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

type fakeRepo struct {
	users map[string]*domain.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*domain.User)}
}

func (r *fakeRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.NewConflictError(fmt.Sprintf("email %s is already registered", u.Email))
		}
	}
	clone := *u
	r.users[u.UserID] = &clone
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found with identifier : " + id)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found with identifier : " + email)
}

func (r *fakeRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.UserID]; !ok {
		return apperrors.NewNotFoundError("user not found with identifier : " + u.UserID)
	}
	clone := *u
	r.users[u.UserID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NewNotFoundError("user not found with identifier : " + id)
	}
	delete(r.users, id)
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, zap.NewNop()), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "USER",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.UserID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.True(t, auth.CheckPassword(u.PasswordHash, "password123"))
	assert.Len(t, repo.users, 1)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	req := RegisterRequest{Username: "alice", Email: "a@x", Password: "password123", Role: "USER"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Len(t, repo.users, 1)
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123", Role: "USER",
	})
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestService_Login_BadPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123", Role: "USER",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestService_Login_UnknownEmailIsUnauthenticated(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok, "unknown accounts must not be distinguishable from bad passwords")
}

func TestService_Update_PreservesRoleAndPassword(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123", Role: "ADMIN",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.UserID, UpdateUserRequest{
		Username: "alicia",
		Email:    "alicia@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "alicia", updated.Username)
	assert.Equal(t, "alicia@example.com", updated.Email)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "password123"))
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "missing")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestService_SeedAdmin(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.SeedAdmin(context.Background(), "root@example.com", "bootstrappw"))
	assert.Len(t, repo.users, 1)

	// Idempotent once any user exists.
	require.NoError(t, svc.SeedAdmin(context.Background(), "root@example.com", "bootstrappw"))
	assert.Len(t, repo.users, 1)

	u, err := svc.Login(context.Background(), "root@example.com", "bootstrappw")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestService_SeedAdmin_SkippedWithoutConfig(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.SeedAdmin(context.Background(), "", ""))
	assert.Empty(t, repo.users)
}
