package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

type userService struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("email %s is already registered", req.Email))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := &domain.User{
		UserID:       uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.Role(req.Role),
	}

	// The unique index on email backstops the read-then-write race.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("userId", user.UserID),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, apperrors.NewUnauthenticatedError("invalid email or password")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.NewUnauthenticatedError("invalid email or password")
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update changes username and email only; role and password hash are
// preserved from the stored record.
func (s *userService) Update(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Username = req.Username
	existing.Email = req.Email

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SeedAdmin provisions the bootstrap ADMIN account when no users exist.
// Registration itself is ADMIN-gated, so a fresh deployment needs this
// to mint its first credential.
func (s *userService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}

	admin := &domain.User{
		UserID:       uuid.New().String(),
		Username:     "admin",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("seed admin created", zap.String("email", email))
	return nil
}
