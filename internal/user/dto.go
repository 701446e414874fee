package user

import "foodcourt/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type UserDTO struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type UserSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// MutationResponse is the register/update envelope: success with a
// summary, or a field-keyed error map.
type MutationResponse struct {
	Success bool              `json:"success"`
	Data    *UserSummary      `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func toUserSummary(u *domain.User) *UserSummary {
	return &UserSummary{
		ID:    u.UserID,
		Email: u.Email,
		Role:  u.Role,
	}
}
