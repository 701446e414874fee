package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	apperrors "foodcourt/internal/errors"
)

type Controller struct {
	service Service
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

func NewController(service Service, tokens *auth.TokenManager, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// HandleLogin is the only public endpoint; it sits outside the auth filter.
func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		apperrors.WriteHTTP(w, r, apperrors.NewUnauthenticatedError("invalid email or password"))
		return
	}

	user, err := c.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	token, err := c.tokens.Generate(user)
	if err != nil {
		c.logger.Error("token generation failed", zap.Error(err))
		apperrors.WriteHTTP(w, r, apperrors.NewInternalError("generating token", err))
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(c.tokens.TTL().Minutes()),
	})
}

// HandleRegister creates an account. ADMIN-gated at the router; field
// failures use the success/errors envelope rather than the uniform one.
func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Errors:  map[string]string{"body": "request body must be valid JSON"},
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Errors:  fieldErrors(err),
		})
		return
	}

	user, err := c.service.Register(r.Context(), req)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusCreated, MutationResponse{
		Success: true,
		Data:    toUserSummary(user),
	})
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List(r.Context())
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i]))
	}

	apperrors.WriteJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	principal, _ := auth.PrincipalFrom(r.Context())
	if !principal.CanAccess(id) {
		apperrors.WriteHTTP(w, r, apperrors.NewForbiddenError("you cannot access this user"))
		return
	}

	user, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, toUserDTO(user))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	principal, _ := auth.PrincipalFrom(r.Context())
	if !principal.CanAccess(id) {
		apperrors.WriteHTTP(w, r, apperrors.NewForbiddenError("you cannot update this user"))
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Errors:  map[string]string{"body": "request body must be valid JSON"},
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Errors:  fieldErrors(err),
		})
		return
	}

	user, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, MutationResponse{
		Success: true,
		Data:    toUserSummary(user),
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.service.Delete(r.Context(), id); err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
