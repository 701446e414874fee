package order

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

// HandlePlace creates an order for the caller. The owner is always the
// authenticated principal; the body cannot place orders for someone else.
func (c *Controller) HandlePlace(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"}))
		return
	}

	if req.RestaurantID == "" {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "restaurantId", Message: "restaurantId is required"}))
		return
	}

	view, err := c.service.Place(r.Context(), principal.UserID, req)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusCreated, view)
}

func (c *Controller) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	view, err := c.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	principal, _ := auth.PrincipalFrom(r.Context())
	if !principal.CanAccess(view.UserID) {
		apperrors.WriteHTTP(w, r, apperrors.NewForbiddenError("you cannot access this order"))
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, view)
}

// HandleListByUser is admin-gated at the router; it queries the
// secondary index on user_id.
func (c *Controller) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	views, err := c.service.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, views)
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	views, err := c.service.ListAll(r.Context())
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, views)
}

// HandleUpdateStatus moves an order along its lifecycle. Owners may
// update their own orders (in practice: cancel), admins any order.
func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status := r.URL.Query().Get("status")
	if status == "" {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "status", Message: "status query parameter is required"}))
		return
	}

	current, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	principal, _ := auth.PrincipalFrom(r.Context())
	if !principal.CanAccess(current.UserID) {
		apperrors.WriteHTTP(w, r, apperrors.NewForbiddenError("you cannot update this order"))
		return
	}

	view, err := c.service.UpdateStatus(r.Context(), id, domain.OrderStatus(status))
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, view)
}
