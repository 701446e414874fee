package menu

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "foodcourt/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) decode(w http.ResponseWriter, r *http.Request) (*MenuRequest, bool) {
	var req MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("invalid JSON body",
			apperrors.ValidationDetail{Field: "body", Message: "request body must be valid JSON"}))
		return nil, false
	}

	var details []apperrors.ValidationDetail
	if req.RestaurantID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "restaurantId", Message: "restaurantId is required"})
	}
	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must not be negative"})
	}
	if len(details) > 0 {
		apperrors.WriteHTTP(w, r, apperrors.NewValidationError("validation failed", details...))
		return nil, false
	}

	return &req, true
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decode(w, r)
	if !ok {
		return
	}

	dto, err := c.service.Create(r.Context(), *req)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusCreated, dto)
}

func (c *Controller) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	dto, err := c.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, dto)
}

func (c *Controller) HandleListByRestaurant(w http.ResponseWriter, r *http.Request) {
	dtos, err := c.service.ListByRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decode(w, r)
	if !ok {
		return
	}

	dto, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), *req)
	if err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, dto)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apperrors.WriteHTTP(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}
