package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
)

func newControllerRouter(f *fixture, principal auth.Principal) http.Handler {
	ctrl := NewController(f.svc, zap.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithPrincipal(req.Context(), principal)))
		})
	})
	r.Post("/order", ctrl.HandlePlace)
	r.Get("/order/{id}", ctrl.HandleGetByID)
	r.Patch("/order/{id}/status", ctrl.HandleUpdateStatus)
	return r
}

func TestController_Place_Returns201(t *testing.T) {
	f := newFixture()
	router := newControllerRouter(f, auth.Principal{UserID: "u1", Role: domain.RoleUser})

	body := `{"restaurantId":"r1","items":[{"menuItemId":"m1","quantity":2}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var view OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "u1", view.UserID)
	assert.Equal(t, string(domain.OrderStatusPlaced), view.Status)
	assert.InDelta(t, 9.00, view.TotalPrice, 1e-9)
}

func TestController_Get_OwnerAllowed(t *testing.T) {
	f := newFixture()
	placed, err := f.svc.Place(context.Background(), "u1", placeRequest())
	require.NoError(t, err)

	router := newControllerRouter(f, auth.Principal{UserID: "u1", Role: domain.RoleUser})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order/"+placed.OrderID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestController_Get_StrangerForbidden(t *testing.T) {
	f := newFixture()
	placed, err := f.svc.Place(context.Background(), "u1", placeRequest())
	require.NoError(t, err)

	router := newControllerRouter(f, auth.Principal{UserID: "intruder", Role: domain.RoleUser})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order/"+placed.OrderID, nil))

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body["errorCode"])
}

func TestController_Get_AdminAllowed(t *testing.T) {
	f := newFixture()
	placed, err := f.svc.Place(context.Background(), "u1", placeRequest())
	require.NoError(t, err)

	router := newControllerRouter(f, auth.Principal{UserID: "root", Role: domain.RoleAdmin})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order/"+placed.OrderID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestController_UpdateStatus_MissingParamRejected(t *testing.T) {
	f := newFixture()
	placed, err := f.svc.Place(context.Background(), "u1", placeRequest())
	require.NoError(t, err)

	router := newControllerRouter(f, auth.Principal{UserID: "u1", Role: domain.RoleUser})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/order/"+placed.OrderID+"/status", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestController_UpdateStatus_IllegalTransitionIs409(t *testing.T) {
	f := newFixture()
	placed, err := f.svc.Place(context.Background(), "u1", placeRequest())
	require.NoError(t, err)

	router := newControllerRouter(f, auth.Principal{UserID: "u1", Role: domain.RoleUser})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodPatch, "/order/"+placed.OrderID+"/status?status=DELIVERED", nil))

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body["errorCode"])
}
