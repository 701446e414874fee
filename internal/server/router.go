package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
	"foodcourt/internal/menu"
	"foodcourt/internal/order"
	"foodcourt/internal/restaurant"
	"foodcourt/internal/user"
)

type Modules struct {
	Users       *user.Module
	Restaurants *restaurant.Module
	Menus       *menu.Module
	Orders      *order.Module
}

// NewRouter wires all endpoints. Everything except login, health and
// metrics sits behind the token filter; the filter itself never rejects,
// the per-route gates do.
func NewRouter(m Modules, tokens *auth.TokenManager, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(Recover(logger))

	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/auth/login", m.Users.Controller.HandleLogin)

	adminOnly := auth.RequireRole(domain.RoleAdmin)

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(tokens))

		// Registration is admin-driven; the seeded admin bootstraps it.
		r.With(adminOnly).Post("/auth/register", m.Users.Controller.HandleRegister)

		r.Route("/user", func(r chi.Router) {
			r.With(adminOnly).Get("/", m.Users.Controller.HandleList)
			r.With(adminOnly).Delete("/{id}", m.Users.Controller.HandleDelete)

			// Ownership is checked in the handler once the target is known.
			r.With(auth.RequireAuthenticated).Get("/{id}", m.Users.Controller.HandleGetByID)
			r.With(auth.RequireAuthenticated).Put("/{id}", m.Users.Controller.HandleUpdate)
		})

		r.Route("/restaurant", func(r chi.Router) {
			r.With(auth.RequireAuthenticated).Get("/", m.Restaurants.Controller.HandleList)
			r.With(auth.RequireAuthenticated).Get("/{id}", m.Restaurants.Controller.HandleGetByID)

			r.With(adminOnly).Post("/", m.Restaurants.Controller.HandleCreate)
			r.With(adminOnly).Put("/{id}", m.Restaurants.Controller.HandleUpdate)
			r.With(adminOnly).Delete("/{id}", m.Restaurants.Controller.HandleDelete)
		})

		r.Route("/menu", func(r chi.Router) {
			r.With(auth.RequireAuthenticated).Get("/restaurant/{restaurantId}", m.Menus.Controller.HandleListByRestaurant)
			r.With(auth.RequireAuthenticated).Get("/{id}", m.Menus.Controller.HandleGetByID)

			r.With(adminOnly).Post("/", m.Menus.Controller.HandleCreate)
			r.With(adminOnly).Put("/{id}", m.Menus.Controller.HandleUpdate)
			r.With(adminOnly).Delete("/{id}", m.Menus.Controller.HandleDelete)
		})

		r.Route("/order", func(r chi.Router) {
			r.With(auth.RequireRole(domain.RoleUser)).Post("/", m.Orders.Controller.HandlePlace)

			r.With(auth.RequireAuthenticated).Get("/{id}", m.Orders.Controller.HandleGetByID)
			r.With(auth.RequireAuthenticated).Patch("/{id}/status", m.Orders.Controller.HandleUpdateStatus)

			r.With(adminOnly).Get("/", m.Orders.Controller.HandleListAll)
			r.With(adminOnly).Get("/user/{userId}", m.Orders.Controller.HandleListByUser)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	apperrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}
