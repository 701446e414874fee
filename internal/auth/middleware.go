package auth

import (
	"net/http"
	"strings"

	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

// Authenticate extracts and verifies the bearer credential. It never
// rejects: on a missing or bad token it simply leaves the principal out of
// the context and lets the downstream gates answer 401. That keeps the
// login path free and lets ADMIN-gated endpoints distinguish 401 from 403.
func Authenticate(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			principal := Principal{
				UserID: claims.UserID,
				Email:  claims.Subject,
				Role:   claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole gates an endpoint on an allowed role set. A missing
// principal is 401, a present one with the wrong role 403.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				apperrors.WriteHTTP(w, r, apperrors.NewUnauthenticatedError("authentication required"))
				return
			}

			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			apperrors.WriteHTTP(w, r, apperrors.NewForbiddenError("access denied: insufficient role"))
		})
	}
}

// RequireAuthenticated gates endpoints whose ownership check happens
// inside the handler, once the resource owner is known.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFrom(r.Context()); !ok {
			apperrors.WriteHTTP(w, r, apperrors.NewUnauthenticatedError("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
