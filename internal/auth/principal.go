package auth

import (
	"context"

	"foodcourt/internal/domain"
)

type contextKey struct{}

var principalKey contextKey

// Principal is the authenticated caller bound to a request.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// CanAccess implements the self-or-admin predicate: admins reach any
// resource, everyone else only resources they own.
func (p Principal) CanAccess(ownerID string) bool {
	return p.IsAdmin() || p.UserID == ownerID
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
