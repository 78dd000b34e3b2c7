package auth

import "context"

// Roles stored in the role table and carried in the token's role claim.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Claims is the authenticated caller identity extracted from a session token.
type Claims struct {
	Email string
	Role  string
}

// IsAdmin returns true if the caller holds the Admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanView returns true if the caller's role grants read access to trails.
func (c *Claims) CanView() bool {
	return c.Role == RoleAdmin || c.Role == RoleUser
}

type contextKey int

const claimsContextKey contextKey = iota

// ContextWithClaims returns a new context carrying the given claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the claims from the context, or nil if not present.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey).(*Claims)
	return claims
}
