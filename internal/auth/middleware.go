package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// ViewerAuthMiddleware gates read routes. The credential is optional, but the
// role check runs against whatever claims are present: an absent credential
// yields an empty claim set, which never satisfies the role check, so
// anonymous callers are rejected with 403 (soft gate, defaults to deny).
func ViewerAuthMiddleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeForbidden(w, "a role of Admin or User is required")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				writeTokenError(w, r, err)
				return
			}
			if !claims.CanView() {
				writeForbidden(w, "a role of Admin or User is required")
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuthMiddleware gates mutation routes. The role claim must be exactly
// Admin; an absent credential is an empty claim set and fails the role check
// the same way a non-admin role does.
func AdminAuthMiddleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeForbidden(w, "admin role required")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				writeTokenError(w, r, err)
				return
			}
			if !claims.IsAdmin() {
				writeForbidden(w, "admin role required")
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeTokenError(w http.ResponseWriter, r *http.Request, err error) {
	if err == ErrTokenMalformed {
		// Malformed credentials are logged before responding.
		slog.Error("unprocessable credential", "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusUnprocessableEntity, "validation_error", "malformed authorization token")
		return
	}
	writeUnauthorized(w, "invalid or expired token")
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorBody{
			Code:    code,
			Message: message,
		},
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeJSONError(w, http.StatusUnauthorized, "unauthorized", message)
}

func writeForbidden(w http.ResponseWriter, message string) {
	writeJSONError(w, http.StatusForbidden, "forbidden", message)
}
