package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dylan-PlymouthUni/trailhead/internal/auth"
	"github.com/Dylan-PlymouthUni/trailhead/internal/metrics"
	"github.com/Dylan-PlymouthUni/trailhead/internal/user"
	"github.com/jackc/pgx/v5"
)

// UserStore resolves a verified email to its role record.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// CredentialVerifier checks an email/password pair against the external
// authentication service.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}

// authHandler groups authentication HTTP handlers.
type authHandler struct {
	users    UserStore
	verifier CredentialVerifier
	tokens   *auth.TokenService
	metrics  *metrics.Metrics
}

func newAuthHandler(users UserStore, verifier CredentialVerifier, tokens *auth.TokenService, m *metrics.Metrics) *authHandler {
	return &authHandler{users: users, verifier: verifier, tokens: tokens, metrics: m}
}

// Login handles POST /login. Password checking is delegated to the external
// authenticator; on success the role is looked up locally and a signed token
// is issued. Nothing is persisted.
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "failed to parse request body")
		return
	}

	verified, err := h.verifier.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("credential verification failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.authFailure("verifier_error")
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}
	if !verified {
		// No distinction is surfaced between wrong password and unknown email.
		h.authFailure("rejected")
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.authFailure("unknown_role")
			writeError(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to look up user")
		return
	}

	token, err := h.tokens.Issue(u.Email, u.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to issue token")
		return
	}

	if h.metrics != nil {
		h.metrics.AuthSuccessesTotal.Inc()
	}
	slog.Info("login", "email", u.Email, "role", u.Role, "request_id", RequestIDFromContext(r.Context()))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Authentication successful",
		"role":    u.Role,
		"token":   token,
	})
}

func (h *authHandler) authFailure(reason string) {
	if h.metrics != nil {
		h.metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	}
}
