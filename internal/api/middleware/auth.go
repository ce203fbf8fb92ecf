// Package middleware provides the HTTP middleware chain: request tracing,
// bearer-token authentication and the admin gate.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// AuthMiddleware authenticates requests from the Authorization header and
// resolves the token subject to an active user.
type AuthMiddleware struct {
	tokenService auth.TokenService
	userStore    store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userStore:    userStore,
	}
}

// Authenticate validates the bearer access token, loads the subject user and
// stores it in the request context. Missing, malformed, expired or
// wrong-type tokens, and unknown or inactive subjects, all end the request
// with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		claims, err := m.tokenService.VerifyToken(r.Context(), parts[1], auth.TokenTypeAccess)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token type")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
			}
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logger.FromContext(r.Context()).Error("failed to load token subject",
					"error", err, "user_id", claims.UserID)
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		if !user.IsActive {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		ctx := shared.WithCurrentUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route to admin users. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := shared.CurrentUser(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if !user.IsAdmin() {
			shared.RespondWithError(w, r, http.StatusForbidden, "Acesso restrito a administradores.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
