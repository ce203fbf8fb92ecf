package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/store"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

// loginFailedMessage deliberately does not distinguish unknown email,
// inactive account and wrong password.
const loginFailedMessage = "Email ou senha inválidos"

// AuthHandler implements the login and token-refresh endpoints.
type AuthHandler struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	hasher       auth.PasswordHasher
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, tokenService auth.TokenService, hasher auth.PasswordHasher) *AuthHandler {
	return &AuthHandler{
		userStore:    userStore,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

// Login handles POST /auth/login. It authenticates by email and password and
// returns an access/refresh token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	email, err := validation.Email(req.Email)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	password, err := validation.Password(req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, loginFailedMessage)
			return
		}
		HandleError(w, r, err)
		return
	}

	if !user.IsActive || h.hasher.Compare(user.HashedPassword, password) != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, loginFailedMessage)
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(r.Context(), user.ID, user.Role)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	refreshToken, err := h.tokenService.GenerateRefreshToken(r.Context(), user.ID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user logged in", "user_id", user.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}

// Refresh handles POST /auth/refresh. It exchanges a valid refresh token for
// a new access token. The subject must still exist and be active.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	claims, err := h.tokenService.VerifyToken(r.Context(), req.RefreshToken, auth.TokenTypeRefresh)
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

	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		HandleError(w, r, err)
		return
	}

	if !user.IsActive {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(r.Context(), user.ID, user.Role)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
