package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/store"
)

const defaultAdminPageLimit = 20

// AdminUserHandler implements the administrative user management endpoints.
// All routes are mounted behind the admin gate.
type AdminUserHandler struct {
	userStore store.UserStore
}

// NewAdminUserHandler creates an AdminUserHandler backed by the given store.
func NewAdminUserHandler(userStore store.UserStore) *AdminUserHandler {
	return &AdminUserHandler{userStore: userStore}
}

// List handles GET /admin/users. The search parameter matches username,
// full name or email. The response is a plain array.
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r, defaultAdminPageLimit)

	users, _, err := h.userStore.List(r.Context(), store.UserListParams{
		Offset: page.Offset,
		Limit:  page.Limit,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, NewUserResponse(&users[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /admin/users/{id}.
func (h *AdminUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.fetchUser(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// Activate handles PATCH /admin/users/{id}/activate.
func (h *AdminUserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate handles PATCH /admin/users/{id}/deactivate.
func (h *AdminUserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// ChangeRole handles PATCH /admin/users/{id}/role?role=.
func (h *AdminUserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	role := domain.UserRole(r.URL.Query().Get("role"))
	if !role.IsValid() {
		HandleError(w, r, domain.NewValidationError("role", "Valor inválido para o campo role."))
		return
	}

	user, err := h.fetchUser(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	user.Role = role
	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user role changed",
		"user_id", user.ID, "role", string(role))

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

func (h *AdminUserHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	user, err := h.fetchUser(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	user.IsActive = active
	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user activity changed",
		"user_id", user.ID, "is_active", active)

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

func (h *AdminUserHandler) fetchUser(r *http.Request) (*domain.User, error) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		return nil, err
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewNotFoundError("Usuário não encontrado.")
		}
		return nil, err
	}
	return user, nil
}
