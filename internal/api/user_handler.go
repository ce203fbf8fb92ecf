package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/store"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

// UserHandler implements public registration and self-service profile
// management. There is no public user listing or lookup-by-id; that would
// invite account enumeration.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
}

// NewUserHandler creates a UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{userStore: userStore, hasher: hasher}
}

// Register handles POST /users. Registration is open; new accounts always
// start active with the regular user role.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	username, err := validation.Username(req.Username)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	fullName, err := validation.FullName(req.FullName)
	if err != nil {
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

	// Username is checked before email so a request failing both reports
	// the username conflict.
	taken, err := h.userStore.ExistsByUsername(r.Context(), username, 0)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if taken {
		HandleError(w, r, domain.NewConflictError(
			"Username não disponível. Já existe um usuário cadastrado com este username."))
		return
	}

	taken, err = h.userStore.ExistsByEmail(r.Context(), email, 0)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if taken {
		HandleError(w, r, domain.NewConflictError(
			"Email já existe. Já existe um usuário cadastrado com este email."))
		return
	}

	hashed, err := h.hasher.Hash(password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	user := &domain.User{
		Username:       username,
		FullName:       fullName,
		Email:          email,
		HashedPassword: hashed,
		Role:           domain.RoleUser,
		IsActive:       true,
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleError(w, r, translateUserDuplicate(err))
		return
	}

	logger.FromContext(r.Context()).Info("user registered", "user_id", user.ID)

	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UpdateMe handles PUT /users/me. Fields absent from the body are left
// untouched; username and email uniqueness checks exclude the caller's own
// row.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	updated := *user

	if req.Username != nil {
		username, err := validation.Username(*req.Username)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		if username != user.Username {
			taken, err := h.userStore.ExistsByUsername(r.Context(), username, user.ID)
			if err != nil {
				HandleError(w, r, err)
				return
			}
			if taken {
				HandleError(w, r, domain.NewConflictError("Username já está em uso."))
				return
			}
		}
		updated.Username = username
	}

	if req.Email != nil {
		email, err := validation.Email(*req.Email)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		if email != user.Email {
			taken, err := h.userStore.ExistsByEmail(r.Context(), email, user.ID)
			if err != nil {
				HandleError(w, r, err)
				return
			}
			if taken {
				HandleError(w, r, domain.NewConflictError("Email já está em uso."))
				return
			}
		}
		updated.Email = email
	}

	if req.FullName != nil {
		fullName, err := validation.FullName(*req.FullName)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		updated.FullName = fullName
	}

	if req.Password != nil {
		password, err := validation.Password(*req.Password)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		hashed, err := h.hasher.Hash(password)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		updated.HashedPassword = hashed
	}

	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := h.userStore.Update(r.Context(), &updated); err != nil {
		HandleError(w, r, translateUserDuplicate(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(&updated))
}

// DeleteMe handles DELETE /users/me. The schema restricts deletion while the
// user still owns cars; that surfaces as a conflict.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.userStore.Delete(r.Context(), user.ID); err != nil {
		HandleError(w, r, translateUserDelete(err))
		return
	}

	logger.FromContext(r.Context()).Info("user deleted own account", "user_id", user.ID)

	w.WriteHeader(http.StatusNoContent)
}

// translateUserDuplicate converts uniqueness races caught by the store into
// the same conflicts the pre-checks report.
func translateUserDuplicate(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameExists):
		return domain.NewConflictError(
			"Username não disponível. Já existe um usuário cadastrado com este username.")
	case errors.Is(err, store.ErrEmailExists):
		return domain.NewConflictError(
			"Email já existe. Já existe um usuário cadastrado com este email.")
	default:
		return err
	}
}

func translateUserDelete(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return domain.NewNotFoundError("Usuário não encontrado.")
	case errors.Is(err, store.ErrReferenced):
		return domain.NewConflictError(
			"Não é possível excluir a conta enquanto existirem carros cadastrados.")
	default:
		return err
	}
}
