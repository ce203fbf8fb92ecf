package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/store"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

// AdminBrandHandler implements the administrative brand catalog endpoints.
type AdminBrandHandler struct {
	brandStore store.BrandStore
	rules      *validation.Rules
}

// NewAdminBrandHandler creates an AdminBrandHandler with the given
// dependencies.
func NewAdminBrandHandler(brandStore store.BrandStore, rules *validation.Rules) *AdminBrandHandler {
	return &AdminBrandHandler{brandStore: brandStore, rules: rules}
}

// Create handles POST /admin/brands.
func (h *AdminBrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	name, err := validation.BrandName(req.Name)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	description, err := h.rules.BrandDescription(req.Description)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	taken, err := h.brandStore.ExistsByName(r.Context(), name, 0)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if taken {
		HandleError(w, r, domain.NewConflictError("Já existe uma marca cadastrada com esse nome."))
		return
	}

	brand := &domain.Brand{
		Name:        name,
		Description: description,
		IsActive:    true,
	}

	if err := h.brandStore.Create(r.Context(), brand); err != nil {
		HandleError(w, r, translateBrandDuplicate(err))
		return
	}

	logger.FromContext(r.Context()).Info("brand created", "brand_id", brand.ID, "name", brand.Name)

	shared.RespondWithJSON(w, r, http.StatusCreated, NewBrandResponse(brand))
}

// Update handles PUT /admin/brands/{id}. The name uniqueness check excludes
// the brand's own row and runs only when the name actually changes.
func (h *AdminBrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	brand, err := h.fetchBrand(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req UpdateBrandRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	if req.Name != nil {
		name, err := validation.BrandName(*req.Name)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		if name != brand.Name {
			taken, err := h.brandStore.ExistsByName(r.Context(), name, brand.ID)
			if err != nil {
				HandleError(w, r, err)
				return
			}
			if taken {
				HandleError(w, r, domain.NewConflictError("Já existe outra marca com esse nome."))
				return
			}
		}
		brand.Name = name
	}

	if req.Description != nil {
		description, err := h.rules.BrandDescription(*req.Description)
		if err != nil {
			HandleError(w, r, err)
			return
		}
		brand.Description = description
	}

	if err := h.brandStore.Update(r.Context(), brand); err != nil {
		HandleError(w, r, translateBrandDuplicate(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewBrandResponse(brand))
}

// Activate handles PATCH /admin/brands/{id}/activate.
func (h *AdminBrandHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate handles PATCH /admin/brands/{id}/deactivate.
func (h *AdminBrandHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// Delete handles DELETE /admin/brands/{id}. Deletion is blocked while cars
// still reference the brand.
func (h *AdminBrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	hasCars, err := h.brandStore.HasCars(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if hasCars {
		HandleError(w, r, domain.NewConflictError(
			"Não é possível deletar a marca porque existem carros associados."))
		return
	}

	if err := h.brandStore.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			HandleError(w, r, domain.NewNotFoundError("Marca não encontrada."))
		case errors.Is(err, store.ErrReferenced):
			HandleError(w, r, domain.NewConflictError(
				"Não é possível deletar a marca porque existem carros associados."))
		default:
			HandleError(w, r, err)
		}
		return
	}

	logger.FromContext(r.Context()).Info("brand deleted", "brand_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminBrandHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	brand, err := h.fetchBrand(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	brand.IsActive = active
	if err := h.brandStore.Update(r.Context(), brand); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewBrandResponse(brand))
}

func (h *AdminBrandHandler) fetchBrand(r *http.Request) (*domain.Brand, error) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		return nil, err
	}

	brand, err := h.brandStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewNotFoundError("Marca não encontrada.")
		}
		return nil, err
	}
	return brand, nil
}

func translateBrandDuplicate(err error) error {
	if errors.Is(err, store.ErrBrandNameExists) {
		return domain.NewConflictError("Já existe uma marca cadastrada com esse nome.")
	}
	return err
}
