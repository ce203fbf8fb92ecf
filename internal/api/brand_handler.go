package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/store"
)

const defaultBrandPageLimit = 10

// BrandHandler implements the public brand catalog endpoints.
type BrandHandler struct {
	brandStore store.BrandStore
}

// NewBrandHandler creates a BrandHandler backed by the given store.
func NewBrandHandler(brandStore store.BrandStore) *BrandHandler {
	return &BrandHandler{brandStore: brandStore}
}

// Get handles GET /brands/{id}.
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	brand, err := h.brandStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			HandleError(w, r, domain.NewNotFoundError("Marca não encontrada."))
			return
		}
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewBrandResponse(brand))
}

// List handles GET /brands. Without an explicit is_active parameter the
// listing shows active brands only.
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r, defaultBrandPageLimit)

	isActive := queryBool(r, "is_active")
	if isActive == nil {
		active := true
		isActive = &active
	}

	brands, total, err := h.brandStore.List(r.Context(), store.BrandListParams{
		Offset:   page.Offset,
		Limit:    page.Limit,
		Search:   r.URL.Query().Get("search"),
		IsActive: isActive,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	resp := BrandListResponse{
		Brands: make([]BrandResponse, 0, len(brands)),
		Offset: page.Offset,
		Limit:  page.Limit,
		Total:  total,
	}
	for i := range brands {
		resp.Brands = append(resp.Brands, NewBrandResponse(&brands[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
