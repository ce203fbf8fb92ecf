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

// AdminCarHandler implements the administrative car management endpoints:
// creation on behalf of any user, unrestricted listing, status transitions
// and removal.
type AdminCarHandler struct {
	carStore   store.CarStore
	brandStore store.BrandStore
	userStore  store.UserStore
	rules      *validation.Rules
}

// NewAdminCarHandler creates an AdminCarHandler with the given dependencies.
func NewAdminCarHandler(carStore store.CarStore, brandStore store.BrandStore, userStore store.UserStore, rules *validation.Rules) *AdminCarHandler {
	return &AdminCarHandler{
		carStore:   carStore,
		brandStore: brandStore,
		userStore:  userStore,
		rules:      rules,
	}
}

// Create handles POST /admin/cars. Unlike the self-service route, the owner
// comes from the body and its existence is checked.
func (h *AdminCarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCarRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	car, err := buildCar(r, h.brandStore, h.rules, &req)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	ownerExists, err := h.userStore.ExistsByID(r.Context(), req.OwnerID)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !ownerExists {
		HandleError(w, r, domain.NewConflictError("O usuário proprietário informado não existe."))
		return
	}
	car.OwnerID = req.OwnerID

	taken, err := h.carStore.ExistsByPlate(r.Context(), car.Plate, 0)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if taken {
		HandleError(w, r, domain.NewConflictError("Já existe um carro cadastrado com esta placa."))
		return
	}

	if err := h.carStore.Create(r.Context(), car); err != nil {
		HandleError(w, r, translateCarDuplicate(err))
		return
	}

	logger.FromContext(r.Context()).Info("car created by admin",
		"car_id", car.ID, "owner_id", car.OwnerID, "plate", car.Plate)

	detail, err := h.carStore.GetByID(r.Context(), car.ID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCarResponse(detail))
}

// List handles GET /admin/cars. It lists every car regardless of status,
// with an optional status filter.
func (h *AdminCarHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r, defaultAdminPageLimit)

	cars, total, err := h.carStore.List(r.Context(), store.CarListParams{
		Offset: page.Offset,
		Limit:  page.Limit,
		Status: domain.CarStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	resp := CarListResponse{
		Cars:   make([]CarResponse, 0, len(cars)),
		Offset: page.Offset,
		Limit:  page.Limit,
		Total:  total,
	}
	for i := range cars {
		resp.Cars = append(resp.Cars, NewCarResponse(&cars[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ChangeStatus handles PATCH /admin/cars/{id}/status?status=.
func (h *AdminCarHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.CarStatus(r.URL.Query().Get("status"))
	if !status.IsValid() {
		HandleError(w, r, domain.NewValidationError("status", "Valor inválido para o campo status."))
		return
	}

	h.setStatus(w, r, status)
}

// Deactivate handles PATCH /admin/cars/{id}/deactivate. It marks the listing
// unavailable without removing it.
func (h *AdminCarHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.CarStatusUnavailable)
}

// Delete handles DELETE /admin/cars/{id}.
func (h *AdminCarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.carStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			HandleError(w, r, domain.NewNotFoundError("Carro não encontrado."))
			return
		}
		HandleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("car deleted by admin", "car_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminCarHandler) setStatus(w http.ResponseWriter, r *http.Request, status domain.CarStatus) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.carStore.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			HandleError(w, r, domain.NewNotFoundError("Carro não encontrado."))
			return
		}
		HandleError(w, r, err)
		return
	}

	detail, err := h.carStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCarResponse(detail))
}
