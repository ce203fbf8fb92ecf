package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/store"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

const defaultCarPageLimit = 10

// CarHandler implements the public car browsing endpoints and the
// owner-scoped mutations.
type CarHandler struct {
	carStore   store.CarStore
	brandStore store.BrandStore
	userStore  store.UserStore
	rules      *validation.Rules
}

// NewCarHandler creates a CarHandler with the given dependencies.
func NewCarHandler(carStore store.CarStore, brandStore store.BrandStore, userStore store.UserStore, rules *validation.Rules) *CarHandler {
	return &CarHandler{carStore: carStore, brandStore: brandStore, userStore: userStore, rules: rules}
}

// Get handles GET /cars/{id}. The response embeds the brand and the owner.
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	detail, err := h.carStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, translateCarNotFound(err, id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCarResponse(detail))
}

// List handles GET /cars with the full filter set.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r, defaultCarPageLimit)

	q := r.URL.Query()
	params := store.CarListParams{
		Offset:       page.Offset,
		Limit:        page.Limit,
		Search:       q.Get("search"),
		CarType:      domain.CarType(q.Get("car_type")),
		Color:        domain.CarColor(q.Get("color")),
		FuelType:     domain.FuelType(q.Get("fuel_type")),
		Transmission: domain.TransmissionType(q.Get("transmission")),
		Condition:    domain.CarCondition(q.Get("condition")),
		Status:       domain.CarStatus(q.Get("status")),
		BrandID:      queryInt64(r, "brand_id"),
		OwnerID:      queryInt64(r, "owner_id"),
		MinYear:      queryInt(r, "min_year"),
		MaxYear:      queryInt(r, "max_year"),
		MinPrice:     queryFloat(r, "min_price"),
		MaxPrice:     queryFloat(r, "max_price"),
	}

	h.respondCarList(w, r, params)
}

// Create handles POST /cars. The authenticated caller is always the owner;
// an owner_id in the body is ignored.
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

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
	car.OwnerID = user.ID

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

	logger.FromContext(r.Context()).Info("car created",
		"car_id", car.ID, "owner_id", car.OwnerID, "plate", car.Plate)

	detail, err := h.carStore.GetByID(r.Context(), car.ID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCarResponse(detail))
}

// Update handles PUT /cars/{id}. A missing car reports 404 before the
// ownership check, and ownership is checked before any field validation.
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req UpdateCarRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	detail, err := h.carStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, translateCarNotFound(err, id))
		return
	}

	if !user.IsAdmin() {
		if err := auth.VerifyCarOwnership(user, detail.OwnerID); err != nil {
			HandleError(w, r, err)
			return
		}
	}

	updated, err := h.mergeCarUpdate(r, &detail.Car, &req)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.carStore.Update(r.Context(), updated); err != nil {
		HandleError(w, r, translateCarDuplicate(err))
		return
	}

	fresh, err := h.carStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCarResponse(fresh))
}

// Delete handles DELETE /cars/{id}. Missing car reports 404 before the
// ownership check.
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r, "id")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	detail, err := h.carStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, translateCarNotFound(err, id))
		return
	}

	if !user.IsAdmin() {
		if err := auth.VerifyCarOwnership(user, detail.OwnerID); err != nil {
			HandleError(w, r, err)
			return
		}
	}

	if err := h.carStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, translateCarNotFound(err, id))
		return
	}

	logger.FromContext(r.Context()).Info("car deleted", "car_id", id, "by_user_id", user.ID)

	w.WriteHeader(http.StatusNoContent)
}

// respondCarList runs the filtered listing and writes the paginated
// envelope. Shared by the public and admin listings.
func (h *CarHandler) respondCarList(w http.ResponseWriter, r *http.Request, params store.CarListParams) {
	cars, total, err := h.carStore.List(r.Context(), params)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	resp := CarListResponse{
		Cars:   make([]CarResponse, 0, len(cars)),
		Offset: params.Offset,
		Limit:  params.Limit,
		Total:  total,
	}
	for i := range cars {
		resp.Cars = append(resp.Cars, NewCarResponse(&cars[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// buildCar validates a creation request field by field and checks that the
// referenced brand exists. The owner is filled in by the caller. Shared by
// the public and admin creation routes.
func buildCar(r *http.Request, brandStore store.BrandStore, rules *validation.Rules, req *CreateCarRequest) (*domain.Car, error) {
	if !req.CarType.IsValid() {
		return nil, invalidFieldError("car_type")
	}
	if !req.Color.IsValid() {
		return nil, invalidFieldError("color")
	}
	if !req.FuelType.IsValid() {
		return nil, invalidFieldError("fuel_type")
	}
	if !req.Transmission.IsValid() {
		return nil, invalidFieldError("transmission")
	}
	if !req.Condition.IsValid() {
		return nil, invalidFieldError("condition")
	}

	status := req.Status
	if status == "" {
		status = domain.CarStatusAvailable
	}
	if !status.IsValid() {
		return nil, invalidFieldError("status")
	}

	model, err := validation.CarModel(req.Model)
	if err != nil {
		return nil, err
	}
	plate, err := validation.Plate(req.Plate)
	if err != nil {
		return nil, err
	}
	factoryYear, err := rules.FactoryYear(req.FactoryYear)
	if err != nil {
		return nil, err
	}
	modelYear, err := rules.ModelYear(req.ModelYear, factoryYear)
	if err != nil {
		return nil, err
	}
	price, err := rules.Price(req.Price)
	if err != nil {
		return nil, err
	}
	mileage, err := rules.Mileage(req.Mileage)
	if err != nil {
		return nil, err
	}

	brandExists, err := brandStore.ExistsByID(r.Context(), req.BrandID)
	if err != nil {
		return nil, err
	}
	if !brandExists {
		return nil, domain.NewConflictError("A marca informada não existe.")
	}

	return &domain.Car{
		CarType:      req.CarType,
		Model:        model,
		FactoryYear:  factoryYear,
		ModelYear:    modelYear,
		Color:        req.Color,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Condition:    req.Condition,
		Status:       status,
		Mileage:      mileage,
		Plate:        plate,
		Price:        price,
		Description:  req.Description,
		BrandID:      req.BrandID,
	}, nil
}

// mergeCarUpdate applies the present fields of an update request onto a copy
// of the current car, running each field rule and the reference checks, and
// re-validating the year relationship when either year changed.
func (h *CarHandler) mergeCarUpdate(r *http.Request, current *domain.Car, req *UpdateCarRequest) (*domain.Car, error) {
	updated := *current

	if req.Plate != nil {
		plate, err := validation.Plate(*req.Plate)
		if err != nil {
			return nil, err
		}
		if plate != current.Plate {
			taken, err := h.carStore.ExistsByPlate(r.Context(), plate, current.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.NewConflictError("Já existe um carro cadastrado com esta placa.")
			}
		}
		updated.Plate = plate
	}

	if req.BrandID != nil {
		exists, err := h.brandStore.ExistsByID(r.Context(), *req.BrandID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.NewConflictError("A marca informada não existe.")
		}
		updated.BrandID = *req.BrandID
	}

	if req.OwnerID != nil {
		exists, err := h.userStore.ExistsByID(r.Context(), *req.OwnerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.NewConflictError("O proprietário informado não existe.")
		}
		updated.OwnerID = *req.OwnerID
	}

	if req.CarType != nil {
		if !req.CarType.IsValid() {
			return nil, invalidFieldError("car_type")
		}
		updated.CarType = *req.CarType
	}
	if req.Color != nil {
		if !req.Color.IsValid() {
			return nil, invalidFieldError("color")
		}
		updated.Color = *req.Color
	}
	if req.FuelType != nil {
		if !req.FuelType.IsValid() {
			return nil, invalidFieldError("fuel_type")
		}
		updated.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		if !req.Transmission.IsValid() {
			return nil, invalidFieldError("transmission")
		}
		updated.Transmission = *req.Transmission
	}
	if req.Condition != nil {
		if !req.Condition.IsValid() {
			return nil, invalidFieldError("condition")
		}
		updated.Condition = *req.Condition
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, invalidFieldError("status")
		}
		updated.Status = *req.Status
	}

	if req.Model != nil {
		model, err := validation.CarModel(*req.Model)
		if err != nil {
			return nil, err
		}
		updated.Model = model
	}
	if req.Mileage != nil {
		mileage, err := h.rules.Mileage(*req.Mileage)
		if err != nil {
			return nil, err
		}
		updated.Mileage = mileage
	}
	if req.Price != nil {
		price, err := h.rules.Price(*req.Price)
		if err != nil {
			return nil, err
		}
		updated.Price = price
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	if req.FactoryYear != nil {
		factoryYear, err := h.rules.FactoryYear(*req.FactoryYear)
		if err != nil {
			return nil, err
		}
		updated.FactoryYear = factoryYear
	}
	if req.ModelYear != nil {
		updated.ModelYear = *req.ModelYear
	}
	if req.FactoryYear != nil || req.ModelYear != nil {
		if _, err := h.rules.ModelYear(updated.ModelYear, updated.FactoryYear); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

func invalidFieldError(field string) error {
	return domain.NewValidationError(field, fmt.Sprintf("Valor inválido para o campo %s.", field))
}

func translateCarNotFound(err error, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewNotFoundError(fmt.Sprintf("Carro com ID %d não encontrado.", id))
	}
	return err
}

func translateCarDuplicate(err error) error {
	if errors.Is(err, store.ErrPlateExists) {
		return domain.NewConflictError("Já existe um carro cadastrado com esta placa.")
	}
	return err
}
