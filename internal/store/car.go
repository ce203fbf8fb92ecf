package store

import (
	"context"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

// CarListParams filters and paginates a car listing. Search matches model,
// color or plate. Pointer fields are tri-state: nil means unfiltered.
type CarListParams struct {
	Offset       int
	Limit        int
	Search       string
	CarType      domain.CarType
	Color        domain.CarColor
	FuelType     domain.FuelType
	Transmission domain.TransmissionType
	Condition    domain.CarCondition
	Status       domain.CarStatus
	BrandID      int64
	OwnerID      int64
	MinYear      int
	MaxYear      int
	MinPrice     *float64
	MaxPrice     *float64
}

// CarStore defines the interface for car persistence. Reads return
// CarDetail: the car row with brand and owner joined in as value objects.
type CarStore interface {
	// Create saves a new car. Plate uniqueness races surface as
	// ErrPlateExists. On success the car's ID and timestamps are populated.
	Create(ctx context.Context, car *domain.Car) error

	// GetByID retrieves a car with its brand and owner. Returns
	// ErrCarNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.CarDetail, error)

	// List returns a page of cars plus the total count over the filtered
	// (pre-pagination) query.
	List(ctx context.Context, params CarListParams) ([]domain.CarDetail, int64, error)

	// ExistsByPlate reports whether another car already holds the plate.
	// excludeID, when non-zero, leaves that row out of the check.
	ExistsByPlate(ctx context.Context, plate string, excludeID int64) (bool, error)

	// Update persists the full car row. Returns ErrCarNotFound if the car
	// does not exist, or ErrPlateExists on a uniqueness race.
	Update(ctx context.Context, car *domain.Car) error

	// UpdateStatus sets only the car's status. Returns ErrCarNotFound if
	// the car does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.CarStatus) error

	// Delete removes a car. Returns ErrCarNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
