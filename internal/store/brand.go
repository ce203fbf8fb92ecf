package store

import (
	"context"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

// BrandListParams filters and paginates a brand listing. IsActive is a
// tri-state filter: nil means no filtering on activity.
type BrandListParams struct {
	Offset   int
	Limit    int
	Search   string
	IsActive *bool
}

// BrandStore defines the interface for brand persistence.
type BrandStore interface {
	// Create saves a new brand. Name uniqueness races surface as
	// ErrBrandNameExists.
	Create(ctx context.Context, brand *domain.Brand) error

	// GetByID retrieves a brand by id. Returns ErrBrandNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Brand, error)

	// List returns a page of brands plus the total count over the filtered
	// query.
	List(ctx context.Context, params BrandListParams) ([]domain.Brand, int64, error)

	// ExistsByID reports whether a brand with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether another brand already holds the name.
	// excludeID, when non-zero, leaves that row out of the check.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// HasCars reports whether any car references the brand. Brand deletion
	// is blocked while this is true.
	HasCars(ctx context.Context, brandID int64) (bool, error)

	// Update persists the full brand row. Returns ErrBrandNotFound if the
	// brand does not exist.
	Update(ctx context.Context, brand *domain.Brand) error

	// Delete removes a brand. Returns ErrBrandNotFound if absent, or
	// ErrReferenced if cars still reference it.
	Delete(ctx context.Context, id int64) error
}
