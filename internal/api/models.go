// Package api contains the HTTP handlers, request/response models and the
// error-to-status mapping for the marketplace API.
package api

import (
	"time"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

// --- Auth ---

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse is returned after a successful login.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenResponse is returned after a successful token refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Users ---

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /users/me. Absent fields are left
// untouched.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse is the public representation of a user. The password hash is
// never exposed.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse builds the public representation of a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// --- Brands ---

// CreateBrandRequest is the body of POST /admin/brands.
type CreateBrandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateBrandRequest is the body of PUT /admin/brands/{id}.
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// BrandResponse is the public representation of a brand.
type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBrandResponse builds the public representation of a brand.
func NewBrandResponse(brand *domain.Brand) BrandResponse {
	return BrandResponse{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description,
		IsActive:    brand.IsActive,
		CreatedAt:   brand.CreatedAt,
		UpdatedAt:   brand.UpdatedAt,
	}
}

// BrandListResponse is the paginated envelope for brand listings.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
	Total  int64           `json:"total"`
}

// --- Cars ---

// CreateCarRequest is the body of POST /cars and POST /admin/cars. OwnerID
// is honored only on the admin route; the public route always assigns the
// caller as owner.
type CreateCarRequest struct {
	CarType      domain.CarType          `json:"car_type"`
	Model        string                  `json:"model"`
	FactoryYear  int                     `json:"factory_year"`
	ModelYear    int                     `json:"model_year"`
	Color        domain.CarColor         `json:"color"`
	FuelType     domain.FuelType         `json:"fuel_type"`
	Transmission domain.TransmissionType `json:"transmission"`
	Condition    domain.CarCondition     `json:"condition"`
	Status       domain.CarStatus        `json:"status"`
	Mileage      int                     `json:"mileage"`
	Plate        string                  `json:"plate"`
	Price        float64                 `json:"price"`
	Description  string                  `json:"description"`
	BrandID      int64                   `json:"brand_id"`
	OwnerID      int64                   `json:"owner_id"`
}

// UpdateCarRequest is the body of PUT /cars/{id}. Absent fields are left
// untouched; the year cross-check re-runs after merge when either year is
// present.
type UpdateCarRequest struct {
	CarType      *domain.CarType          `json:"car_type"`
	Model        *string                  `json:"model"`
	FactoryYear  *int                     `json:"factory_year"`
	ModelYear    *int                     `json:"model_year"`
	Color        *domain.CarColor         `json:"color"`
	FuelType     *domain.FuelType         `json:"fuel_type"`
	Transmission *domain.TransmissionType `json:"transmission"`
	Condition    *domain.CarCondition     `json:"condition"`
	Status       *domain.CarStatus        `json:"status"`
	Mileage      *int                     `json:"mileage"`
	Plate        *string                  `json:"plate"`
	Price        *float64                 `json:"price"`
	Description  *string                  `json:"description"`
	BrandID      *int64                   `json:"brand_id"`
	OwnerID      *int64                   `json:"owner_id"`
}

// CarResponse is the public representation of a car with its brand and owner
// embedded.
type CarResponse struct {
	ID           int64                   `json:"id"`
	CarType      domain.CarType          `json:"car_type"`
	Model        string                  `json:"model"`
	FactoryYear  int                     `json:"factory_year"`
	ModelYear    int                     `json:"model_year"`
	Color        domain.CarColor         `json:"color"`
	FuelType     domain.FuelType         `json:"fuel_type"`
	Transmission domain.TransmissionType `json:"transmission"`
	Condition    domain.CarCondition     `json:"condition"`
	Status       domain.CarStatus        `json:"status"`
	Mileage      int                     `json:"mileage"`
	Plate        string                  `json:"plate"`
	Price        float64                 `json:"price"`
	Description  string                  `json:"description,omitempty"`
	BrandID      int64                   `json:"brand_id"`
	OwnerID      int64                   `json:"owner_id"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Brand        BrandResponse           `json:"brand"`
	Owner        UserResponse            `json:"owner"`
}

// NewCarResponse builds the public representation of a car detail.
func NewCarResponse(detail *domain.CarDetail) CarResponse {
	return CarResponse{
		ID:           detail.ID,
		CarType:      detail.CarType,
		Model:        detail.Model,
		FactoryYear:  detail.FactoryYear,
		ModelYear:    detail.ModelYear,
		Color:        detail.Color,
		FuelType:     detail.FuelType,
		Transmission: detail.Transmission,
		Condition:    detail.Condition,
		Status:       detail.Status,
		Mileage:      detail.Mileage,
		Plate:        detail.Plate,
		Price:        detail.Price,
		Description:  detail.Description,
		BrandID:      detail.BrandID,
		OwnerID:      detail.OwnerID,
		CreatedAt:    detail.CreatedAt,
		UpdatedAt:    detail.UpdatedAt,
		Brand:        NewBrandResponse(&detail.Brand),
		Owner:        NewUserResponse(&detail.Owner),
	}
}

// CarListResponse is the paginated envelope for car listings.
type CarListResponse struct {
	Cars   []CarResponse `json:"cars"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	Total  int64         `json:"total"`
}
