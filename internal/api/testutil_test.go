package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/andreluoliveira82/car-api/internal/api/middleware"
	"github.com/andreluoliveira82/car-api/internal/config"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

var testLimits = config.LimitsConfig{
	MinFactoryYear:      1960,
	MaxFutureYear:       1,
	MaxPrice:            10_000_000,
	MaxMileage:          1_000_000,
	MaxBrandDescription: 255,
}

// testNow pins the clock so year validation is stable in tests.
var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires the handlers against in-memory fakes behind the same route
// tree the server mounts.
type testEnv struct {
	users  *fakeUserStore
	brands *fakeBrandStore
	cars   *fakeCarStore

	tokens auth.TokenService
	hasher auth.PasswordHasher
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newFakeUserStore()
	brands := newFakeBrandStore()
	cars := newFakeCarStore(users, brands)

	tokens := auth.NewTestTokenService(
		"test-secret-key-that-is-long-enough-123",
		30*time.Minute,
		24*time.Hour,
		func() time.Time { return testNow },
	)
	hasher := auth.NewBcryptHasher()
	rules := validation.NewRulesAt(testLimits, func() time.Time { return testNow })

	authHandler := NewAuthHandler(users, tokens, hasher)
	userHandler := NewUserHandler(users, hasher)
	brandHandler := NewBrandHandler(brands)
	carHandler := NewCarHandler(cars, brands, users, rules)
	adminUserHandler := NewAdminUserHandler(users)
	adminBrandHandler := NewAdminBrandHandler(brands, rules)
	adminCarHandler := NewAdminCarHandler(cars, brands, users, rules)

	authMW := middleware.NewAuthMiddleware(tokens, users)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)
		r.Post("/users", userHandler.Register)

		r.Get("/brands", brandHandler.List)
		r.Get("/brands/{id}", brandHandler.Get)
		r.Get("/cars", carHandler.List)
		r.Get("/cars/{id}", carHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)

			r.Get("/users/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateMe)
			r.Delete("/users/me", userHandler.DeleteMe)

			r.Post("/cars", carHandler.Create)
			r.Put("/cars/{id}", carHandler.Update)
			r.Delete("/cars/{id}", carHandler.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Use(authMW.RequireAdmin)

			r.Get("/admin/users", adminUserHandler.List)
			r.Get("/admin/users/{id}", adminUserHandler.Get)
			r.Patch("/admin/users/{id}/activate", adminUserHandler.Activate)
			r.Patch("/admin/users/{id}/deactivate", adminUserHandler.Deactivate)
			r.Patch("/admin/users/{id}/role", adminUserHandler.ChangeRole)

			r.Post("/admin/brands", adminBrandHandler.Create)
			r.Put("/admin/brands/{id}", adminBrandHandler.Update)
			r.Patch("/admin/brands/{id}/activate", adminBrandHandler.Activate)
			r.Patch("/admin/brands/{id}/deactivate", adminBrandHandler.Deactivate)
			r.Delete("/admin/brands/{id}", adminBrandHandler.Delete)

			r.Post("/admin/cars", adminCarHandler.Create)
			r.Get("/admin/cars", adminCarHandler.List)
			r.Patch("/admin/cars/{id}/status", adminCarHandler.ChangeStatus)
			r.Patch("/admin/cars/{id}/deactivate", adminCarHandler.Deactivate)
			r.Delete("/admin/cars/{id}", adminCarHandler.Delete)
		})
	})

	return &testEnv{
		users:  users,
		brands: brands,
		cars:   cars,
		tokens: tokens,
		hasher: hasher,
		router: r,
	}
}

// do issues a request against the test router. A non-empty token is sent as
// a bearer credential.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// createUser inserts a user directly into the fake store with a real bcrypt
// digest so login flows work end to end.
func (e *testEnv) createUser(t *testing.T, username, email, password string, role domain.UserRole, active bool) *domain.User {
	t.Helper()

	hashed, err := e.hasher.Hash(password)
	require.NoError(t, err)

	user := &domain.User{
		Username:       username,
		FullName:       "Usuário de Teste",
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       active,
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

// createBrand inserts a brand directly into the fake store.
func (e *testEnv) createBrand(t *testing.T, name string, active bool) *domain.Brand {
	t.Helper()

	brand := &domain.Brand{Name: name, IsActive: active}
	require.NoError(t, e.brands.Create(context.Background(), brand))
	return brand
}

// createCar inserts a car directly into the fake store.
func (e *testEnv) createCar(t *testing.T, ownerID, brandID int64, plate string) *domain.Car {
	t.Helper()

	car := &domain.Car{
		CarType:      domain.CarTypeSUV,
		Model:        "Corolla Cross",
		FactoryYear:  2024,
		ModelYear:    2025,
		Color:        domain.CarColorWhite,
		FuelType:     domain.FuelFlex,
		Transmission: domain.TransmissionAutomatic,
		Condition:    domain.CarConditionUsed,
		Status:       domain.CarStatusAvailable,
		Mileage:      15000,
		Plate:        plate,
		Price:        105_999.99,
		BrandID:      brandID,
		OwnerID:      ownerID,
	}
	require.NoError(t, e.cars.Create(context.Background(), car))
	return car
}

// accessToken issues a valid access token for the user.
func (e *testEnv) accessToken(t *testing.T, user *domain.User) string {
	t.Helper()

	token, err := e.tokens.GenerateAccessToken(context.Background(), user.ID, user.Role)
	require.NoError(t, err)
	return token
}

// decodeBody unmarshals a recorded JSON response into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// errorMessage extracts the "error" field of a recorded error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
