package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

func TestAdminCreateBrand(t *testing.T) {
	t.Parallel()

	t.Run("creates an active brand", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/brands", env.accessToken(t, admin),
			CreateBrandRequest{Name: "  Toyota  ", Description: "Montadora japonesa"})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[BrandResponse](t, rec)
		assert.Equal(t, "Toyota", body.Name)
		assert.Equal(t, "Montadora japonesa", body.Description)
		assert.True(t, body.IsActive)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
		env.createBrand(t, "Toyota", true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/brands", env.accessToken(t, admin),
			CreateBrandRequest{Name: "Toyota"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Já existe uma marca cadastrada com esse nome.", errorMessage(t, rec))
	})

	t.Run("rejects short names", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/brands", env.accessToken(t, admin),
			CreateBrandRequest{Name: "T"})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "O nome da marca deve ter pelo menos 2 caracteres.", errorMessage(t, rec))
	})

	t.Run("regular users cannot create brands", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		user := env.createUser(t, "maria", "maria@example.com", "abc123", domain.RoleUser, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/brands", env.accessToken(t, user),
			CreateBrandRequest{Name: "Toyota"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAdminUpdateBrand(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	t.Run("updates name and description", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
		brand := env.createBrand(t, "Toyota", true)

		rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/brands/%d", brand.ID),
			env.accessToken(t, admin),
			UpdateBrandRequest{Name: strPtr("Toyota do Brasil"), Description: strPtr("Filial brasileira")})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[BrandResponse](t, rec)
		assert.Equal(t, "Toyota do Brasil", body.Name)
		assert.Equal(t, "Filial brasileira", body.Description)
	})

	t.Run("resubmitting the current name is allowed", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
		brand := env.createBrand(t, "Toyota", true)

		rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/brands/%d", brand.ID),
			env.accessToken(t, admin), UpdateBrandRequest{Name: strPtr("Toyota")})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("taking another brand's name is not", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
		brand := env.createBrand(t, "Toyota", true)
		env.createBrand(t, "Honda", true)

		rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/brands/%d", brand.ID),
			env.accessToken(t, admin), UpdateBrandRequest{Name: strPtr("Honda")})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Já existe outra marca com esse nome.", errorMessage(t, rec))
	})

	t.Run("missing brand", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)

		rec := env.do(t, http.MethodPut, "/api/v1/admin/brands/999",
			env.accessToken(t, admin), UpdateBrandRequest{Name: strPtr("Toyota")})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Marca não encontrada.", errorMessage(t, rec))
	})
}

func TestAdminBrandActivation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
	brand := env.createBrand(t, "Toyota", true)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/brands/%d/deactivate", brand.ID),
		env.accessToken(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[BrandResponse](t, rec).IsActive)

	// The deactivated brand drops out of the default public listing.
	listRec := env.do(t, http.MethodGet, "/api/v1/brands", "", nil)
	assert.Empty(t, decodeBody[BrandListResponse](t, listRec).Brands)

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/brands/%d/activate", brand.ID),
		env.accessToken(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[BrandResponse](t, rec).IsActive)
}

func TestAdminDeleteBrand(t *testing.T) {
	t.Parallel()

	t.Run("blocked while cars reference it", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)
		owner := env.createUser(t, "maria", "maria@example.com", "abc123", domain.RoleUser, true)
		brand := env.createBrand(t, "Toyota", true)
		car := env.createCar(t, owner.ID, brand.ID, "ABC1D23")

		rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/brands/%d", brand.ID),
			env.accessToken(t, admin), nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Não é possível deletar a marca porque existem carros associados.", errorMessage(t, rec))

		// Once the car is gone, the delete goes through.
		rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/cars/%d", car.ID),
			env.accessToken(t, owner), nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/brands/%d", brand.ID),
			env.accessToken(t, admin), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing brand", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		admin := env.createUser(t, "gerente", "gerente@example.com", "abc123", domain.RoleAdmin, true)

		rec := env.do(t, http.MethodDelete, "/api/v1/admin/brands/999",
			env.accessToken(t, admin), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
