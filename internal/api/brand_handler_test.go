package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBrand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	brand := env.createBrand(t, "Toyota", true)

	t.Run("found", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/brands/%d", brand.ID), "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[BrandResponse](t, rec)
		assert.Equal(t, brand.ID, body.ID)
		assert.Equal(t, "Toyota", body.Name)
	})

	t.Run("missing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands/999", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Marca não encontrada.", errorMessage(t, rec))
	})

	t.Run("non numeric id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands/abc", "", nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "O identificador deve ser um número inteiro positivo.", errorMessage(t, rec))
	})
}

func TestListBrands(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createBrand(t, "Toyota", true)
	env.createBrand(t, "Volkswagen", true)
	env.createBrand(t, "Lada", false)

	t.Run("defaults to active brands", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[BrandListResponse](t, rec)
		require.Len(t, body.Brands, 2)
		assert.EqualValues(t, 2, body.Total)
		assert.Equal(t, 10, body.Limit)
		for _, b := range body.Brands {
			assert.True(t, b.IsActive)
		}
	})

	t.Run("inactive brands on request", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands?is_active=false", "", nil)

		body := decodeBody[BrandListResponse](t, rec)
		require.Len(t, body.Brands, 1)
		assert.Equal(t, "Lada", body.Brands[0].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands?search=volks", "", nil)

		body := decodeBody[BrandListResponse](t, rec)
		require.Len(t, body.Brands, 1)
		assert.Equal(t, "Volkswagen", body.Brands[0].Name)
	})

	t.Run("pagination reports full total", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands?limit=1", "", nil)

		body := decodeBody[BrandListResponse](t, rec)
		assert.Len(t, body.Brands, 1)
		assert.EqualValues(t, 2, body.Total)
	})

	t.Run("negative offset is floored", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/brands?offset=-5", "", nil)

		body := decodeBody[BrandListResponse](t, rec)
		assert.Equal(t, 0, body.Offset)
		assert.Len(t, body.Brands, 2)
	})
}
