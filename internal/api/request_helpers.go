package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

const (
	minPageLimit = 1
	maxPageLimit = 100
)

// DecodeJSON reads the request body into dst. Malformed bodies are reported
// as validation errors so they map to 422 like any other schema problem.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("", "Corpo da requisição inválido.")
	}
	return nil
}

// ParseIDParam extracts a positive integer URL parameter.
func ParseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "O identificador deve ser um número inteiro positivo.")
	}
	return id, nil
}

// Pagination carries the parsed offset/limit pair of a list request.
type Pagination struct {
	Offset int
	Limit  int
}

// ParsePagination reads offset and limit from the query string. Offset
// defaults to 0 and is floored at 0; limit defaults per resource and is
// clamped to [1, 100]. Non-numeric values fall back to the defaults.
func ParsePagination(r *http.Request, defaultLimit int) Pagination {
	p := Pagination{Offset: 0, Limit: defaultLimit}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Offset = v
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Limit = v
		}
	}

	if p.Limit < minPageLimit {
		p.Limit = minPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}

	return p
}

// queryInt64 parses an optional integer query parameter, returning 0 when
// absent or malformed.
func queryInt64(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// queryInt is like queryInt64 for plain ints.
func queryInt(r *http.Request, name string) int {
	return int(queryInt64(r, name))
}

// queryFloat parses an optional float query parameter, returning nil when
// absent or malformed.
func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryBool parses an optional boolean query parameter, returning nil when
// absent or malformed.
func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
