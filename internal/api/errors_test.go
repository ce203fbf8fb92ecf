package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/store"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			// The field name stays in logs; the client sees only the message.
			name:    "validation error strips the field prefix",
			err:     domain.NewValidationError("username", "O username deve ter pelo menos 3 caracteres."),
			status:  http.StatusUnprocessableEntity,
			message: "O username deve ter pelo menos 3 caracteres.",
		},
		{
			name:    "validation error without a field",
			err:     domain.NewValidationError("", "Corpo da requisição inválido."),
			status:  http.StatusUnprocessableEntity,
			message: "Corpo da requisição inválido.",
		},
		{
			name:    "conflict",
			err:     domain.NewConflictError("Já existe um carro cadastrado com esta placa."),
			status:  http.StatusBadRequest,
			message: "Já existe um carro cadastrado com esta placa.",
		},
		{
			name:    "not found",
			err:     domain.NewNotFoundError("Marca não encontrada."),
			status:  http.StatusNotFound,
			message: "Marca não encontrada.",
		},
		{
			name:    "forbidden",
			err:     domain.NewForbiddenError("Acesso restrito a administradores."),
			status:  http.StatusForbidden,
			message: "Acesso restrito a administradores.",
		},
		{
			name:    "untranslated store not found",
			err:     store.ErrUserNotFound,
			status:  http.StatusNotFound,
			message: "Resource not found",
		},
		{
			name:    "unknown error stays opaque",
			err:     errors.New("pq: connection reset"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, r, tc.err)

			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, errorMessage(t, rec))
		})
	}
}
