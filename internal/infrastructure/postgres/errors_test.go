package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "asset", "a-1"))

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"sin filas", pgx.ErrNoRows, domain.ErrNotFound},
		{"sin filas envuelto", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"único", &pgconn.PgError{Code: "23505"}, domain.ErrConflict},
		{"clave foránea", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check", &pgconn.PgError{Code: "23514"}, domain.ErrInvalidInput},
		{"cancelado", context.Canceled, context.Canceled},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.in, "asset", "a-1")
			assert.ErrorIs(t, got, tc.want)
			assert.Contains(t, got.Error(), "asset a-1")
		})
	}

	other := errors.New("conexión perdida")
	got := mapError(other, "asset", "a-1")
	assert.ErrorIs(t, got, other)
	assert.False(t, errors.Is(got, domain.ErrNotFound))
}
