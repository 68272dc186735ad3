//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"quinta-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Kinds(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		explicitKind []infra.RepositoryErrorKind
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name:       "exclusion violation classifies as conflict",
			err:        &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "unique violation classifies as duplicate key",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "plain error defaults to db failure",
			err:        errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:         "explicit kind wins over classification",
			err:          &pgconn.PgError{Code: "23P01"},
			explicitKind: []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind:   infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tc.err, tc.explicitKind...)
			assert.True(t, infra.IsKind(wrapped, tc.expectKind))
		})
	}
}

func TestWrapRepoErr_UnwrapsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23P01"}
	wrapped := infra.WrapRepoErr("op failed", cause)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(wrapped, &pgErr))
	assert.Equal(t, "23P01", pgErr.Code)
}
