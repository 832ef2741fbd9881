package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"securereport/internal/domain"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, domain.ErrDuplicateID},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, &pgconn.PgError{Code: "42P01"}},
		{"deadline", context.DeadlineExceeded, domain.ErrStoreUnavailable},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := translate(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			if errors.Is(tc.want, domain.ErrNotFound) || errors.Is(tc.want, domain.ErrDuplicateID) || errors.Is(tc.want, domain.ErrStoreUnavailable) {
				assert.ErrorIs(t, got, tc.want)
				return
			}
			// untranslated errors pass through unchanged
			assert.Equal(t, tc.in, got)
		})
	}
}
