package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTMock(t *testing.T) (pgxmock.PgxPoolIface, context.Context, JWTRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	ctx := WithQuerier(context.Background(), mock)
	return mock, ctx, NewJWTRepository(nil)
}

func TestJWTRepository_CreateRefreshToken(t *testing.T) {
	mock, ctx, repo := newJWTMock(t)

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs("user-1", hashToken("raw-token"), time.Unix(expiresAt, 0).UTC()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateRefreshToken(ctx, "user-1", "raw-token", expiresAt)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_IsRefreshTokenRevoked(t *testing.T) {
	revokedAt := time.Now().Add(-time.Hour)

	tests := []struct {
		name        string
		revokedAt   *time.Time
		expiresAt   time.Time
		wantRevoked bool
	}{
		{"active token", nil, time.Now().Add(24 * time.Hour), false},
		{"revoked token", &revokedAt, time.Now().Add(24 * time.Hour), true},
		{"expired token", nil, time.Now().Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, ctx, repo := newJWTMock(t)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT revoked_at, expires_at")).
				WithArgs(hashToken("raw-token")).
				WillReturnRows(pgxmock.NewRows([]string{"revoked_at", "expires_at"}).
					AddRow(tt.revokedAt, tt.expiresAt))

			revoked, err := repo.IsRefreshTokenRevoked(ctx, "raw-token")

			require.NoError(t, err)
			assert.Equal(t, tt.wantRevoked, revoked)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJWTRepository_IsRefreshTokenRevoked_UnknownToken(t *testing.T) {
	mock, ctx, repo := newJWTMock(t)

	// A token that was never stored has no row; the caller treats the error
	// as an invalid token.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT revoked_at, expires_at")).
		WithArgs(hashToken("never-issued")).
		WillReturnRows(pgxmock.NewRows([]string{"revoked_at", "expires_at"}))

	_, err := repo.IsRefreshTokenRevoked(ctx, "never-issued")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_RevokeRefreshToken(t *testing.T) {
	mock, ctx, repo := newJWTMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens")).
		WithArgs(hashToken("raw-token")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RevokeRefreshToken(ctx, "raw-token")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
