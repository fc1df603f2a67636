package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gajikita/payroll-backend-go/internal/domain/auth"
	"github.com/gajikita/payroll-backend-go/internal/domain/user"
	"github.com/gajikita/payroll-backend-go/internal/pkg/jwt"
)

type stubUserRepo struct {
	users map[string]user.User
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type stubJWTRepo struct {
	stored map[string]bool // token -> revoked
}

func (s *stubJWTRepo) CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error {
	if s.stored == nil {
		s.stored = map[string]bool{}
	}
	s.stored[token] = false
	return nil
}

func (s *stubJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	revoked, ok := s.stored[token]
	if !ok {
		return false, errors.New("no rows in result set")
	}
	return revoked, nil
}

func (s *stubJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	if _, ok := s.stored[token]; ok {
		s.stored[token] = true
	}
	return nil
}

func authFixture(t *testing.T, refreshExpiration string) (*AuthService, *stubJWTRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Email: "admin@acme.test", PasswordHash: string(hash), IsAdmin: true},
	}}
	tokens := &stubJWTRepo{}
	jwtSvc := jwt.NewJWTService("test-secret", "15m", refreshExpiration)

	return NewAuthService(nil, users, tokens, jwtSvc), tokens
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, tokens := authFixture(t, "720h")

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22",
	})
	require.NoError(t, err)

	presented := login.Token.RefreshToken
	out, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: presented})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token.AccessToken)

	// The presented token is single-use: the rotation revoked it and a
	// second refresh with it is rejected.
	assert.True(t, tokens.stored[presented])
	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: presented})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	svc, _ := authFixture(t, "720h")

	// Structurally valid but never stored, so the repository lookup fails.
	other := jwt.NewJWTService("test-secret", "15m", "720h")
	foreign, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: foreign})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	svc, _ := authFixture(t, "720h")

	// A service whose refresh lifetime is already in the past mints tokens
	// that fail expiry validation on decode.
	expired := jwt.NewJWTService("test-secret", "15m", "-2h")
	stale, _, err := expired.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: stale})
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	svc, _ := authFixture(t, "720h")

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.Token.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _ := authFixture(t, "720h")

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "hunter22",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), auth.RefreshRequest{RefreshToken: login.Token.RefreshToken}))

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.Token.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
