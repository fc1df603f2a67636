package auth

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/gajikita/payroll-backend-go/internal/domain/auth"
	"github.com/gajikita/payroll-backend-go/internal/domain/user"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/gajikita/payroll-backend-go/internal/pkg/jwt"
	"github.com/gajikita/payroll-backend-go/internal/repository/postgresql"
	jwxt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtRepo    postgresql.JWTRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtRepo postgresql.JWTRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		db:         db,
		userRepo:   userRepo,
		jwtRepo:    jwtRepo,
		jwtService: jwtService,
	}
}

func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwxt.ErrTokenExpired()) || errors.Is(err, jwtauth.ErrExpired) {
			return auth.LoginResponse{}, auth.ErrTokenExpired
		}
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := tokenClaims(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if claims["type"] != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	// A token with no stored row was never issued here; a revoked row or a
	// lapsed expiry means the session is dead.
	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrUserNotFound
	}

	// Rotate: the presented refresh token is single-use.
	if err := s.jwtRepo.RevokeRefreshToken(ctx, req.RefreshToken); err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthService) Logout(ctx context.Context, req auth.RefreshRequest) error {
	return s.jwtRepo.RevokeRefreshToken(ctx, req.RefreshToken)
}

func (s *AuthService) issueTokens(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	access, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.CompanyID, u.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refresh, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if err := s.jwtRepo.CreateRefreshToken(ctx, u.ID, refresh, refreshExpiresAt); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: toUserResponse(u),
		Token: auth.TokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresAt:    expiresAt,
		},
	}, nil
}

func tokenClaims(ctx context.Context, token jwxt.Token) (map[string]interface{}, error) {
	return token.AsMap(ctx)
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		IsAdmin:    u.IsAdmin,
		CompanyID:  u.CompanyID,
		EmployeeID: u.EmployeeID,
	}
}
