package middleware

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/gajikita/payroll-backend-go/internal/domain/user"
)

// UserID extracts the authenticated user's ID from the token claims.
func UserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", user.ErrUserNotFound
	}
	return id, nil
}

// CompanyID extracts the company scope from the token claims. Every
// company-scoped route resolves its tenant through this, never from the
// request body.
func CompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	id, ok := claims["company_id"].(string)
	if !ok || id == "" {
		return "", user.ErrCompanyIDRequired
	}
	return id, nil
}
