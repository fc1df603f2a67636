package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	CompanyID    *string
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
