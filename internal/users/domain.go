package users

import "time"

// User represents a user account for management.
type User struct {
	ID             int64     `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	IsAdmin        bool      `json:"is_admin"`
	IsActive       bool      `json:"is_active"`
	RoleIDs        []int64   `json:"role_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateUserInput is the creation form payload.
type CreateUserInput struct {
	EmployeeNumber string  `json:"employee_number" validate:"required,max=32"`
	Name           string  `json:"name" validate:"required,max=120"`
	Email          string  `json:"email" validate:"required,email"`
	Department     string  `json:"department" validate:"max=120"`
	Password       string  `json:"password" validate:"required,min=8"`
	RoleIDs        []int64 `json:"role_ids"`
}

// UpdateUserInput is the edit form payload.
type UpdateUserInput struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department" validate:"max=120"`
	IsActive   bool    `json:"is_active"`
	RoleIDs    []int64 `json:"role_ids"`
}
