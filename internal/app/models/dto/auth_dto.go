package dto

import "github.com/yigit/campushire/internal/app/models"

// LoginRequest represents login credentials for one of the three roles
type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents a successful login response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}

// RegisterRequest represents a registration request. The common fields are
// always required; the remaining ones depend on the selected role and are
// validated by the auth service.
type RegisterRequest struct {
	Role     models.RoleType `json:"role" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone" binding:"required"`
	Password string          `json:"password" binding:"required,min=8"`

	// Student fields
	RollNumber string `json:"rollNumber,omitempty"`
	Course     string `json:"course,omitempty"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`

	// T&P officer fields
	EmployeeID string `json:"employeeId,omitempty"`
	Position   string `json:"position,omitempty"`

	// Company fields
	CompanyName string `json:"companyName,omitempty"`
	HRName      string `json:"hrName,omitempty"`
	HRID        string `json:"hrId,omitempty"`
	HREmail     string `json:"hrEmail,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
}

// RegisterResponse carries the post-registration message shown to the user
type RegisterResponse struct {
	ID      string `json:"id"`
	Message string `json:"message" example:"Registration successful! Please login."`
}
