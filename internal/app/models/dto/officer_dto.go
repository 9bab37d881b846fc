package dto

import "github.com/yigit/campushire/internal/app/models"

// OfficerResponse mirrors the T&P officer record without the credential
type OfficerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// NewOfficerResponse converts an officer record for API output
func NewOfficerResponse(o *models.TnpOfficer) *OfficerResponse {
	return &OfficerResponse{
		ID:         o.ID,
		Name:       o.Name,
		Email:      o.Email,
		EmployeeID: o.EmployeeID,
		Position:   o.Position,
		Department: o.Department,
		Phone:      o.Phone,
	}
}

// UpdateOfficerProfileRequest represents a T&P officer profile edit
type UpdateOfficerProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}
