package dto

import "github.com/yigit/campushire/internal/app/models"

// CompanyResponse mirrors the company record without the credential
type CompanyResponse struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"companyName"`
	HRName      string   `json:"hrName"`
	HRID        string   `json:"hrId"`
	HREmail     string   `json:"hrEmail"`
	Email       string   `json:"email"`
	Industry    string   `json:"industry"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	JobPostings []string `json:"jobPostings"`
}

// NewCompanyResponse converts a company record for API output
func NewCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		HRName:      c.HRName,
		HRID:        c.HRID,
		HREmail:     c.HREmail,
		Email:       c.Email,
		Industry:    c.Industry,
		Website:     c.Website,
		Phone:       c.Phone,
		JobPostings: c.JobPostings,
	}
}

// NewCompanyResponses converts a company listing
func NewCompanyResponses(companies []*models.Company) []*CompanyResponse {
	out := make([]*CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

// UpdateCompanyProfileRequest represents a company profile edit
type UpdateCompanyProfileRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	HRName      string `json:"hrName" binding:"required"`
	HRID        string `json:"hrId" binding:"required"`
	HREmail     string `json:"hrEmail" binding:"required,email"`
	Industry    string `json:"industry" binding:"required"`
	Website     string `json:"website" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

// CompanyStatsResponse carries the company dashboard counters
type CompanyStatsResponse struct {
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	Hires        int `json:"hires"`
}
