package dto

import "github.com/yigit/campushire/internal/app/models"

// ApplyJobRequest represents a student applying to a job
type ApplyJobRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter" binding:"required"`
}

// UpdateApplicationStatusRequest resolves a pending application
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

// ApplicationResponse enriches an application with job context for the
// student's own listing
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"jobId"`
	JobTitle    string                   `json:"jobTitle"`
	CompanyName string                   `json:"companyName"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate string                   `json:"appliedDate"`
	CoverLetter string                   `json:"coverLetter"`
}

// CompanyApplicationResponse enriches an application with the applicant's
// summary for the company's review listing
type CompanyApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"jobId"`
	JobTitle    string                   `json:"jobTitle"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate string                   `json:"appliedDate"`
	CoverLetter string                   `json:"coverLetter"`
	Student     *StudentResponse         `json:"student"`
}

// ActivityResponse is one line of the placement cell's recent-activity feed
type ActivityResponse struct {
	StudentName string `json:"studentName"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Date        string `json:"date"`
}

// DepartmentBreakdownResponse carries per-department student and placement
// counts for the distribution charts
type DepartmentBreakdownResponse struct {
	Department string `json:"department"`
	Students   int    `json:"students"`
	Placed     int    `json:"placed"`
}

// OverviewResponse wraps the dashboard aggregates together with the
// recent-activity feed
type OverviewResponse struct {
	TotalStudents   int                            `json:"totalStudents"`
	TotalCompanies  int                            `json:"totalCompanies"`
	TotalJobs       int                            `json:"totalJobs"`
	TotalPlacements int                            `json:"totalPlacements"`
	Departments     []*DepartmentBreakdownResponse `json:"departments"`
	RecentActivity  []*ActivityResponse            `json:"recentActivity"`
}

// PlacementResponse is one row of the placements table
type PlacementResponse struct {
	StudentName string  `json:"studentName"`
	RollNumber  string  `json:"rollNumber"`
	Course      string  `json:"course"`
	Department  string  `json:"department"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Package     float64 `json:"package"`
	Date        string  `json:"date"`
}
