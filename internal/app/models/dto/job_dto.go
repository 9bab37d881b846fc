package dto

import "github.com/yigit/campushire/internal/app/models"

// PostJobRequest represents a new job posting. The owning company is taken
// from the authenticated session, never from the payload.
type PostJobRequest struct {
	Title               string         `json:"title" binding:"required"`
	Type                models.JobType `json:"type" binding:"required,oneof=full-time internship part-time"`
	Description         string         `json:"description" binding:"required"`
	Requirements        []string       `json:"requirements" binding:"required,min=1"`
	Skills              []string       `json:"skills" binding:"required,min=1"`
	EligibleDepartments []string       `json:"eligibleDepartments" binding:"required,min=1"`
	MinCGPA             float64        `json:"minCgpa" binding:"required,gt=0,lte=10"`
	Package             float64        `json:"package" binding:"required,gt=0"`
	Location            string         `json:"location" binding:"required"`
	Deadline            string         `json:"deadline" binding:"required"`
}

// JobListResponse wraps a job listing
type JobListResponse struct {
	Jobs []*models.Job `json:"jobs"`
}
