// Package services implements the portal's use cases on top of the state
// store: boundary validation, role dispatch and DTO shaping live here.
package services

import (
	"io"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
)

// AuthService handles registration, login and profile retrieval
type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout() error
	Profile(userID string, role models.RoleType) (interface{}, error)
}

// ProfileService handles the per-role profile edits
type ProfileService interface {
	UpdateStudentProfile(studentID string, req *dto.UpdateStudentProfileRequest, resumeFile io.Reader) (*dto.StudentResponse, error)
	UpdateOfficerProfile(officerID string, req *dto.UpdateOfficerProfileRequest) (*dto.OfficerResponse, error)
	UpdateCompanyProfile(companyID string, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyResponse, error)
}

// JobService handles job posting and the job listings of all three roles
type JobService interface {
	PostJob(companyID string, req *dto.PostJobRequest) (*models.Job, error)
	CompanyJobs(companyID string) ([]*models.Job, error)
	EligibleJobs(studentID string, filter store.JobFilter) ([]*models.Job, error)
	AllJobs(filter store.JobFilter) []*models.Job
}

// ApplicationService handles submissions and resolutions of applications
type ApplicationService interface {
	Apply(studentID string, req *dto.ApplyJobRequest) (*models.Application, error)
	StudentApplications(studentID string) ([]*dto.ApplicationResponse, error)
	CompanyApplications(companyID string, status models.ApplicationStatus) ([]*dto.CompanyApplicationResponse, error)
	Resolve(companyID, applicationID string, status models.ApplicationStatus) error
}

// StatsService aggregates dashboard numbers
type StatsService interface {
	Overview() *dto.OverviewResponse
	CompanyStats(companyID string) (*dto.CompanyStatsResponse, error)
	Placements() []*dto.PlacementResponse
	Students(filter store.StudentFilter) []*dto.StudentResponse
	Companies() []*dto.CompanyResponse
}
