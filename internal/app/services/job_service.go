package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/helpers"
)

type jobService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewJobService creates a new JobService instance
func NewJobService(st *store.Store, logger zerolog.Logger) JobService {
	return &jobService{
		store:  st,
		logger: logger,
	}
}

// PostJob creates a new posting owned by the calling company. The deadline
// must parse and lie in the future.
func (s *jobService) PostJob(companyID string, req *dto.PostJobRequest) (*models.Job, error) {
	if _, err := helpers.ParseDate(req.Deadline); err != nil {
		return nil, apperrors.NewBadRequestError("Deadline must be a valid yyyy-mm-dd date.")
	}
	if helpers.DatePassed(req.Deadline) {
		return nil, apperrors.NewBadRequestError("Deadline must be in the future.")
	}

	job := &models.Job{
		CompanyID:           companyID,
		Title:               req.Title,
		Type:                req.Type,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		EligibleDepartments: req.EligibleDepartments,
		MinCGPA:             req.MinCGPA,
		Package:             req.Package,
		Location:            req.Location,
		Deadline:            req.Deadline,
	}
	if err := s.store.PostJob(job); err != nil {
		return nil, err
	}

	s.logger.Info().Str("jobId", job.ID).Str("companyId", companyID).Str("title", job.Title).Msg("Job posted")
	return job, nil
}

// CompanyJobs lists the calling company's own postings in posting order.
func (s *jobService) CompanyJobs(companyID string) ([]*models.Job, error) {
	return s.store.JobsByCompany(companyID)
}

// EligibleJobs lists the open postings the student qualifies for.
func (s *jobService) EligibleJobs(studentID string, filter store.JobFilter) ([]*models.Job, error) {
	return s.store.EligibleJobs(studentID, filter)
}

// AllJobs lists every posting, optionally filtered, for the placement cell.
func (s *jobService) AllJobs(filter store.JobFilter) []*models.Job {
	return s.store.FilterJobs(filter)
}
