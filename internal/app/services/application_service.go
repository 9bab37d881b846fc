package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/helpers"
)

type applicationService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewApplicationService creates a new ApplicationService instance
func NewApplicationService(st *store.Store, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		store:  st,
		logger: logger,
	}
}

// Apply submits the student's application to an open posting the student is
// eligible for.
func (s *applicationService) Apply(studentID string, req *dto.ApplyJobRequest) (*models.Application, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return nil, err
	}
	job, err := s.store.JobByID(req.JobID)
	if err != nil {
		return nil, err
	}
	if helpers.DatePassed(job.Deadline) {
		return nil, apperrors.NewBadRequestError("The application deadline for this job has passed.")
	}
	if !job.EligibleFor(student) {
		return nil, apperrors.NewBadRequestError("You do not meet the eligibility criteria for this job.")
	}

	application, err := s.store.ApplyJob(studentID, req.JobID, req.CoverLetter)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("applicationId", application.ID).Str("studentId", studentID).Str("jobId", req.JobID).Msg("Application submitted")
	return application, nil
}

// StudentApplications lists the student's applications enriched with the
// title and company of each job.
func (s *applicationService) StudentApplications(studentID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.store.ApplicationsByStudent(studentID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		resp := &dto.ApplicationResponse{
			ID:          app.ID,
			JobID:       app.JobID,
			Status:      app.Status,
			AppliedDate: app.AppliedDate,
			CoverLetter: app.CoverLetter,
		}
		if job, err := s.store.JobByID(app.JobID); err == nil {
			resp.JobTitle = job.Title
			resp.CompanyName = job.CompanyName
		}
		out = append(out, resp)
	}
	return out, nil
}

// CompanyApplications lists applications to the company's postings,
// optionally narrowed to one status, with each applicant's profile summary.
func (s *applicationService) CompanyApplications(companyID string, status models.ApplicationStatus) ([]*dto.CompanyApplicationResponse, error) {
	applications, err := s.store.ApplicationsForCompany(companyID, status)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CompanyApplicationResponse, 0, len(applications))
	for _, app := range applications {
		resp := &dto.CompanyApplicationResponse{
			ID:          app.ID,
			JobID:       app.JobID,
			Status:      app.Status,
			AppliedDate: app.AppliedDate,
			CoverLetter: app.CoverLetter,
		}
		if job, err := s.store.JobByID(app.JobID); err == nil {
			resp.JobTitle = job.Title
		}
		if student, err := s.store.StudentByID(app.StudentID); err == nil {
			resp.Student = dto.NewStudentResponse(student)
		}
		out = append(out, resp)
	}
	return out, nil
}

// Resolve accepts or rejects a pending application. The caller must own the
// posting the application targets.
func (s *applicationService) Resolve(companyID, applicationID string, status models.ApplicationStatus) error {
	application, err := s.store.ApplicationByID(applicationID)
	if err != nil {
		return err
	}
	job, err := s.store.JobByID(application.JobID)
	if err != nil {
		return err
	}
	if job.CompanyID != companyID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.UpdateApplicationStatus(applicationID, status); err != nil {
		return err
	}

	s.logger.Info().Str("applicationId", applicationID).Str("status", string(status)).Msg("Application resolved")
	return nil
}
