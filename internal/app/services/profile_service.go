package services

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/resume"
	"github.com/yigit/campushire/internal/pkg/validation"
)

type profileService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(st *store.Store, logger zerolog.Logger) ProfileService {
	return &profileService{
		store:  st,
		logger: logger,
	}
}

// UpdateStudentProfile applies a full profile edit to the student record.
// The resume read runs in the background while the rest of the request is
// validated; the record is only committed once the attachment has been
// encoded, so a rejected file leaves the profile untouched.
func (s *profileService) UpdateStudentProfile(studentID string, req *dto.UpdateStudentProfileRequest, resumeFile io.Reader) (*dto.StudentResponse, error) {
	current, err := s.store.StudentByID(studentID)
	if err != nil {
		return nil, err
	}

	var pending <-chan resume.Result
	if resumeFile != nil {
		pending = resume.Read(resumeFile)
	}

	if !validation.ValidPhone(req.Phone) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPhone,
			"Phone number must include a country code followed by 10 digits.")
	}
	if !validation.ValidSemesterCGPAs(req.CGPASemesters, current.Year) {
		return nil, apperrors.ErrInvalidCGPA
	}

	updated := *current
	updated.Name = req.Name
	updated.Phone = req.Phone
	updated.Github = req.Github
	updated.LinkedIn = req.LinkedIn
	updated.CGPA = req.CGPA
	updated.Tenth = req.Tenth
	updated.Twelfth = req.Twelfth
	updated.Interest = req.Interest
	updated.GradYear = req.GradYear
	updated.Skills = req.Skills
	updated.CGPASemesters = req.CGPASemesters
	updated.ProfileCompleted = true

	if pending != nil {
		result := <-pending
		if result.Err != nil {
			s.logger.Warn().Err(result.Err).Str("studentId", studentID).Msg("Resume rejected")
			return nil, result.Err
		}
		updated.Resume = result.DataURL
	}

	if err := s.store.UpdateStudent(&updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", studentID).Bool("resume", resumeFile != nil).Msg("Student profile updated")
	return dto.NewStudentResponse(&updated), nil
}

// UpdateOfficerProfile applies a full profile edit to the officer record.
func (s *profileService) UpdateOfficerProfile(officerID string, req *dto.UpdateOfficerProfileRequest) (*dto.OfficerResponse, error) {
	current, err := s.store.OfficerByID(officerID)
	if err != nil {
		return nil, err
	}
	if !validation.ValidPhone(req.Phone) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPhone,
			"Phone number must include a country code followed by 10 digits.")
	}

	updated := *current
	updated.Name = req.Name
	updated.EmployeeID = req.EmployeeID
	updated.Position = req.Position
	updated.Department = req.Department
	updated.Phone = req.Phone

	if err := s.store.UpdateOfficer(&updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("officerId", officerID).Msg("Officer profile updated")
	return dto.NewOfficerResponse(&updated), nil
}

// UpdateCompanyProfile applies a full profile edit to the company record.
func (s *profileService) UpdateCompanyProfile(companyID string, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyResponse, error) {
	current, err := s.store.CompanyByID(companyID)
	if err != nil {
		return nil, err
	}
	if !validation.ValidPhone(req.Phone) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPhone,
			"Phone number must include a country code followed by 10 digits.")
	}
	if !validation.ValidEmail(req.HREmail) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Please enter a valid HR email address.")
	}

	updated := *current
	updated.CompanyName = req.CompanyName
	updated.HRName = req.HRName
	updated.HRID = req.HRID
	updated.HREmail = req.HREmail
	updated.Industry = req.Industry
	updated.Website = req.Website
	updated.Phone = req.Phone

	if err := s.store.UpdateCompany(&updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("companyId", companyID).Msg("Company profile updated")
	return dto.NewCompanyResponse(&updated), nil
}
