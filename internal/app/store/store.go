// Package store owns the portal's application state: the five entity
// collections, the current session user and every mutation over them. All
// invariants (uniqueness, referential integrity, status transitions) are
// enforced here; persistence is delegated to an injected storage.Provider
// and the full snapshot is written after every mutation.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/helpers"
	"github.com/yigit/campushire/internal/storage"
)

// Store is the single application state holder. There is one logical actor,
// but the HTTP layer serves handlers concurrently, so operations are
// serialized with a mutex; every mutation persists before returning, which
// preserves read-after-write within the session.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
	logger   zerolog.Logger
	data     *models.AppData
	current  *models.SessionUser
}

// New creates a Store hydrated from the provider's snapshot. A missing
// snapshot yields empty collections; a missing session record yields a
// logged-out store.
func New(provider storage.Provider, logger zerolog.Logger) (*Store, error) {
	data, err := provider.LoadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state snapshot: %w", err)
	}
	if data == nil {
		data = models.NewAppData()
	}

	session, err := provider.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}

	return &Store{
		provider: provider,
		logger:   logger,
		data:     data,
		current:  session,
	}, nil
}

// newID assigns a fresh opaque identifier, never reused
func newID() string {
	return uuid.New().String()
}

// persist writes the bulk snapshot and, when logged in, the session record.
// Must be called with the mutex held.
func (s *Store) persist() error {
	if err := s.provider.SaveState(s.data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	if s.current != nil {
		if err := s.provider.SaveSession(s.current); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
	}
	return nil
}

// RegisterStudent adds a new student account. Email and roll number must be
// unique within the students collection; either check failing leaves the
// collection untouched.
func (s *Store) RegisterStudent(student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.Students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for _, existing := range s.data.Students {
		if existing.RollNumber == student.RollNumber {
			return apperrors.ErrRollNumberExists
		}
	}

	student.ID = newID()
	student.ProfileCompleted = false
	if student.Skills == nil {
		student.Skills = []string{}
	}
	student.Applications = []string{}

	s.data.Students = append(s.data.Students, student)
	if err := s.persist(); err != nil {
		s.data.Students = s.data.Students[:len(s.data.Students)-1]
		return err
	}

	s.logger.Info().Str("studentId", student.ID).Str("rollNumber", student.RollNumber).Msg("Student registered")
	return nil
}

// RegisterOfficer adds a new T&P officer account. Email and employee ID must
// be unique within the officers collection.
func (s *Store) RegisterOfficer(officer *models.TnpOfficer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.TnpOfficers {
		if existing.Email == officer.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for _, existing := range s.data.TnpOfficers {
		if existing.EmployeeID == officer.EmployeeID {
			return apperrors.ErrEmployeeIDExists
		}
	}

	officer.ID = newID()
	s.data.TnpOfficers = append(s.data.TnpOfficers, officer)
	if err := s.persist(); err != nil {
		s.data.TnpOfficers = s.data.TnpOfficers[:len(s.data.TnpOfficers)-1]
		return err
	}

	s.logger.Info().Str("officerId", officer.ID).Str("employeeId", officer.EmployeeID).Msg("Officer registered")
	return nil
}

// RegisterCompany adds a new company account. Email and HR ID must be unique
// within the companies collection.
func (s *Store) RegisterCompany(company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data.Companies {
		if existing.Email == company.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for _, existing := range s.data.Companies {
		if existing.HRID == company.HRID {
			return apperrors.ErrHRIDExists
		}
	}

	company.ID = newID()
	company.JobPostings = []string{}
	s.data.Companies = append(s.data.Companies, company)
	if err := s.persist(); err != nil {
		s.data.Companies = s.data.Companies[:len(s.data.Companies)-1]
		return err
	}

	s.logger.Info().Str("companyId", company.ID).Str("companyName", company.CompanyName).Msg("Company registered")
	return nil
}

// Login authenticates against the role's collection with an exact,
// case-sensitive email and password match and sets the session user.
// Hardening (hashing, lockout) is deliberately out of scope.
func (s *Store) Login(email, password string, role models.RoleType) (*models.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session *models.SessionUser
	switch role {
	case models.RoleStudent:
		for _, st := range s.data.Students {
			if st.Email == email && st.Password == password {
				session = &models.SessionUser{Role: role, Student: st}
				break
			}
		}
	case models.RoleTnp:
		for _, o := range s.data.TnpOfficers {
			if o.Email == email && o.Password == password {
				session = &models.SessionUser{Role: role, Officer: o}
				break
			}
		}
	case models.RoleCompany:
		for _, c := range s.data.Companies {
			if c.Email == email && c.Password == password {
				session = &models.SessionUser{Role: role, Company: c}
				break
			}
		}
	default:
		return nil, apperrors.ErrInvalidRole
	}

	if session == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.current = session
	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", session.ID()).Str("role", string(role)).Msg("User logged in")
	return session, nil
}

// Logout clears the session user and removes the persisted session record;
// the bulk snapshot is re-persisted unchanged.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.provider.ClearSession(); err != nil {
		return err
	}
	if err := s.provider.SaveState(s.data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// CurrentUser returns the session user, or nil when logged out
func (s *Store) CurrentUser() *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PostJob creates a job posting owned by job.CompanyID. The company must
// exist; its jobPostings list is extended together with the jobs collection.
func (s *Store) PostJob(job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	company := s.companyByID(job.CompanyID)
	if company == nil {
		return apperrors.ErrCompanyNotFound
	}

	job.ID = newID()
	job.CompanyName = company.CompanyName
	job.PostedDate = helpers.Today()
	job.Applicants = []string{}
	job.Selected = []string{}

	s.data.Jobs = append(s.data.Jobs, job)
	company.JobPostings = append(company.JobPostings, job.ID)
	if err := s.persist(); err != nil {
		s.data.Jobs = s.data.Jobs[:len(s.data.Jobs)-1]
		company.JobPostings = company.JobPostings[:len(company.JobPostings)-1]
		return err
	}

	s.logger.Info().Str("jobId", job.ID).Str("companyId", job.CompanyID).Str("title", job.Title).Msg("Job posted")
	return nil
}

// ApplyJob submits a pending application for the student/job pair and keeps
// job.applicants and student.applications mutually consistent. A student may
// hold at most one application per job, resolved or not.
func (s *Store) ApplyJob(studentID, jobID, coverLetter string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := s.studentByID(studentID)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	job := s.jobByID(jobID)
	if job == nil {
		return nil, apperrors.ErrJobNotFound
	}
	for _, app := range s.data.Applications {
		if app.StudentID == studentID && app.JobID == jobID {
			return nil, apperrors.ErrAlreadyApplied
		}
	}

	application := &models.Application{
		ID:          newID(),
		StudentID:   studentID,
		JobID:       jobID,
		Status:      models.StatusPending,
		AppliedDate: helpers.Today(),
		CoverLetter: coverLetter,
	}

	s.data.Applications = append(s.data.Applications, application)
	job.Applicants = append(job.Applicants, studentID)
	student.Applications = append(student.Applications, application.ID)
	if err := s.persist(); err != nil {
		s.data.Applications = s.data.Applications[:len(s.data.Applications)-1]
		job.Applicants = job.Applicants[:len(job.Applicants)-1]
		student.Applications = student.Applications[:len(student.Applications)-1]
		return nil, err
	}

	s.logger.Info().Str("applicationId", application.ID).Str("studentId", studentID).Str("jobId", jobID).Msg("Application submitted")
	return application, nil
}

// UpdateApplicationStatus resolves a pending application. Transitions are
// one-way: attempts to move an already-resolved application fail, so a
// second accept can neither duplicate job.selected nor reset the placement
// date. Accepting writes the student's placement record from the job.
func (s *Store) UpdateApplicationStatus(applicationID string, status models.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status != models.StatusAccepted && status != models.StatusRejected {
		return apperrors.ErrInvalidStatus
	}

	application := s.applicationByID(applicationID)
	if application == nil {
		return apperrors.ErrApplicationNotFound
	}
	if application.Status.IsTerminal() {
		return apperrors.ErrApplicationResolved
	}

	job := s.jobByID(application.JobID)
	if job == nil {
		return apperrors.ErrJobNotFound
	}
	student := s.studentByID(application.StudentID)
	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	previousStatus := application.Status
	previousPlacement := student.Placement
	application.Status = status
	if status == models.StatusAccepted {
		job.Selected = append(job.Selected, student.ID)
		student.Placement = &models.Placement{
			Company:  job.CompanyName,
			Position: job.Title,
			Package:  job.Package,
			Date:     helpers.Today(),
		}
	}

	if err := s.persist(); err != nil {
		application.Status = previousStatus
		if status == models.StatusAccepted {
			job.Selected = job.Selected[:len(job.Selected)-1]
			student.Placement = previousPlacement
		}
		return err
	}

	s.logger.Info().Str("applicationId", applicationID).Str("status", string(status)).Msg("Application resolved")
	return nil
}

// UpdateStudent writes an edited student record back into the collection.
// Roll number uniqueness is re-checked only when the roll number changed.
// The session user is refreshed when it is the edited record.
func (s *Store) UpdateStudent(updated *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, st := range s.data.Students {
		if st.ID == updated.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.ErrStudentNotFound
	}

	if updated.RollNumber != s.data.Students[index].RollNumber {
		for _, other := range s.data.Students {
			if other.ID != updated.ID && other.RollNumber == updated.RollNumber {
				return apperrors.ErrRollNumberExists
			}
		}
	}

	previous := s.data.Students[index]
	s.data.Students[index] = updated
	sessionHeld := s.current != nil && s.current.Role == models.RoleStudent && s.current.Student.ID == updated.ID
	if sessionHeld {
		s.current.Student = updated
	}
	if err := s.persist(); err != nil {
		s.data.Students[index] = previous
		if sessionHeld {
			s.current.Student = previous
		}
		return err
	}
	return nil
}

// UpdateOfficer writes an edited officer record back into the collection.
// Employee ID uniqueness is re-checked only when it changed.
func (s *Store) UpdateOfficer(updated *models.TnpOfficer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, o := range s.data.TnpOfficers {
		if o.ID == updated.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.ErrOfficerNotFound
	}

	if updated.EmployeeID != s.data.TnpOfficers[index].EmployeeID {
		for _, other := range s.data.TnpOfficers {
			if other.ID != updated.ID && other.EmployeeID == updated.EmployeeID {
				return apperrors.ErrEmployeeIDExists
			}
		}
	}

	previous := s.data.TnpOfficers[index]
	s.data.TnpOfficers[index] = updated
	sessionHeld := s.current != nil && s.current.Role == models.RoleTnp && s.current.Officer.ID == updated.ID
	if sessionHeld {
		s.current.Officer = updated
	}
	if err := s.persist(); err != nil {
		s.data.TnpOfficers[index] = previous
		if sessionHeld {
			s.current.Officer = previous
		}
		return err
	}
	return nil
}

// UpdateCompany writes an edited company record back into the collection.
// HR ID uniqueness is re-checked only when it changed.
func (s *Store) UpdateCompany(updated *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, c := range s.data.Companies {
		if c.ID == updated.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.ErrCompanyNotFound
	}

	if updated.HRID != s.data.Companies[index].HRID {
		for _, other := range s.data.Companies {
			if other.ID != updated.ID && other.HRID == updated.HRID {
				return apperrors.ErrHRIDExists
			}
		}
	}

	previous := s.data.Companies[index]
	s.data.Companies[index] = updated
	sessionHeld := s.current != nil && s.current.Role == models.RoleCompany && s.current.Company.ID == updated.ID
	if sessionHeld {
		s.current.Company = updated
	}
	if err := s.persist(); err != nil {
		s.data.Companies[index] = previous
		if sessionHeld {
			s.current.Company = previous
		}
		return err
	}
	return nil
}

// unlocked lookup helpers

func (s *Store) studentByID(id string) *models.Student {
	for _, st := range s.data.Students {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) companyByID(id string) *models.Company {
	for _, c := range s.data.Companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) officerByID(id string) *models.TnpOfficer {
	for _, o := range s.data.TnpOfficers {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) jobByID(id string) *models.Job {
	for _, j := range s.data.Jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (s *Store) applicationByID(id string) *models.Application {
	for _, a := range s.data.Applications {
		if a.ID == id {
			return a
		}
	}
	return nil
}
