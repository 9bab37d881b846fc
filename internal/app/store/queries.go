package store

import (
	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/pkg/apperrors"
	"github.com/yigit/campushire/internal/pkg/helpers"
)

// Read side of the store. Returned records are the live pointers; callers
// treat them as read-only and go through the mutation operations to change
// anything.

// Departments the placement cell tracks for distribution charts.
var Departments = []string{"CSE", "ECE", "ME", "EE", "IT"}

// JobFilter narrows job listings.
type JobFilter struct {
	Type       models.JobType // zero value matches all types
	Department string         // listed in eligibleDepartments
	Status     string         // "active", "expired" or empty for both
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	Department string
	Status     string // "placed", "unplaced" or empty for both
	MinCGPA    float64
	Year       int // zero matches all years
}

// Overview aggregates the placement-cell dashboard numbers.
type Overview struct {
	TotalStudents   int                   `json:"totalStudents"`
	TotalCompanies  int                   `json:"totalCompanies"`
	TotalJobs       int                   `json:"totalJobs"`
	TotalPlacements int                   `json:"totalPlacements"`
	Departments     []DepartmentBreakdown `json:"departments"`
}

// DepartmentBreakdown carries per-department student and placement counts.
type DepartmentBreakdown struct {
	Department string `json:"department"`
	Students   int    `json:"students"`
	Placed     int    `json:"placed"`
}

// StudentByID returns the student with the given id.
func (s *Store) StudentByID(id string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.studentByID(id); st != nil {
		return st, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

// CompanyByID returns the company with the given id.
func (s *Store) CompanyByID(id string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.companyByID(id); c != nil {
		return c, nil
	}
	return nil, apperrors.ErrCompanyNotFound
}

// OfficerByID returns the officer with the given id.
func (s *Store) OfficerByID(id string) (*models.TnpOfficer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.officerByID(id); o != nil {
		return o, nil
	}
	return nil, apperrors.ErrOfficerNotFound
}

// JobByID returns the job with the given id.
func (s *Store) JobByID(id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j := s.jobByID(id); j != nil {
		return j, nil
	}
	return nil, apperrors.ErrJobNotFound
}

// ApplicationByID returns the application with the given id.
func (s *Store) ApplicationByID(id string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a := s.applicationByID(id); a != nil {
		return a, nil
	}
	return nil, apperrors.ErrApplicationNotFound
}

// Students returns all students in registration order.
func (s *Store) Students() []*models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Student(nil), s.data.Students...)
}

// Companies returns all companies in registration order.
func (s *Store) Companies() []*models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Company(nil), s.data.Companies...)
}

// FilterJobs returns jobs matching the filter, in posting order.
func (s *Store) FilterJobs(f JobFilter) []*models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := []*models.Job{}
	for _, job := range s.data.Jobs {
		if !matchJob(job, f) {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func matchJob(job *models.Job, f JobFilter) bool {
	if f.Type != "" && job.Type != f.Type {
		return false
	}
	if f.Department != "" {
		found := false
		for _, dept := range job.EligibleDepartments {
			if dept == f.Department {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	active := !helpers.DatePassed(job.Deadline)
	if f.Status == "active" && !active {
		return false
	}
	if f.Status == "expired" && active {
		return false
	}
	return true
}

// EligibleJobs returns the open jobs the student can apply to: department
// listed, CGPA at or above the minimum and the deadline not yet passed.
func (s *Store) EligibleJobs(studentID string, f JobFilter) ([]*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := s.studentByID(studentID)
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	jobs := []*models.Job{}
	for _, job := range s.data.Jobs {
		if !job.EligibleFor(student) {
			continue
		}
		if helpers.DatePassed(job.Deadline) {
			continue
		}
		if !matchJob(job, JobFilter{Type: f.Type, Department: f.Department}) {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// JobsByCompany returns the jobs posted by a company, in posting order.
func (s *Store) JobsByCompany(companyID string) ([]*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.companyByID(companyID) == nil {
		return nil, apperrors.ErrCompanyNotFound
	}
	jobs := []*models.Job{}
	for _, job := range s.data.Jobs {
		if job.CompanyID == companyID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// FilterStudents returns students matching the filter, in registration order.
func (s *Store) FilterStudents(f StudentFilter) []*models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	students := []*models.Student{}
	for _, st := range s.data.Students {
		if f.Department != "" && st.Department != f.Department {
			continue
		}
		if f.Status == "placed" && !st.Placed() {
			continue
		}
		if f.Status == "unplaced" && st.Placed() {
			continue
		}
		if st.CGPA < f.MinCGPA {
			continue
		}
		if f.Year != 0 && st.Year != f.Year {
			continue
		}
		students = append(students, st)
	}
	return students
}

// ApplicationsByStudent returns the student's applications in submission order.
func (s *Store) ApplicationsByStudent(studentID string) ([]*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.studentByID(studentID) == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	apps := []*models.Application{}
	for _, app := range s.data.Applications {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// ApplicationsForCompany returns applications to any of the company's jobs,
// optionally narrowed by status.
func (s *Store) ApplicationsForCompany(companyID string, status models.ApplicationStatus) ([]*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company := s.companyByID(companyID)
	if company == nil {
		return nil, apperrors.ErrCompanyNotFound
	}

	posted := make(map[string]bool, len(company.JobPostings))
	for _, id := range company.JobPostings {
		posted[id] = true
	}

	apps := []*models.Application{}
	for _, app := range s.data.Applications {
		if !posted[app.JobID] {
			continue
		}
		if status != "" && app.Status != status {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// Placements returns all students holding a placement record.
func (s *Store) Placements() []*models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := []*models.Student{}
	for _, st := range s.data.Students {
		if st.Placed() {
			placed = append(placed, st)
		}
	}
	return placed
}

// RecentApplications returns up to n applications, newest first.
func (s *Store) RecentApplications(n int) []*models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.data.Applications)
	if n > total {
		n = total
	}
	recent := make([]*models.Application, 0, n)
	for i := total - 1; i >= total-n; i-- {
		recent = append(recent, s.data.Applications[i])
	}
	return recent
}

// OverviewStats computes the placement-cell dashboard aggregates.
func (s *Store) OverviewStats() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()

	overview := Overview{
		TotalStudents:  len(s.data.Students),
		TotalCompanies: len(s.data.Companies),
		TotalJobs:      len(s.data.Jobs),
	}
	for _, st := range s.data.Students {
		if st.Placed() {
			overview.TotalPlacements++
		}
	}
	for _, dept := range Departments {
		breakdown := DepartmentBreakdown{Department: dept}
		for _, st := range s.data.Students {
			if st.Department != dept {
				continue
			}
			breakdown.Students++
			if st.Placed() {
				breakdown.Placed++
			}
		}
		overview.Departments = append(overview.Departments, breakdown)
	}
	return overview
}

// Snapshot returns the serializable image of the five collections.
func (s *Store) Snapshot() *models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}
