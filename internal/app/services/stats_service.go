package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
)

// recentActivityLimit caps the dashboard's recent-activity feed.
const recentActivityLimit = 5

type statsService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewStatsService creates a new StatsService instance
func NewStatsService(st *store.Store, logger zerolog.Logger) StatsService {
	return &statsService{
		store:  st,
		logger: logger,
	}
}

// Overview builds the placement-cell dashboard: totals, per-department
// distribution and the most recent applications.
func (s *statsService) Overview() *dto.OverviewResponse {
	stats := s.store.OverviewStats()

	out := &dto.OverviewResponse{
		TotalStudents:   stats.TotalStudents,
		TotalCompanies:  stats.TotalCompanies,
		TotalJobs:       stats.TotalJobs,
		TotalPlacements: stats.TotalPlacements,
		Departments:     make([]*dto.DepartmentBreakdownResponse, 0, len(stats.Departments)),
		RecentActivity:  []*dto.ActivityResponse{},
	}
	for _, d := range stats.Departments {
		out.Departments = append(out.Departments, &dto.DepartmentBreakdownResponse{
			Department: d.Department,
			Students:   d.Students,
			Placed:     d.Placed,
		})
	}
	for _, app := range s.store.RecentApplications(recentActivityLimit) {
		activity := &dto.ActivityResponse{Date: app.AppliedDate}
		if student, err := s.store.StudentByID(app.StudentID); err == nil {
			activity.StudentName = student.Name
		}
		if job, err := s.store.JobByID(app.JobID); err == nil {
			activity.JobTitle = job.Title
			activity.CompanyName = job.CompanyName
		}
		out.RecentActivity = append(out.RecentActivity, activity)
	}
	return out
}

// CompanyStats counts the calling company's postings, the applications they
// drew and the hires made from them.
func (s *statsService) CompanyStats(companyID string) (*dto.CompanyStatsResponse, error) {
	jobs, err := s.store.JobsByCompany(companyID)
	if err != nil {
		return nil, err
	}

	stats := &dto.CompanyStatsResponse{Jobs: len(jobs)}
	for _, job := range jobs {
		stats.Applications += len(job.Applicants)
		stats.Hires += len(job.Selected)
	}
	return stats, nil
}

// Placements lists every placed student as a placements-table row.
func (s *statsService) Placements() []*dto.PlacementResponse {
	placed := s.store.Placements()

	out := make([]*dto.PlacementResponse, 0, len(placed))
	for _, student := range placed {
		out = append(out, &dto.PlacementResponse{
			StudentName: student.Name,
			RollNumber:  student.RollNumber,
			Course:      student.Course,
			Department:  student.Department,
			Company:     student.Placement.Company,
			Position:    student.Placement.Position,
			Package:     student.Placement.Package,
			Date:        student.Placement.Date,
		})
	}
	return out
}

// Students lists students for the placement cell, optionally filtered.
func (s *statsService) Students(filter store.StudentFilter) []*dto.StudentResponse {
	return dto.NewStudentResponses(s.store.FilterStudents(filter))
}

// Companies lists every registered company for the placement cell.
func (s *statsService) Companies() []*dto.CompanyResponse {
	return dto.NewCompanyResponses(s.store.Companies())
}
