package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/store"
)

func TestOverviewIncludesRecentActivity(t *testing.T) {
	f := newApplicationFixture(t)
	stats := NewStatsService(f.store, zerolog.Nop())

	_, err := f.service.Apply(f.student.ID, &dto.ApplyJobRequest{JobID: f.job.ID, CoverLetter: "x"})
	require.NoError(t, err)

	overview := stats.Overview()
	assert.Equal(t, 1, overview.TotalStudents)
	assert.Equal(t, 1, overview.TotalCompanies)
	assert.Equal(t, 1, overview.TotalJobs)
	assert.Equal(t, 0, overview.TotalPlacements)
	assert.Len(t, overview.Departments, len(store.Departments))

	require.Len(t, overview.RecentActivity, 1)
	activity := overview.RecentActivity[0]
	assert.Equal(t, f.student.Name, activity.StudentName)
	assert.Equal(t, f.job.Title, activity.JobTitle)
	assert.Equal(t, f.company.CompanyName, activity.CompanyName)
}

func TestCompanyStatsCounters(t *testing.T) {
	f := newApplicationFixture(t)
	stats := NewStatsService(f.store, zerolog.Nop())

	application, err := f.service.Apply(f.student.ID, &dto.ApplyJobRequest{JobID: f.job.ID, CoverLetter: "x"})
	require.NoError(t, err)

	counters, err := stats.CompanyStats(f.company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counters.Jobs)
	assert.Equal(t, 1, counters.Applications)
	assert.Equal(t, 0, counters.Hires)

	require.NoError(t, f.service.Resolve(f.company.ID, application.ID, models.StatusAccepted))

	counters, err = stats.CompanyStats(f.company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counters.Hires)
}

func TestPlacementsRows(t *testing.T) {
	f := newApplicationFixture(t)
	stats := NewStatsService(f.store, zerolog.Nop())

	application, err := f.service.Apply(f.student.ID, &dto.ApplyJobRequest{JobID: f.job.ID, CoverLetter: "x"})
	require.NoError(t, err)
	require.NoError(t, f.service.Resolve(f.company.ID, application.ID, models.StatusAccepted))

	rows := stats.Placements()
	require.Len(t, rows, 1)
	assert.Equal(t, f.student.Name, rows[0].StudentName)
	assert.Equal(t, f.student.RollNumber, rows[0].RollNumber)
	assert.Equal(t, f.company.CompanyName, rows[0].Company)
	assert.Equal(t, f.job.Title, rows[0].Position)
	assert.Equal(t, f.job.Package, rows[0].Package)
}

func TestStudentsAndCompaniesListings(t *testing.T) {
	f := newApplicationFixture(t)
	stats := NewStatsService(f.store, zerolog.Nop())

	students := stats.Students(store.StudentFilter{})
	require.Len(t, students, 1)
	assert.Equal(t, f.student.Email, students[0].Email)

	companies := stats.Companies()
	require.Len(t, companies, 1)
	assert.Equal(t, f.company.CompanyName, companies[0].CompanyName)
}
