package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/pkg/apperrors"
)

func TestFilterJobs(t *testing.T) {
	st := newTestStore(t)
	company := testCompany("hr@acme.com", "HR001")
	require.NoError(t, st.RegisterCompany(company))

	open := testJob(company.ID)
	require.NoError(t, st.PostJob(open))

	internship := testJob(company.ID)
	internship.Type = models.JobInternship
	internship.EligibleDepartments = []string{"ECE"}
	require.NoError(t, st.PostJob(internship))

	expired := testJob(company.ID)
	expired.Deadline = "2001-01-01"
	require.NoError(t, st.PostJob(expired))

	t.Run("no filter returns all", func(t *testing.T) {
		assert.Len(t, st.FilterJobs(JobFilter{}), 3)
	})

	t.Run("by type", func(t *testing.T) {
		jobs := st.FilterJobs(JobFilter{Type: models.JobInternship})
		require.Len(t, jobs, 1)
		assert.Equal(t, internship.ID, jobs[0].ID)
	})

	t.Run("by department", func(t *testing.T) {
		jobs := st.FilterJobs(JobFilter{Department: "ECE"})
		require.Len(t, jobs, 1)
		assert.Equal(t, internship.ID, jobs[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		assert.Len(t, st.FilterJobs(JobFilter{Status: "active"}), 2)

		jobs := st.FilterJobs(JobFilter{Status: "expired"})
		require.Len(t, jobs, 1)
		assert.Equal(t, expired.ID, jobs[0].ID)
	})
}

func TestEligibleJobs(t *testing.T) {
	st := newTestStore(t)
	company := testCompany("hr@acme.com", "HR001")
	require.NoError(t, st.RegisterCompany(company))

	student := testStudent("asha@college.edu", "21CS104") // CSE, CGPA 8.4
	require.NoError(t, st.RegisterStudent(student))

	matching := testJob(company.ID)
	require.NoError(t, st.PostJob(matching))

	wrongDept := testJob(company.ID)
	wrongDept.EligibleDepartments = []string{"ME"}
	require.NoError(t, st.PostJob(wrongDept))

	highBar := testJob(company.ID)
	highBar.MinCGPA = 9.5
	require.NoError(t, st.PostJob(highBar))

	pastDeadline := testJob(company.ID)
	pastDeadline.Deadline = "2001-01-01"
	require.NoError(t, st.PostJob(pastDeadline))

	jobs, err := st.EligibleJobs(student.ID, JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, matching.ID, jobs[0].ID)

	_, err = st.EligibleJobs("missing", JobFilter{})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestFilterStudents(t *testing.T) {
	st := newTestStore(t)

	cse := testStudent("a@college.edu", "21CS101")
	require.NoError(t, st.RegisterStudent(cse))

	ece := testStudent("b@college.edu", "21EC101")
	ece.Department = "ECE"
	ece.CGPA = 6.5
	ece.Year = 2
	require.NoError(t, st.RegisterStudent(ece))

	placed := testStudent("c@college.edu", "21CS102")
	require.NoError(t, st.RegisterStudent(placed))
	placed.Placement = &models.Placement{Company: "Acme Corp", Position: "Engineer", Package: 10, Date: "2026-08-01"}

	t.Run("by department", func(t *testing.T) {
		assert.Len(t, st.FilterStudents(StudentFilter{Department: "CSE"}), 2)
	})

	t.Run("by placement status", func(t *testing.T) {
		got := st.FilterStudents(StudentFilter{Status: "placed"})
		require.Len(t, got, 1)
		assert.Equal(t, placed.ID, got[0].ID)
		assert.Len(t, st.FilterStudents(StudentFilter{Status: "unplaced"}), 2)
	})

	t.Run("by minimum CGPA", func(t *testing.T) {
		assert.Len(t, st.FilterStudents(StudentFilter{MinCGPA: 7.0}), 2)
	})

	t.Run("by year", func(t *testing.T) {
		got := st.FilterStudents(StudentFilter{Year: 2})
		require.Len(t, got, 1)
		assert.Equal(t, ece.ID, got[0].ID)
	})
}

func TestApplicationsForCompany(t *testing.T) {
	st := newTestStore(t)

	student := testStudent("asha@college.edu", "21CS104")
	require.NoError(t, st.RegisterStudent(student))

	acme, acmeJob := registerCompanyWithJob(t, st)
	globex := testCompany("hr@globex.com", "HR002")
	require.NoError(t, st.RegisterCompany(globex))
	globexJob := testJob(globex.ID)
	require.NoError(t, st.PostJob(globexJob))

	toAcme, err := st.ApplyJob(student.ID, acmeJob.ID, "one")
	require.NoError(t, err)
	_, err = st.ApplyJob(student.ID, globexJob.ID, "two")
	require.NoError(t, err)

	apps, err := st.ApplicationsForCompany(acme.ID, "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, toAcme.ID, apps[0].ID)

	require.NoError(t, st.UpdateApplicationStatus(toAcme.ID, models.StatusRejected))

	pending, err := st.ApplicationsForCompany(acme.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	rejected, err := st.ApplicationsForCompany(acme.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	_, err = st.ApplicationsForCompany("missing", "")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestRecentApplicationsNewestFirst(t *testing.T) {
	st := newTestStore(t)

	_, job := registerCompanyWithJob(t, st)

	ids := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		student := testStudent(fmt.Sprintf("s%d@college.edu", i), fmt.Sprintf("21CS1%02d", i))
		require.NoError(t, st.RegisterStudent(student))
		app, err := st.ApplyJob(student.ID, job.ID, "cover")
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}

	recent := st.RecentApplications(5)
	require.Len(t, recent, 5)
	for i, app := range recent {
		assert.Equal(t, ids[len(ids)-1-i], app.ID)
	}

	all := st.RecentApplications(100)
	assert.Len(t, all, 7)
}

func TestOverviewStats(t *testing.T) {
	st := newTestStore(t)

	student := testStudent("asha@college.edu", "21CS104")
	require.NoError(t, st.RegisterStudent(student))
	other := testStudent("ravi@college.edu", "21EC104")
	other.Department = "ECE"
	require.NoError(t, st.RegisterStudent(other))

	_, job := registerCompanyWithJob(t, st)
	app, err := st.ApplyJob(student.ID, job.ID, "cover")
	require.NoError(t, err)
	require.NoError(t, st.UpdateApplicationStatus(app.ID, models.StatusAccepted))

	overview := st.OverviewStats()
	assert.Equal(t, 2, overview.TotalStudents)
	assert.Equal(t, 1, overview.TotalCompanies)
	assert.Equal(t, 1, overview.TotalJobs)
	assert.Equal(t, 1, overview.TotalPlacements)

	require.Len(t, overview.Departments, len(Departments))
	byDept := make(map[string]DepartmentBreakdown)
	for _, d := range overview.Departments {
		byDept[d.Department] = d
	}
	assert.Equal(t, 1, byDept["CSE"].Students)
	assert.Equal(t, 1, byDept["CSE"].Placed)
	assert.Equal(t, 1, byDept["ECE"].Students)
	assert.Equal(t, 0, byDept["ECE"].Placed)
	assert.Equal(t, 0, byDept["IT"].Students)
}

func TestPlacements(t *testing.T) {
	st := newTestStore(t)

	student := testStudent("asha@college.edu", "21CS104")
	require.NoError(t, st.RegisterStudent(student))
	_, job := registerCompanyWithJob(t, st)
	app, err := st.ApplyJob(student.ID, job.ID, "cover")
	require.NoError(t, err)

	assert.Empty(t, st.Placements())

	require.NoError(t, st.UpdateApplicationStatus(app.ID, models.StatusAccepted))
	placed := st.Placements()
	require.Len(t, placed, 1)
	assert.Equal(t, student.ID, placed[0].ID)
}
