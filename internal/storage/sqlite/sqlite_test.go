package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/app/models"
)

func newTestProvider(t *testing.T) *Store {
	t.Helper()
	provider, err := New(filepath.Join(t.TempDir(), "snapshots", "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { provider.Close() })
	return provider
}

func sampleData() *models.AppData {
	data := models.NewAppData()
	data.Students = append(data.Students, &models.Student{
		ID:         "s1",
		Name:       "Asha Verma",
		Email:      "asha@college.edu",
		Password:   "Pass@123",
		RollNumber: "21CS104",
		Department: "CSE",
		Year:       3,
		CGPA:       8.4,
		Skills:     []string{"Go"},
	})
	data.Jobs = append(data.Jobs, &models.Job{
		ID:                  "j1",
		CompanyID:           "c1",
		CompanyName:         "Acme Corp",
		Title:               "Backend Engineer",
		Type:                models.JobFullTime,
		EligibleDepartments: []string{"CSE"},
		MinCGPA:             7,
		Package:             12.5,
		Deadline:            "2099-12-31",
		Applicants:          []string{"s1"},
		Selected:            []string{},
	})
	return data
}

func TestLoadStateEmpty(t *testing.T) {
	provider := newTestProvider(t)

	data, err := provider.LoadState()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStateRoundTrip(t *testing.T) {
	provider := newTestProvider(t)

	require.NoError(t, provider.SaveState(sampleData()))

	loaded, err := provider.LoadState()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Students, 1)
	assert.Equal(t, "asha@college.edu", loaded.Students[0].Email)
	assert.Equal(t, "Pass@123", loaded.Students[0].Password)
	require.Len(t, loaded.Jobs, 1)
	assert.Equal(t, []string{"s1"}, loaded.Jobs[0].Applicants)
}

func TestSaveStateOverwrites(t *testing.T) {
	provider := newTestProvider(t)

	require.NoError(t, provider.SaveState(sampleData()))
	require.NoError(t, provider.SaveState(models.NewAppData()))

	loaded, err := provider.LoadState()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Students)
	assert.Empty(t, loaded.Jobs)
}

func TestSessionRoundTripAndClear(t *testing.T) {
	provider := newTestProvider(t)

	session, err := provider.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	user := &models.SessionUser{
		Role:    models.RoleStudent,
		Student: &models.Student{ID: "s1", Email: "asha@college.edu"},
	}
	require.NoError(t, provider.SaveSession(user))

	loaded, err := provider.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, models.RoleStudent, loaded.Role)
	assert.Equal(t, "s1", loaded.ID())

	require.NoError(t, provider.ClearSession())
	loaded, err = provider.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearSessionKeepsState(t *testing.T) {
	provider := newTestProvider(t)

	require.NoError(t, provider.SaveState(sampleData()))
	require.NoError(t, provider.SaveSession(&models.SessionUser{Role: models.RoleStudent, Student: &models.Student{ID: "s1"}}))
	require.NoError(t, provider.ClearSession())

	data, err := provider.LoadState()
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Len(t, data.Students, 1)
}

func TestReopenSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")

	provider, err := New(path)
	require.NoError(t, err)
	require.NoError(t, provider.SaveState(sampleData()))
	require.NoError(t, provider.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.LoadState()
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Len(t, data.Students, 1)
}
