package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/pkg/apperrors"
)

func studentProfileRequest() *dto.UpdateStudentProfileRequest {
	return &dto.UpdateStudentProfileRequest{
		Name:          "Asha Verma",
		Phone:         "+919876543210",
		Github:        "https://github.com/ashav",
		LinkedIn:      "https://linkedin.com/in/ashav",
		CGPA:          8.6,
		Tenth:         92.5,
		Twelfth:       90.0,
		Interest:      "Backend systems",
		GradYear:      2027,
		Skills:        []string{"Go", "SQL"},
		CGPASemesters: []float64{8.2, 8.4, 8.5, 8.6, 8.7, 8.8},
	}
}

func TestUpdateStudentProfileCompletesProfile(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	student := &models.Student{
		Name:       "Asha Verma",
		Email:      "asha@college.edu",
		Password:   "Pass@123",
		RollNumber: "21CS104",
		Course:     "B.Tech",
		Department: "CSE",
		Year:       3, // expects six semester values
		CGPA:       8.4,
	}
	require.NoError(t, st.RegisterStudent(student))
	require.False(t, student.ProfileCompleted)

	profile, err := service.UpdateStudentProfile(student.ID, studentProfileRequest(), nil)
	require.NoError(t, err)

	assert.True(t, profile.ProfileCompleted)
	assert.Equal(t, 8.6, profile.CGPA)
	assert.False(t, profile.HasResume)

	stored, err := st.StudentByID(student.ID)
	require.NoError(t, err)
	assert.True(t, stored.ProfileCompleted)
	assert.Equal(t, []string{"Go", "SQL"}, stored.Skills)
}

func TestUpdateStudentProfileWithResume(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	student := &models.Student{
		Name: "Asha Verma", Email: "asha@college.edu", Password: "Pass@123",
		RollNumber: "21CS104", Course: "B.Tech", Department: "CSE", Year: 3, CGPA: 8.4,
	}
	require.NoError(t, st.RegisterStudent(student))

	profile, err := service.UpdateStudentProfile(student.ID, studentProfileRequest(),
		strings.NewReader("%PDF-1.4 minimal"))
	require.NoError(t, err)
	assert.True(t, profile.HasResume)

	stored, err := st.StudentByID(student.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Resume, "data:application/pdf;base64,"))
}

func TestUpdateStudentProfileRejectedResumeLeavesRecord(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	student := &models.Student{
		Name: "Asha Verma", Email: "asha@college.edu", Password: "Pass@123",
		RollNumber: "21CS104", Course: "B.Tech", Department: "CSE", Year: 3, CGPA: 8.4,
	}
	require.NoError(t, st.RegisterStudent(student))

	_, err := service.UpdateStudentProfile(student.ID, studentProfileRequest(),
		strings.NewReader("plain text, not a pdf"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidResume)

	stored, err := st.StudentByID(student.ID)
	require.NoError(t, err)
	assert.False(t, stored.ProfileCompleted)
	assert.Empty(t, stored.Resume)
}

func TestUpdateStudentProfileValidation(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	student := &models.Student{
		Name: "Asha Verma", Email: "asha@college.edu", Password: "Pass@123",
		RollNumber: "21CS104", Course: "B.Tech", Department: "CSE", Year: 3, CGPA: 8.4,
	}
	require.NoError(t, st.RegisterStudent(student))

	t.Run("bad phone", func(t *testing.T) {
		req := studentProfileRequest()
		req.Phone = "12345"
		_, err := service.UpdateStudentProfile(student.ID, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPhone)
	})

	t.Run("wrong semester count", func(t *testing.T) {
		req := studentProfileRequest()
		req.CGPASemesters = []float64{8.2, 8.4}
		_, err := service.UpdateStudentProfile(student.ID, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCGPA)
	})

	t.Run("out of range semester value", func(t *testing.T) {
		req := studentProfileRequest()
		req.CGPASemesters[2] = 10.5
		_, err := service.UpdateStudentProfile(student.ID, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCGPA)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := service.UpdateStudentProfile("missing", studentProfileRequest(), nil)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestUpdateOfficerProfile(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	officer := &models.TnpOfficer{
		Name: "Placement Cell", Email: "tnp@campus.edu", Password: "Tnp@1234",
		EmployeeID: "TNP001", Position: "Officer",
	}
	require.NoError(t, st.RegisterOfficer(officer))

	profile, err := service.UpdateOfficerProfile(officer.ID, &dto.UpdateOfficerProfileRequest{
		Name:       "Placement Cell",
		EmployeeID: "TNP001",
		Position:   "Senior Officer",
		Department: "Training & Placement",
		Phone:      "+911234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Officer", profile.Position)
}

func TestUpdateCompanyProfile(t *testing.T) {
	st := newTestStore(t)
	service := NewProfileService(st, zerolog.Nop())

	company := &models.Company{
		CompanyName: "Acme Corp", Email: "hr@acme.com", Password: "Hire@123",
		HRName: "R. Iyer", HRID: "HR001",
	}
	require.NoError(t, st.RegisterCompany(company))

	profile, err := service.UpdateCompanyProfile(company.ID, &dto.UpdateCompanyProfileRequest{
		CompanyName: "Acme Corporation",
		HRName:      "R. Iyer",
		HRID:        "HR001",
		HREmail:     "talent@acme.com",
		Industry:    "Software",
		Website:     "https://acme.com",
		Phone:       "+911234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", profile.CompanyName)
	assert.Equal(t, "talent@acme.com", profile.HREmail)

	t.Run("bad hr email", func(t *testing.T) {
		_, err := service.UpdateCompanyProfile(company.ID, &dto.UpdateCompanyProfileRequest{
			CompanyName: "Acme Corporation", HRName: "R. Iyer", HRID: "HR001",
			HREmail: "nope", Industry: "Software", Website: "https://acme.com",
			Phone: "+911234567890",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
	})
}
