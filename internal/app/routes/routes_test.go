package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/app/controllers"
	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/middleware"
	"github.com/yigit/campushire/internal/pkg/auth"
	"github.com/yigit/campushire/internal/storage/memory"
)

type routerFixture struct {
	router     *gin.Engine
	store      *store.Store
	jwtService *auth.JWTService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(memory.New(), zerolog.Nop())
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "router-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushire.test",
	})

	lgr := zerolog.Nop()
	authService := services.NewAuthService(st, jwtService, lgr)
	profileService := services.NewProfileService(st, lgr)
	jobService := services.NewJobService(st, lgr)
	applicationService := services.NewApplicationService(st, lgr)
	statsService := services.NewStatsService(st, lgr)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewProfileController(profileService, lgr),
		controllers.NewJobController(jobService, lgr),
		controllers.NewApplicationController(applicationService, lgr),
		controllers.NewStatsController(statsService, lgr),
		middleware.NewAuthMiddleware(jwtService),
	)

	return &routerFixture{router: router, store: st, jwtService: jwtService}
}

func (f *routerFixture) tokenFor(t *testing.T, user *models.SessionUser) string {
	t.Helper()
	token, _, err := f.jwtService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCompanyStudentDirectory(t *testing.T) {
	f := newRouterFixture(t)

	company := &models.Company{
		CompanyName: "Acme Corp",
		Email:       "hr@acme.com",
		Password:    "Hire@123",
		HRName:      "R. Iyer",
		HRID:        "HR001",
	}
	require.NoError(t, f.store.RegisterCompany(company))

	cse := &models.Student{
		Name: "Asha Verma", Email: "asha@college.edu", Password: "Pass@123",
		RollNumber: "21CS104", Course: "B.Tech", Department: "CSE", Year: 3, CGPA: 8.4,
	}
	require.NoError(t, f.store.RegisterStudent(cse))
	ece := &models.Student{
		Name: "Rohan Mehta", Email: "rohan@college.edu", Password: "Pass@123",
		RollNumber: "21EC052", Course: "B.Tech", Department: "ECE", Year: 3, CGPA: 7.1,
	}
	require.NoError(t, f.store.RegisterStudent(ece))

	token := f.tokenFor(t, &models.SessionUser{Role: models.RoleCompany, Company: company})

	rec := f.get(t, "/api/v1/company/students?department=CSE&minCgpa=8", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []*dto.StudentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, cse.Email, body.Data[0].Email)
}

func TestCompanyStudentDirectoryRequiresCompanyRole(t *testing.T) {
	f := newRouterFixture(t)

	student := &models.Student{
		Name: "Asha Verma", Email: "asha@college.edu", Password: "Pass@123",
		RollNumber: "21CS104", Course: "B.Tech", Department: "CSE", Year: 3, CGPA: 8.4,
	}
	require.NoError(t, f.store.RegisterStudent(student))

	token := f.tokenFor(t, &models.SessionUser{Role: models.RoleStudent, Student: student})

	rec := f.get(t, "/api/v1/company/students", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.get(t, "/api/v1/company/students", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
