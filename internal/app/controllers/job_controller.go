package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/middleware"
)

// JobController handles job posting and listing endpoints
type JobController struct {
	jobService services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// jobFilterFromQuery reads the optional listing filters from the query
// string.
func jobFilterFromQuery(ctx *gin.Context) store.JobFilter {
	return store.JobFilter{
		Type:       models.JobType(ctx.Query("type")),
		Department: ctx.Query("department"),
		Status:     ctx.Query("status"),
	}
}

// PostJob handles a company posting a new job
// @Summary Post a job
// @Description Creates a job posting owned by the authenticated company.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostJobRequest true "Job posting"
// @Success 201 {object} dto.APIResponse{data=models.Job} "Created posting"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or past deadline"
// @Router /company/jobs [post]
func (c *JobController) PostJob(ctx *gin.Context) {
	var req dto.PostJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job posting payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	companyID := ctx.GetString(middleware.ContextUserID)
	job, err := c.jobService.PostJob(companyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: job})
}

// CompanyJobs lists the authenticated company's own postings
// @Summary List own postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Postings"
// @Router /company/jobs [get]
func (c *JobController) CompanyJobs(ctx *gin.Context) {
	companyID := ctx.GetString(middleware.ContextUserID)
	jobs, err := c.jobService.CompanyJobs(companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobListResponse{Jobs: jobs}})
}

// EligibleJobs lists open postings the authenticated student qualifies for
// @Summary List eligible jobs
// @Description Lists postings whose department and CGPA requirements the student meets, with optional type/status filters.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param type query string false "Job type filter"
// @Param status query string false "active or expired"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Eligible postings"
// @Router /student/jobs [get]
func (c *JobController) EligibleJobs(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextUserID)
	jobs, err := c.jobService.EligibleJobs(studentID, jobFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobListResponse{Jobs: jobs}})
}

// AllJobs lists every posting for the placement cell
// @Summary List all jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param type query string false "Job type filter"
// @Param department query string false "Eligible department filter"
// @Param status query string false "active or expired"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Postings"
// @Router /tnp/jobs [get]
func (c *JobController) AllJobs(ctx *gin.Context) {
	jobs := c.jobService.AllJobs(jobFilterFromQuery(ctx))
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobListResponse{Jobs: jobs}})
}
