package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/middleware"
)

// ApplicationController handles application submission and review endpoints
type ApplicationController struct {
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// Apply handles a student applying to a job
// @Summary Apply to a job
// @Description Submits a pending application to an open posting the student is eligible for.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyJobRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Submitted application"
// @Failure 400 {object} dto.ErrorResponse "Deadline passed or not eligible"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /student/applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID := ctx.GetString(middleware.ContextUserID)
	application, err := c.applicationService.Apply(studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: application})
}

// StudentApplications lists the authenticated student's applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Router /student/applications [get]
func (c *ApplicationController) StudentApplications(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextUserID)
	applications, err := c.applicationService.StudentApplications(studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: applications})
}

// CompanyApplications lists applications to the company's postings
// @Summary List received applications
// @Description Lists applications to the authenticated company's postings, optionally narrowed to one status.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, accepted or rejected"
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyApplicationResponse} "Applications"
// @Router /company/applications [get]
func (c *ApplicationController) CompanyApplications(ctx *gin.Context) {
	companyID := ctx.GetString(middleware.ContextUserID)
	status := models.ApplicationStatus(ctx.Query("status"))

	applications, err := c.applicationService.CompanyApplications(companyID, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: applications})
}

// UpdateStatus resolves a pending application
// @Summary Accept or reject an application
// @Description Resolves a pending application to one of the company's own postings. Accepting records the student's placement.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application id"
// @Param request body dto.UpdateApplicationStatusRequest true "Resolution"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application resolved"
// @Failure 403 {object} dto.ErrorResponse "Posting belongs to another company"
// @Failure 409 {object} dto.ErrorResponse "Application already resolved"
// @Router /company/applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid status payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	companyID := ctx.GetString(middleware.ContextUserID)
	applicationID := ctx.Param("id")

	if err := c.applicationService.Resolve(companyID, applicationID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Application " + string(req.Status) + "."}})
}
