package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/middleware"
)

// ProfileController handles the per-role profile edit endpoints
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// UpdateStudentProfile handles a student's profile edit
// @Summary Update student profile
// @Description Applies a full profile edit. Accepts multipart form data with an optional PDF resume attachment.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file false "Resume attachment (PDF)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or rejected resume"
// @Router /student/profile [put]
func (c *ProfileController) UpdateStudentProfile(ctx *gin.Context) {
	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student profile payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var resumeFile multipart.File
	if fileHeader, err := ctx.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to open resume attachment")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Could not read resume attachment")
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}
		defer file.Close()
		resumeFile = file
	}

	studentID := ctx.GetString(middleware.ContextUserID)
	profile, err := c.profileService.UpdateStudentProfile(studentID, &req, readerOrNil(resumeFile))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateOfficerProfile handles a T&P officer's profile edit
// @Summary Update officer profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateOfficerProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.OfficerResponse} "Updated profile"
// @Router /tnp/profile [put]
func (c *ProfileController) UpdateOfficerProfile(ctx *gin.Context) {
	var req dto.UpdateOfficerProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid officer profile payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	officerID := ctx.GetString(middleware.ContextUserID)
	profile, err := c.profileService.UpdateOfficerProfile(officerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateCompanyProfile handles a company's profile edit
// @Summary Update company profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCompanyProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyResponse} "Updated profile"
// @Router /company/profile [put]
func (c *ProfileController) UpdateCompanyProfile(ctx *gin.Context) {
	var req dto.UpdateCompanyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company profile payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	companyID := ctx.GetString(middleware.ContextUserID)
	profile, err := c.profileService.UpdateCompanyProfile(companyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// readerOrNil keeps a nil multipart.File from turning into a non-nil
// io.Reader interface value.
func readerOrNil(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}
