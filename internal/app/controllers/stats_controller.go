package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/campushire/internal/app/models/dto"
	"github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/middleware"
)

// StatsController handles the placement cell and company dashboards
type StatsController struct {
	statsService services.StatsService
	logger       zerolog.Logger
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService, logger zerolog.Logger) *StatsController {
	return &StatsController{
		statsService: statsService,
		logger:       logger,
	}
}

// Overview returns the placement-cell dashboard
// @Summary Placement cell overview
// @Description Returns totals, per-department distribution and the recent-activity feed.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse} "Overview"
// @Router /tnp/overview [get]
func (c *StatsController) Overview(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.statsService.Overview()})
}

// Students lists students for the placement cell
// @Summary List students
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department filter"
// @Param status query string false "placed or unplaced"
// @Param minCgpa query number false "Minimum CGPA"
// @Param year query integer false "Academic year"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students"
// @Router /tnp/students [get]
func (c *StatsController) Students(ctx *gin.Context) {
	filter := store.StudentFilter{
		Department: ctx.Query("department"),
		Status:     ctx.Query("status"),
	}
	if raw := ctx.Query("minCgpa"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinCGPA = v
		}
	}
	if raw := ctx.Query("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Year = v
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.statsService.Students(filter)})
}

// Companies lists every registered company
// @Summary List companies
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyResponse} "Companies"
// @Router /tnp/companies [get]
func (c *StatsController) Companies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.statsService.Companies()})
}

// Placements lists every placed student
// @Summary List placements
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PlacementResponse} "Placements"
// @Router /tnp/placements [get]
func (c *StatsController) Placements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.statsService.Placements()})
}

// CompanyStats returns the company dashboard counters
// @Summary Company dashboard counters
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CompanyStatsResponse} "Counters"
// @Router /company/stats [get]
func (c *StatsController) CompanyStats(ctx *gin.Context) {
	companyID := ctx.GetString(middleware.ContextUserID)
	stats, err := c.statsService.CompanyStats(companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}
