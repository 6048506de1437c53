package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/services"
	"github.com/akshay/schoolms/internal/middleware"
)

// DashboardController serves the aggregate views
type DashboardController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(studentService *services.StudentService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		studentService: studentService,
		logger:         logger,
	}
}

// Dashboard returns the headline statistics
// @Summary Dashboard statistics
// @Description Total students, total courses, and collected/pending fee sums
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	stats, err := c.studentService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// FeeDashboard lists students with an outstanding balance
// @Summary Fee dashboard
// @Description Students with remaining fees, largest balance first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeeDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fee_dashboard [get]
func (c *DashboardController) FeeDashboard(ctx *gin.Context) {
	resp, err := c.studentService.FeeDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}
