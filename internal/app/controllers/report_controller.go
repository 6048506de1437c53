package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/services"
	"github.com/akshay/schoolms/internal/middleware"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
)

// ReportController handles the project report document
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// GenerateReport renders the project report PDF
// @Summary Generate report
// @Description Renders the project overview document and stores it server-side
// @Tags report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GenerateReportResponse} "Report generated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /generate_report [get]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	fileName, err := c.reportService.Generate()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := &dto.GenerateReportResponse{FileName: fileName}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Report generated"))
}

// DownloadReport serves the previously generated report PDF
// @Summary Download report
// @Tags report
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "Report PDF"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Report not generated yet"
// @Router /download_report [get]
func (c *ReportController) DownloadReport(ctx *gin.Context) {
	path := c.reportService.FilePath()
	if _, err := os.Stat(path); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrResourceNotFound, "Report has not been generated yet"))
		return
	}

	ctx.FileAttachment(path, "School_Management_System_Report.pdf")
}
