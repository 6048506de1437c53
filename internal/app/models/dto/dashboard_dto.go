package dto

import "github.com/akshay/schoolms/internal/app/models"

// DashboardResponse carries the aggregate statistics shown on the dashboard.
// Sums are zero, not null, when no students exist.
type DashboardResponse struct {
	TotalStudents      int     `json:"total_students" example:"120"`
	TotalCourses       int     `json:"total_courses" example:"11"`
	TotalFeesCollected float64 `json:"total_fees_collected" example:"1250000"`
	TotalFeesPending   float64 `json:"total_fees_pending" example:"430000"`
}

// FeeDashboardResponse lists students with an outstanding balance, largest
// balance first.
type FeeDashboardResponse struct {
	Students     []*models.Student `json:"students"`
	TotalPending float64           `json:"total_pending" example:"430000"`
}

// GenerateReportResponse names the document written by the report renderer.
type GenerateReportResponse struct {
	FileName string `json:"file_name" example:"School_Management_System_Report.pdf"`
}
