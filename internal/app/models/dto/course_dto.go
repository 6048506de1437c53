package dto

import "github.com/akshay/schoolms/internal/app/models"

// CourseFeesResponse is the machine-readable course fee lookup used by the
// enrollment form to pre-fill fee fields.
type CourseFeesResponse struct {
	TotalFees float64 `json:"total_fees" example:"90000"`
	Duration  string  `json:"duration" example:"4 years"`
}

// CourseStudentsResponse groups a course with its enrolled students.
type CourseStudentsResponse struct {
	Course   *models.Course    `json:"course"`
	Students []*models.Student `json:"students"`
}
