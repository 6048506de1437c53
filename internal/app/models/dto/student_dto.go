package dto

import "github.com/akshay/schoolms/internal/app/models"

// AddStudentRequest represents the enrollment form payload. The enrollment
// number is proposed by the caller (the add-student form pre-fills it from the
// generator) and validated for uniqueness server-side.
type AddStudentRequest struct {
	CourseID         int64   `json:"course_id" binding:"required" example:"1"`
	EnrollmentNumber string  `json:"enrollment_number" binding:"required" example:"ENR20260001"`
	FirstName        string  `json:"first_name" binding:"required,max=50" example:"Ananya"`
	LastName         string  `json:"last_name" binding:"required,max=50" example:"Sharma"`
	DateOfBirth      string  `json:"date_of_birth" binding:"required" example:"2004-06-15"`
	Gender           string  `json:"gender" binding:"required,oneof=Male Female Other" example:"Female"`
	FatherName       string  `json:"father_name" binding:"required,max=100" example:"Rajesh Sharma"`
	MotherName       string  `json:"mother_name" binding:"required,max=100" example:"Priya Sharma"`
	Address          string  `json:"address" binding:"required" example:"42 MG Road, Pune"`
	Phone            string  `json:"phone" binding:"required,max=15" example:"+919876543210"`
	Email            string  `json:"email" binding:"required,email" example:"ananya@example.com"`
	Discount         float64 `json:"discount" binding:"gte=0,lte=100" example:"10"`
}

// UpdateStudentRequest represents the update form payload: a full replacement
// of the personal fields plus an optional course reassignment.
type UpdateStudentRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=Male Female Other"`
	FatherName  string `json:"father_name" binding:"required,max=100"`
	MotherName  string `json:"mother_name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"required,max=15"`
	Email       string `json:"email" binding:"required,email"`
	CourseID    int64  `json:"course_id" example:"2"`
}

// PayFeesRequest represents a fee payment. A payload that fails to parse as a
// number is rejected by binding before the range checks run.
type PayFeesRequest struct {
	Amount float64 `json:"amount" binding:"required" example:"15000"`
}

// SearchStudentRequest carries the two mutually exclusive search inputs.
type SearchStudentRequest struct {
	EnrollmentNumber string `json:"enrollment_number" form:"enrollment_number"`
	Name             string `json:"name" form:"name"`
}

// SearchStudentResponse distinguishes the single-match detail view from the
// multiple-match list view.
type SearchStudentResponse struct {
	Student  *models.Student   `json:"student,omitempty"`
	Students []*models.Student `json:"students,omitempty"`
	Matches  int               `json:"matches"`
}

// AddStudentFormResponse is the support data for the enrollment form: the
// course catalog plus a suggested next enrollment number.
type AddStudentFormResponse struct {
	Courses              []*models.Course `json:"courses"`
	NextEnrollmentNumber string           `json:"next_enrollment_number"`
}

// UpdateStudentFormResponse is the support data for the update form.
type UpdateStudentFormResponse struct {
	Student *models.Student  `json:"student"`
	Courses []*models.Course `json:"courses"`
}

// PayFeesFormResponse is the support data for the payment form.
type PayFeesFormResponse struct {
	Student *models.Student `json:"student"`
}
