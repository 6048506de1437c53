package models

import "time"

// Student represents an enrolled student. Each student references exactly one
// course and carries denormalized fee state: RemainingFees is stored, not
// recomputed on read, and must equal TotalFees - PaidFees after every
// committed mutation.
type Student struct {
	ID               int64     `json:"id"`
	EnrollmentNumber string    `json:"enrollment_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	FatherName       string    `json:"father_name"`
	MotherName       string    `json:"mother_name"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	AdmissionDate    time.Time `json:"admission_date"`
	CourseID         int64     `json:"course_id"`
	TotalFees        float64   `json:"total_fees"`
	PaidFees         float64   `json:"paid_fees"`
	RemainingFees    float64   `json:"remaining_fees"`
	Course           *Course   `json:"course,omitempty"`
}
