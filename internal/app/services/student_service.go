package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/repositories"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
	"github.com/akshay/schoolms/internal/pkg/helpers"
)

// StudentService handles enrollment, fee ledger operations, search, and the
// dashboard aggregates.
type StudentService struct {
	studentRepo repositories.IStudentRepository
	courseRepo  repositories.ICourseRepository
	logger      zerolog.Logger

	// nowFunc is replaceable in tests
	nowFunc func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, courseRepo repositories.ICourseRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		logger:      logger,
		nowFunc:     time.Now,
	}
}

// NextEnrollmentNumber suggests the next enrollment number for the add-student
// form. A malformed stored suffix surfaces as a data-integrity error rather
// than silently restarting the sequence.
func (s *StudentService) NextEnrollmentNumber(ctx context.Context) (string, error) {
	last, err := s.studentRepo.GetLastCreated(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading last student: %w", err)
	}

	return nextEnrollmentNumber(last, s.nowFunc().Year())
}

// Enroll creates a new student. Validation short-circuits in order: course
// reference present, enrollment number present, enrollment number unused,
// course resolves. The student's total fee is the course fee reduced once by
// the optional discount percentage.
func (s *StudentService) Enroll(ctx context.Context, req *dto.AddStudentRequest) (*models.Student, error) {
	if req.CourseID == 0 {
		return nil, apperrors.ErrMissingCourse
	}

	if req.EnrollmentNumber == "" {
		return nil, apperrors.ErrMissingEnrollmentNumber
	}

	exists, err := s.studentRepo.EnrollmentNumberExists(ctx, req.EnrollmentNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEnrollmentNumberExists
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	if req.Discount < 0 || req.Discount > 100 {
		return nil, apperrors.ErrInvalidDiscount
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid date of birth, expected YYYY-MM-DD")
	}

	totalFees := course.TotalFees * (1 - req.Discount/100)

	student := &models.Student{
		EnrollmentNumber: req.EnrollmentNumber,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dateOfBirth,
		Gender:           req.Gender,
		FatherName:       req.FatherName,
		MotherName:       req.MotherName,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		AdmissionDate:    s.nowFunc(),
		CourseID:         course.ID,
		TotalFees:        totalFees,
		PaidFees:         0,
		RemainingFees:    totalFees,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	student.Course = course

	s.logger.Info().
		Str("enrollmentNumber", student.EnrollmentNumber).
		Int64("courseId", course.ID).
		Float64("totalFees", totalFees).
		Msg("Student enrolled")

	return student, nil
}

// PayFees applies a payment to a student's running totals. The amount must be
// strictly positive and not exceed the remaining balance; the balance check
// and both counter updates happen atomically in the repository.
func (s *StudentService) PayFees(ctx context.Context, studentID int64, amount float64) (*models.Student, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidPaymentAmount
	}

	student, err := s.studentRepo.ApplyPayment(ctx, studentID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Float64("amount", amount).
		Float64("remainingFees", student.RemainingFees).
		Msg("Fee payment recorded")

	return student, nil
}

// Update replaces a student's personal fields and optionally reassigns the
// course. On reassignment the new course's listed fee replaces the student's
// total (any enrollment discount is lost) and the remaining balance is
// recomputed against fees already paid; it may go negative when the new
// course is cheaper than the amount paid. A course reference that does not
// resolve skips the reassignment while the field update still commits.
func (s *StudentService) Update(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid date of birth, expected YYYY-MM-DD")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.DateOfBirth = dateOfBirth
	student.Gender = req.Gender
	student.FatherName = req.FatherName
	student.MotherName = req.MotherName
	student.Address = req.Address
	student.Phone = req.Phone
	student.Email = req.Email

	if req.CourseID != 0 && req.CourseID != student.CourseID {
		course, err := s.courseRepo.GetByID(ctx, req.CourseID)
		switch {
		case err == nil:
			student.CourseID = course.ID
			student.TotalFees = course.TotalFees
			student.RemainingFees = student.TotalFees - student.PaidFees
		case errors.Is(err, apperrors.ErrCourseNotFound):
			s.logger.Warn().
				Int64("studentId", studentID).
				Int64("courseId", req.CourseID).
				Msg("Course reassignment skipped, course does not exist")
		default:
			return nil, fmt.Errorf("error resolving course: %w", err)
		}
	}

	if err := s.studentRepo.UpdateDetails(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student row. There is no recovery mechanism and no payment
// history to cascade.
func (s *StudentService) Delete(ctx context.Context, studentID int64) error {
	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", studentID).Msg("Student deleted")
	return nil
}

// GetByID retrieves a student with their course attached
func (s *StudentService) GetByID(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, student.CourseID)
	if err == nil {
		student.Course = course
	}

	return student, nil
}

// Search runs one of the two mutually exclusive search modes: exact
// enrollment-number match, or case-insensitive substring match on first or
// last name. Zero matches yield a not-found error distinct from the missing
// query error.
func (s *StudentService) Search(ctx context.Context, enrollmentNumber, name string) (*dto.SearchStudentResponse, error) {
	if enrollmentNumber != "" {
		student, err := s.studentRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
		if err != nil {
			return nil, err
		}
		return &dto.SearchStudentResponse{Student: student, Matches: 1}, nil
	}

	if name != "" {
		students, err := s.studentRepo.SearchByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("error searching students: %w", err)
		}

		switch len(students) {
		case 0:
			return nil, apperrors.ErrStudentNotFound
		case 1:
			return &dto.SearchStudentResponse{Student: students[0], Matches: 1}, nil
		default:
			return &dto.SearchStudentResponse{Students: students, Matches: len(students)}, nil
		}
	}

	return nil, apperrors.ErrNoSearchQuery
}

// CourseStudents retrieves a course and its enrolled students
func (s *StudentService) CourseStudents(ctx context.Context, courseID int64) (*dto.CourseStudentsResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course students: %w", err)
	}

	return &dto.CourseStudentsResponse{Course: course, Students: students}, nil
}

// ListGroupedByCourse retrieves all courses, each with its students attached
func (s *StudentService) ListGroupedByCourse(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	for _, course := range courses {
		students, err := s.studentRepo.GetByCourseID(ctx, course.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving students for course %d: %w", course.ID, err)
		}
		course.Students = students
	}

	return courses, nil
}

// DashboardStats computes the aggregate counters shown on the dashboard. An
// empty student table produces zero sums.
func (s *StudentService) DashboardStats(ctx context.Context) (*dto.DashboardResponse, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	totalCourses, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	collected, pending, err := s.studentRepo.FeeTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalStudents:      totalStudents,
		TotalCourses:       totalCourses,
		TotalFeesCollected: collected,
		TotalFeesPending:   pending,
	}, nil
}

// FeeDashboard lists students with an outstanding balance, largest first,
// plus the overall pending total.
func (s *StudentService) FeeDashboard(ctx context.Context) (*dto.FeeDashboardResponse, error) {
	students, err := s.studentRepo.ListWithPendingFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students with pending fees: %w", err)
	}

	_, pending, err := s.studentRepo.FeeTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FeeDashboardResponse{
		Students:     students,
		TotalPending: pending,
	}, nil
}
