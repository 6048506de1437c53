package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/db"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
	"github.com/akshay/schoolms/internal/pkg/dberrors"
)

const studentColumns = `id, enrollment_number, first_name, last_name, date_of_birth, gender,
	father_name, mother_name, address, phone, email, admission_date,
	course_id, total_fees, paid_fees, remaining_fees`

// IStudentRepository abstracts student persistence for services and tests
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Student, error)
	EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error)
	GetLastCreated(ctx context.Context) (*models.Student, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error)
	SearchByName(ctx context.Context, name string) ([]*models.Student, error)
	UpdateDetails(ctx context.Context, student *models.Student) error
	ApplyPayment(ctx context.Context, id int64, amount float64) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	FeeTotals(ctx context.Context) (collected float64, pending float64, err error)
	ListWithPendingFees(ctx context.Context) ([]*models.Student, error)
}

// StudentRepository handles database operations for students. It keeps the
// transaction helper alongside the pool because fee payments need an explicit
// read-then-write transaction.
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{db: database}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.EnrollmentNumber,
		&s.FirstName,
		&s.LastName,
		&s.DateOfBirth,
		&s.Gender,
		&s.FatherName,
		&s.MotherName,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.AdmissionDate,
		&s.CourseID,
		&s.TotalFees,
		&s.PaidFees,
		&s.RemainingFees,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a new student row. Unique violations on the enrollment
// number or email map to the corresponding application errors so concurrent
// duplicate submissions surface the same rejection as the pre-check.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (enrollment_number, first_name, last_name, date_of_birth, gender,
			father_name, mother_name, address, phone, email, admission_date,
			course_id, total_fees, paid_fees, remaining_fees)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		student.EnrollmentNumber,
		student.FirstName,
		student.LastName,
		student.DateOfBirth,
		student.Gender,
		student.FatherName,
		student.MotherName,
		student.Address,
		student.Phone,
		student.Email,
		student.AdmissionDate,
		student.CourseID,
		student.TotalFees,
		student.PaidFees,
		student.RemainingFees,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_enrollment_number_key") {
			return apperrors.ErrEnrollmentNumberExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEnrollmentNumber retrieves a student by their enrollment number
func (r *StudentRepository) GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE enrollment_number = $1`

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, query, enrollmentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// EnrollmentNumberExists checks whether an enrollment number is in use
func (r *StudentRepository) EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE enrollment_number = $1)`,
		enrollmentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment number: %w", err)
	}

	return exists, nil
}

// GetLastCreated retrieves the most recently created student by internal
// creation order. Returns nil without error when no students exist.
func (r *StudentRepository) GetLastCreated(ctx context.Context) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id DESC LIMIT 1`

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving last student: %w", err)
	}

	return student, nil
}

// GetByCourseID retrieves all students enrolled against a course
func (r *StudentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE course_id = $1 ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// SearchByName retrieves students whose first or last name contains the given
// term, case-insensitively.
func (r *StudentRepository) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// UpdateDetails replaces a student's personal fields and fee state in full
func (r *StudentRepository) UpdateDetails(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4,
			father_name = $5, mother_name = $6, address = $7, phone = $8, email = $9,
			course_id = $10, total_fees = $11, remaining_fees = $12
		WHERE id = $13
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.DateOfBirth,
		student.Gender,
		student.FatherName,
		student.MotherName,
		student.Address,
		student.Phone,
		student.Email,
		student.CourseID,
		student.TotalFees,
		student.RemainingFees,
		student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ApplyPayment applies a fee payment inside a transaction: the row is locked,
// the balance re-checked, and both running totals moved together. A payment
// that would drive the remaining balance negative rolls back with the current
// balance in the error message.
func (r *StudentRepository) ApplyPayment(ctx context.Context, id int64, amount float64) (*models.Student, error) {
	var updated *models.Student

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var remaining float64
		err := tx.QueryRow(ctx,
			`SELECT remaining_fees FROM students WHERE id = $1 FOR UPDATE`, id).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locking student row: %w", err)
		}

		if amount > remaining {
			return apperrors.NewCustomError(
				apperrors.ErrPaymentExceedsBalance,
				fmt.Sprintf("Amount exceeds remaining fees (%.2f)", remaining),
			)
		}

		row := tx.QueryRow(ctx, `
			UPDATE students
			SET paid_fees = paid_fees + $1, remaining_fees = remaining_fees - $1
			WHERE id = $2
			RETURNING `+studentColumns,
			amount, id)

		updated, err = scanStudent(row)
		if err != nil {
			return fmt.Errorf("error applying payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a student row unconditionally
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// FeeTotals returns the sums of paid and remaining fees across all students.
// An empty table yields zero sums.
func (r *StudentRepository) FeeTotals(ctx context.Context) (float64, float64, error) {
	var collected, pending float64
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(paid_fees), 0), COALESCE(SUM(remaining_fees), 0)
		FROM students
	`).Scan(&collected, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("error aggregating fees: %w", err)
	}

	return collected, pending, nil
}

// ListWithPendingFees retrieves students with an outstanding balance,
// largest balance first.
func (r *StudentRepository) ListWithPendingFees(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE remaining_fees > 0
		ORDER BY remaining_fees DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}
