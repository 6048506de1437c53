package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
)

// fakeStudentRepo is an in-memory stand-in for the student repository.
type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.EnrollmentNumber == student.EnrollmentNumber {
			return apperrors.ErrEnrollmentNumberExists
		}
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	copy := *student
	f.students[student.ID] = &copy
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copy := *s
	return &copy, nil
}

func (f *fakeStudentRepo) GetByEnrollmentNumber(_ context.Context, enrollmentNumber string) (*models.Student, error) {
	for _, s := range f.students {
		if s.EnrollmentNumber == enrollmentNumber {
			copy := *s
			return &copy, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) EnrollmentNumberExists(_ context.Context, enrollmentNumber string) (bool, error) {
	for _, s := range f.students {
		if s.EnrollmentNumber == enrollmentNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) GetLastCreated(_ context.Context) (*models.Student, error) {
	var last *models.Student
	for _, s := range f.students {
		if last == nil || s.ID > last.ID {
			last = s
		}
	}
	if last == nil {
		return nil, nil
	}
	copy := *last
	return &copy, nil
}

func (f *fakeStudentRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.CourseID == courseID {
			copy := *s
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) SearchByName(_ context.Context, name string) ([]*models.Student, error) {
	term := strings.ToLower(name)
	var out []*models.Student
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.FirstName), term) ||
			strings.Contains(strings.ToLower(s.LastName), term) {
			copy := *s
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) UpdateDetails(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copy := *student
	f.students[student.ID] = &copy
	return nil
}

func (f *fakeStudentRepo) ApplyPayment(_ context.Context, id int64, amount float64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if amount > s.RemainingFees {
		return nil, apperrors.NewCustomError(
			apperrors.ErrPaymentExceedsBalance,
			fmt.Sprintf("Amount exceeds remaining fees (%.2f)", s.RemainingFees),
		)
	}
	s.PaidFees += amount
	s.RemainingFees -= amount
	copy := *s
	return &copy, nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentRepo) Count(_ context.Context) (int, error) {
	return len(f.students), nil
}

func (f *fakeStudentRepo) FeeTotals(_ context.Context) (float64, float64, error) {
	var collected, pending float64
	for _, s := range f.students {
		collected += s.PaidFees
		pending += s.RemainingFees
	}
	return collected, pending, nil
}

func (f *fakeStudentRepo) ListWithPendingFees(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.RemainingFees > 0 {
			copy := *s
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemainingFees > out[j].RemainingFees })
	return out, nil
}

// fakeCourseRepo is an in-memory stand-in for the course repository.
type fakeCourseRepo struct {
	courses map[int64]*models.Course
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	f := &fakeCourseRepo{courses: make(map[int64]*models.Course)}
	for _, c := range courses {
		f.courses[c.ID] = c
	}
	return f
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseRepo) Count(_ context.Context) (int, error) {
	return len(f.courses), nil
}

func newTestStudentService(studentRepo *fakeStudentRepo, courseRepo *fakeCourseRepo) *StudentService {
	svc := NewStudentService(studentRepo, courseRepo, zerolog.Nop())
	svc.nowFunc = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func validAddStudentRequest(courseID int64) *dto.AddStudentRequest {
	return &dto.AddStudentRequest{
		CourseID:         courseID,
		EnrollmentNumber: "ENR20260001",
		FirstName:        "Ananya",
		LastName:         "Sharma",
		DateOfBirth:      "2004-06-15",
		Gender:           "Female",
		FatherName:       "Rajesh Sharma",
		MotherName:       "Priya Sharma",
		Address:          "42 MG Road, Pune",
		Phone:            "+919876543210",
		Email:            "ananya@example.com",
	}
}

func TestEnrollComputesDiscountedFees(t *testing.T) {
	course := &models.Course{ID: 1, Name: "B.Tech Computer Science", Duration: "4 years", TotalFees: 90000}
	svc := newTestStudentService(newFakeStudentRepo(), newFakeCourseRepo(course))

	req := validAddStudentRequest(1)
	req.Discount = 10

	student, err := svc.Enroll(context.Background(), req)
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	if student.TotalFees != 81000 {
		t.Errorf("TotalFees = %v, want 81000", student.TotalFees)
	}
	if student.PaidFees != 0 {
		t.Errorf("PaidFees = %v, want 0", student.PaidFees)
	}
	if student.RemainingFees != 81000 {
		t.Errorf("RemainingFees = %v, want 81000", student.RemainingFees)
	}
	if student.Course == nil || student.Course.ID != 1 {
		t.Errorf("Course not attached to enrolled student")
	}
}

func TestEnrollValidationOrder(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}

	tests := []struct {
		name    string
		mutate  func(*dto.AddStudentRequest)
		wantErr error
	}{
		{
			name:    "missing course",
			mutate:  func(r *dto.AddStudentRequest) { r.CourseID = 0 },
			wantErr: apperrors.ErrMissingCourse,
		},
		{
			name:    "missing enrollment number",
			mutate:  func(r *dto.AddStudentRequest) { r.EnrollmentNumber = "" },
			wantErr: apperrors.ErrMissingEnrollmentNumber,
		},
		{
			name:    "unknown course",
			mutate:  func(r *dto.AddStudentRequest) { r.CourseID = 99 },
			wantErr: apperrors.ErrCourseNotFound,
		},
		{
			name:    "discount above hundred",
			mutate:  func(r *dto.AddStudentRequest) { r.Discount = 120 },
			wantErr: apperrors.ErrInvalidDiscount,
		},
		{
			name:    "bad date of birth",
			mutate:  func(r *dto.AddStudentRequest) { r.DateOfBirth = "15-06-2004" },
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStudentRepo()
			svc := newTestStudentService(repo, newFakeCourseRepo(course))

			req := validAddStudentRequest(1)
			tt.mutate(req)

			_, err := svc.Enroll(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Enroll() error = %v, want %v", err, tt.wantErr)
			}
			if len(repo.students) != 0 {
				t.Errorf("rejected enrollment must not persist a student")
			}
		})
	}
}

func TestEnrollRejectsDuplicateEnrollmentNumber(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	if _, err := svc.Enroll(context.Background(), validAddStudentRequest(1)); err != nil {
		t.Fatalf("first Enroll() error = %v", err)
	}

	dup := validAddStudentRequest(1)
	dup.Email = "other@example.com"
	_, err := svc.Enroll(context.Background(), dup)
	if !errors.Is(err, apperrors.ErrEnrollmentNumberExists) {
		t.Errorf("Enroll() error = %v, want ErrEnrollmentNumberExists", err)
	}
	if len(repo.students) != 1 {
		t.Errorf("duplicate enrollment must not persist a second student")
	}
}

func TestPayFees(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	student, err := svc.PayFees(context.Background(), enrolled.ID, 15000)
	if err != nil {
		t.Fatalf("PayFees() error = %v", err)
	}
	if student.PaidFees != 15000 || student.RemainingFees != 75000 {
		t.Errorf("after payment paid=%v remaining=%v, want 15000/75000", student.PaidFees, student.RemainingFees)
	}
	if student.PaidFees+student.RemainingFees != student.TotalFees {
		t.Errorf("fee counters out of balance: paid=%v remaining=%v total=%v",
			student.PaidFees, student.RemainingFees, student.TotalFees)
	}

	// a second payment can settle the exact balance
	student, err = svc.PayFees(context.Background(), enrolled.ID, 75000)
	if err != nil {
		t.Fatalf("PayFees() error = %v", err)
	}
	if student.RemainingFees != 0 {
		t.Errorf("RemainingFees = %v, want 0", student.RemainingFees)
	}
}

func TestPayFeesRejections(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{name: "zero amount", amount: 0, wantErr: apperrors.ErrInvalidPaymentAmount},
		{name: "negative amount", amount: -500, wantErr: apperrors.ErrInvalidPaymentAmount},
		{name: "amount exceeds balance", amount: 90001, wantErr: apperrors.ErrPaymentExceedsBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PayFees(context.Background(), enrolled.ID, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PayFees() error = %v, want %v", err, tt.wantErr)
			}

			stored := repo.students[enrolled.ID]
			if stored.PaidFees != 0 || stored.RemainingFees != 90000 {
				t.Errorf("rejected payment changed stored counters: paid=%v remaining=%v",
					stored.PaidFees, stored.RemainingFees)
			}
		})
	}
}

func TestPayFeesUnknownStudent(t *testing.T) {
	svc := newTestStudentService(newFakeStudentRepo(), newFakeCourseRepo())

	_, err := svc.PayFees(context.Background(), 42, 100)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("PayFees() error = %v, want ErrStudentNotFound", err)
	}
}

func TestUpdateReassignsCourse(t *testing.T) {
	cheap := &models.Course{ID: 1, TotalFees: 30000}
	pricey := &models.Course{ID: 2, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(cheap, pricey))

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(2))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if _, err := svc.PayFees(context.Background(), enrolled.ID, 40000); err != nil {
		t.Fatalf("PayFees() error = %v", err)
	}

	req := &dto.UpdateStudentRequest{
		FirstName:   "Ananya",
		LastName:    "Verma",
		DateOfBirth: "2004-06-15",
		Gender:      "Female",
		FatherName:  "Rajesh Sharma",
		MotherName:  "Priya Sharma",
		Address:     "42 MG Road, Pune",
		Phone:       "+919876543210",
		Email:       "ananya@example.com",
		CourseID:    1,
	}

	student, err := svc.Update(context.Background(), enrolled.ID, req)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if student.CourseID != 1 {
		t.Errorf("CourseID = %v, want 1", student.CourseID)
	}
	if student.TotalFees != 30000 {
		t.Errorf("TotalFees = %v, want new course fee 30000", student.TotalFees)
	}
	// moving to a cheaper course than the amount already paid leaves a
	// negative balance rather than issuing a refund
	if student.RemainingFees != -10000 {
		t.Errorf("RemainingFees = %v, want -10000", student.RemainingFees)
	}
	if student.LastName != "Verma" {
		t.Errorf("LastName = %q, want %q", student.LastName, "Verma")
	}
}

func TestUpdateSkipsUnknownCourse(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	req := &dto.UpdateStudentRequest{
		FirstName:   "Ananya",
		LastName:    "Verma",
		DateOfBirth: "2004-06-15",
		Gender:      "Female",
		FatherName:  "Rajesh Sharma",
		MotherName:  "Priya Sharma",
		Address:     "42 MG Road, Pune",
		Phone:       "+919876543210",
		Email:       "ananya@example.com",
		CourseID:    77,
	}

	student, err := svc.Update(context.Background(), enrolled.ID, req)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// the reassignment is dropped but the field update still lands
	if student.CourseID != 1 {
		t.Errorf("CourseID = %v, want unchanged 1", student.CourseID)
	}
	if student.TotalFees != 90000 {
		t.Errorf("TotalFees = %v, want unchanged 90000", student.TotalFees)
	}
	if repo.students[enrolled.ID].LastName != "Verma" {
		t.Errorf("personal field update did not persist")
	}
}

func TestSearch(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	first := validAddStudentRequest(1)
	if _, err := svc.Enroll(context.Background(), first); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	second := validAddStudentRequest(1)
	second.EnrollmentNumber = "ENR20260002"
	second.FirstName = "Rohan"
	second.LastName = "Sharma"
	second.Email = "rohan@example.com"
	if _, err := svc.Enroll(context.Background(), second); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	t.Run("enrollment number exact match", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), "ENR20260001", "")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if resp.Student == nil || resp.Student.EnrollmentNumber != "ENR20260001" {
			t.Errorf("Search() did not return the matching student")
		}
		if resp.Matches != 1 {
			t.Errorf("Matches = %d, want 1", resp.Matches)
		}
	})

	t.Run("enrollment number takes precedence over name", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), "ENR20260002", "Ananya")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if resp.Student == nil || resp.Student.FirstName != "Rohan" {
			t.Errorf("Search() should match by enrollment number when both inputs are set")
		}
	})

	t.Run("single name match", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), "", "rohan")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if resp.Student == nil || resp.Student.FirstName != "Rohan" {
			t.Errorf("case-insensitive name search did not return the student")
		}
	})

	t.Run("multiple name matches", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), "", "Sharma")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if resp.Matches != 2 || len(resp.Students) != 2 {
			t.Errorf("Matches = %d len = %d, want 2 matches in list form", resp.Matches, len(resp.Students))
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", "Nobody")
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Errorf("Search() error = %v, want ErrStudentNotFound", err)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", "")
		if !errors.Is(err, apperrors.ErrNoSearchQuery) {
			t.Errorf("Search() error = %v, want ErrNoSearchQuery", err)
		}
	})
}

func TestDeleteStudent(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	if err := svc.Delete(context.Background(), enrolled.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Search(context.Background(), enrolled.EnrollmentNumber, ""); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("deleted student still found by search, error = %v", err)
	}

	if err := svc.Delete(context.Background(), enrolled.ID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("second Delete() error = %v, want ErrStudentNotFound", err)
	}
}

func TestDashboardStats(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	courses := newFakeCourseRepo(course)
	svc := newTestStudentService(repo, courses)

	t.Run("empty system yields zero sums", func(t *testing.T) {
		stats, err := svc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("DashboardStats() error = %v", err)
		}
		if stats.TotalStudents != 0 || stats.TotalFeesCollected != 0 || stats.TotalFeesPending != 0 {
			t.Errorf("empty dashboard = %+v, want zero counters", stats)
		}
		if stats.TotalCourses != 1 {
			t.Errorf("TotalCourses = %d, want 1", stats.TotalCourses)
		}
	})

	enrolled, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if _, err := svc.PayFees(context.Background(), enrolled.ID, 20000); err != nil {
		t.Fatalf("PayFees() error = %v", err)
	}

	t.Run("sums reflect payments", func(t *testing.T) {
		stats, err := svc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("DashboardStats() error = %v", err)
		}
		if stats.TotalStudents != 1 {
			t.Errorf("TotalStudents = %d, want 1", stats.TotalStudents)
		}
		if stats.TotalFeesCollected != 20000 {
			t.Errorf("TotalFeesCollected = %v, want 20000", stats.TotalFeesCollected)
		}
		if stats.TotalFeesPending != 70000 {
			t.Errorf("TotalFeesPending = %v, want 70000", stats.TotalFeesPending)
		}
	})
}

func TestFeeDashboard(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	first, err := svc.Enroll(context.Background(), validAddStudentRequest(1))
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	second := validAddStudentRequest(1)
	second.EnrollmentNumber = "ENR20260002"
	second.Email = "rohan@example.com"
	if _, err := svc.Enroll(context.Background(), second); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	// settle the first student fully so only the second remains pending
	if _, err := svc.PayFees(context.Background(), first.ID, 90000); err != nil {
		t.Fatalf("PayFees() error = %v", err)
	}

	resp, err := svc.FeeDashboard(context.Background())
	if err != nil {
		t.Fatalf("FeeDashboard() error = %v", err)
	}
	if len(resp.Students) != 1 {
		t.Fatalf("len(Students) = %d, want 1", len(resp.Students))
	}
	if resp.Students[0].EnrollmentNumber != "ENR20260002" {
		t.Errorf("fee dashboard lists %q, want the unpaid student", resp.Students[0].EnrollmentNumber)
	}
	if resp.TotalPending != 90000 {
		t.Errorf("TotalPending = %v, want 90000", resp.TotalPending)
	}
}

func TestNextEnrollmentNumberFromRepository(t *testing.T) {
	course := &models.Course{ID: 1, TotalFees: 90000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(course))

	next, err := svc.NextEnrollmentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextEnrollmentNumber() error = %v", err)
	}
	if next != "ENR20260001" {
		t.Errorf("NextEnrollmentNumber() = %q, want ENR20260001", next)
	}

	req := validAddStudentRequest(1)
	req.EnrollmentNumber = next
	if _, err := svc.Enroll(context.Background(), req); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	next, err = svc.NextEnrollmentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextEnrollmentNumber() error = %v", err)
	}
	if next != "ENR20260002" {
		t.Errorf("NextEnrollmentNumber() = %q, want ENR20260002", next)
	}
}

func TestListGroupedByCourse(t *testing.T) {
	btech := &models.Course{ID: 1, Name: "B.Tech Computer Science", TotalFees: 90000}
	mtech := &models.Course{ID: 2, Name: "M.Tech Computer Science", TotalFees: 60000}
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, newFakeCourseRepo(btech, mtech))

	if _, err := svc.Enroll(context.Background(), validAddStudentRequest(1)); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	courses, err := svc.ListGroupedByCourse(context.Background())
	if err != nil {
		t.Fatalf("ListGroupedByCourse() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("len(courses) = %d, want 2", len(courses))
	}
	if len(courses[0].Students) != 1 {
		t.Errorf("first course has %d students, want 1", len(courses[0].Students))
	}
	if len(courses[1].Students) != 0 {
		t.Errorf("second course has %d students, want 0", len(courses[1].Students))
	}
}
