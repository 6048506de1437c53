package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/services"
	"github.com/akshay/schoolms/internal/middleware"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
)

// StudentController handles enrollment, search, and student record management
type StudentController struct {
	studentService *services.StudentService
	courseService  *services.CourseService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, courseService *services.CourseService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		courseService:  courseService,
		logger:         logger,
	}
}

// parseIDParam parses a numeric path parameter, responding with 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// AddStudentForm returns the enrollment form support data
// @Summary Enrollment form data
// @Description Returns the course catalog and a suggested next enrollment number
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AddStudentFormResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add_student [get]
func (c *StudentController) AddStudentForm(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	next, err := c.studentService.NextEnrollmentNumber(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := &dto.AddStudentFormResponse{
		Courses:              courses,
		NextEnrollmentNumber: next,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// AddStudent enrolls a new student
// @Summary Enroll student
// @Description Creates a student record with discounted fees for the selected course
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student added successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invalid course selected"
// @Failure 409 {object} dto.ErrorResponse "Enrollment number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add_student [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.Enroll(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", student.ID).
		Str("enrollmentNumber", student.EnrollmentNumber).
		Msg("Student enrolled")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student added successfully!"))
}

// SearchStudent looks up students by enrollment number or name
// @Summary Search students
// @Description Exact lookup by enrollment number, or partial match on first/last name
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment_number query string false "Exact enrollment number"
// @Param name query string false "Partial name"
// @Success 200 {object} dto.APIResponse{data=dto.SearchStudentResponse}
// @Failure 400 {object} dto.ErrorResponse "No search query provided"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search_student [get]
func (c *StudentController) SearchStudent(ctx *gin.Context) {
	var req dto.SearchStudentRequest
	if ctx.Request.Method == http.MethodPost {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	} else {
		if err := ctx.ShouldBindQuery(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	result, err := c.studentService.Search(ctx.Request.Context(), req.EnrollmentNumber, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, ""))
}

// ViewStudents lists all students grouped by course
// @Summary View students
// @Description Returns every course together with its enrolled students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /view_students [get]
func (c *StudentController) ViewStudents(ctx *gin.Context) {
	courses, err := c.studentService.ListGroupedByCourse(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
}

// StudentDetails returns one student with course information
// @Summary Student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid student_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student_details/{student_id} [get]
func (c *StudentController) StudentDetails(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// UpdateStudentForm returns the update form support data
// @Summary Update form data
// @Description Returns the student's current record and the course catalog
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateStudentFormResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid student_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /update_student/{student_id} [get]
func (c *StudentController) UpdateStudentForm(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := &dto.UpdateStudentFormResponse{
		Student: student,
		Courses: courses,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateStudent replaces a student's personal details and optionally reassigns the course
// @Summary Update student
// @Description Replaces personal fields; a changed course_id recomputes fees from the new course
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /update_student/{student_id} [post]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully!"))
}

// StudentReport returns the printable summary for one student
// @Summary Student report
// @Description Returns the student record with course details for the printable view
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid student_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student_report/{student_id} [get]
func (c *StudentController) StudentReport(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// DeleteStudent removes a student record
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /delete_student/{student_id} [post]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", studentID).Msg("Student deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted successfully!"))
}

// PayFeesForm returns the payment form support data
// @Summary Payment form data
// @Description Returns the student's current fee state ahead of a payment
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.PayFeesFormResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid student_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pay_fees/{student_id} [get]
func (c *StudentController) PayFeesForm(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.PayFeesFormResponse{Student: student}, ""))
}

// PayFees records a fee payment
// @Summary Pay fees
// @Description Applies a payment against the student's remaining balance
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Param request body dto.PayFeesRequest true "Payment amount"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Payment successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or amount exceeds remaining fees"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pay_fees/{student_id} [post]
func (c *StudentController) PayFees(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	var req dto.PayFeesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidPaymentAmount)
		return
	}

	student, err := c.studentService.PayFees(ctx.Request.Context(), studentID, req.Amount)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", studentID).
		Float64("amount", req.Amount).
		Float64("remaining", student.RemainingFees).
		Msg("Fee payment recorded")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Payment successful!"))
}
