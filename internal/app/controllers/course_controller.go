package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/services"
	"github.com/akshay/schoolms/internal/middleware"
)

// CourseController handles course catalog lookups
type CourseController struct {
	courseService  *services.CourseService
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, studentService *services.StudentService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService:  courseService,
		studentService: studentService,
		logger:         logger,
	}
}

// ListCourses returns the course catalog
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, ""))
}

// GetCourseFees returns the fee and duration for one course
// @Summary Course fee lookup
// @Description Returns the fee and duration used to pre-fill the enrollment form
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseFeesResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invalid course selected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /get_course_fees/{course_id} [get]
func (c *CourseController) GetCourseFees(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := &dto.CourseFeesResponse{
		TotalFees: course.TotalFees,
		Duration:  course.Duration,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// ViewCourseStudents lists the students enrolled in one course
// @Summary Course roster
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseStudentsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invalid course selected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /view_course_students/{course_id} [get]
func (c *CourseController) ViewCourseStudents(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	resp, err := c.studentService.CourseStudents(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}
