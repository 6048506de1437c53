// Package routes wires HTTP endpoints to their controllers
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshay/schoolms/internal/app/controllers"
	"github.com/akshay/schoolms/internal/middleware"
)

// Controllers groups the controller instances the router needs.
type Controllers struct {
	Auth      *controllers.AuthController
	Student   *controllers.StudentController
	Course    *controllers.CourseController
	Dashboard *controllers.DashboardController
	Report    *controllers.ReportController
}

// RegisterRoutes mounts all API endpoints under /api/v1. Everything except
// login and the health probe sits behind the session middleware.
func RegisterRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1.POST("/login", ctrl.Auth.Login)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireSession())
	{
		authenticated.GET("/logout", ctrl.Auth.Logout)
		authenticated.POST("/add_admin", ctrl.Auth.AddAdmin)

		authenticated.GET("/dashboard", ctrl.Dashboard.Dashboard)
		authenticated.GET("/fee_dashboard", ctrl.Dashboard.FeeDashboard)

		authenticated.GET("/add_student", ctrl.Student.AddStudentForm)
		authenticated.POST("/add_student", ctrl.Student.AddStudent)
		authenticated.GET("/search_student", ctrl.Student.SearchStudent)
		authenticated.POST("/search_student", ctrl.Student.SearchStudent)
		authenticated.GET("/view_students", ctrl.Student.ViewStudents)
		authenticated.GET("/student_details/:student_id", ctrl.Student.StudentDetails)
		authenticated.GET("/student_report/:student_id", ctrl.Student.StudentReport)
		authenticated.GET("/update_student/:student_id", ctrl.Student.UpdateStudentForm)
		authenticated.POST("/update_student/:student_id", ctrl.Student.UpdateStudent)
		authenticated.POST("/delete_student/:student_id", ctrl.Student.DeleteStudent)

		authenticated.GET("/pay_fees/:student_id", ctrl.Student.PayFeesForm)
		authenticated.POST("/pay_fees/:student_id", ctrl.Student.PayFees)

		authenticated.GET("/courses", ctrl.Course.ListCourses)
		authenticated.GET("/get_course_fees/:course_id", ctrl.Course.GetCourseFees)
		authenticated.GET("/view_course_students/:course_id", ctrl.Course.ViewCourseStudents)

		authenticated.GET("/generate_report", ctrl.Report.GenerateReport)
		authenticated.GET("/download_report", ctrl.Report.DownloadReport)
	}
}
