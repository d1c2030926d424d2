package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/middleware"
	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/service"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Auth        *service.AuthService
	Students    *service.StudentService
	Faculty     *service.FacultyService
	Courses     *service.CourseService
	Assessments *service.AssessmentService
	Attendance  *service.AttendanceService
	Grades      *service.GradeService
	Analytics   *service.AnalyticsService
	Exports     *service.ExportService
}

// RegisterRoutes mounts the API under the given prefix. Role checks mirror
// the portal UI: admins manage rosters and the catalogue, faculty run
// assessments and attendance, students read their own records.
func RegisterRoutes(r *gin.Engine, prefix string, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	studentHandler := NewStudentHandler(svc.Students)
	facultyHandler := NewFacultyHandler(svc.Faculty)
	courseHandler := NewCourseHandler(svc.Courses)
	assessmentHandler := NewAssessmentHandler(svc.Assessments)
	attendanceHandler := NewAttendanceHandler(svc.Attendance, svc.Exports)
	gradeHandler := NewGradeHandler(svc.Grades, svc.Exports)
	dashboardHandler := NewDashboardHandler(svc.Analytics)
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)

	api := r.Group(prefix)

	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(svc.Auth))

	secured.GET("/auth/me", authHandler.Me)

	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty)
	admin := middleware.RequireRoles(models.RoleAdmin)
	selfOrStaff := middleware.RBAC(string(models.RoleAdmin), string(models.RoleFaculty), "SELF")

	secured.GET("/students", staff, studentHandler.List)
	secured.GET("/students/:id/semesters", selfOrStaff, gradeHandler.Semesters)
	secured.GET("/students/:id/gpa", selfOrStaff, gradeHandler.SemesterGPA)
	secured.GET("/students/:id/cgpa", selfOrStaff, gradeHandler.CGPA)
	secured.GET("/students/:id/marksheet", selfOrStaff, gradeHandler.MarkSheet)
	secured.GET("/students/:id/marksheet/export", selfOrStaff, gradeHandler.ExportMarkSheet)

	secured.GET("/faculty", facultyHandler.List)
	secured.POST("/faculty", admin, facultyHandler.Create)
	secured.DELETE("/faculty/:id", admin, facultyHandler.Delete)

	secured.GET("/courses", courseHandler.List)
	secured.POST("/courses", admin, courseHandler.Create)
	secured.DELETE("/courses/:id", admin, courseHandler.Delete)
	secured.GET("/courses/:id/students", staff, studentHandler.ListByCourse)

	secured.GET("/courses/:id/assessments", assessmentHandler.List)
	secured.POST("/courses/:id/assessments", staff, assessmentHandler.Create)
	secured.PUT("/courses/:id/assessments/:assessmentId/score", staff, assessmentHandler.UpdateScore)

	secured.GET("/courses/:id/attendance", attendanceHandler.Daily)
	secured.GET("/courses/:id/attendance/summary", attendanceHandler.Summary)
	secured.GET("/courses/:id/attendance/summary/export", staff, attendanceHandler.ExportSummary)
	secured.PUT("/courses/:id/attendance", staff, attendanceHandler.Update)

	secured.GET("/dashboard/kpis", admin, dashboardHandler.Kpis)
	secured.GET("/analytics", admin, analyticsHandler.Overview)
}
