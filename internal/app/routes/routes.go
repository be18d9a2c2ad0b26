package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/records/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Student  *controllers.StudentController
	Lecturer *controllers.LecturerController
	Grade    *controllers.GradeController
	Health   *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, metricsHandler http.Handler) {
	router.GET("/health", c.Health.GetHealth)
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.GET("/:sid", c.Student.GetStudentByID)
		students.POST("", c.Student.CreateStudent)
		students.PUT("/:sid", c.Student.UpdateStudent)
	}

	v1.GET("/grades", c.Grade.GetGradeReport)
	v1.GET("/modules", c.Grade.GetAllModules)

	lecturers := v1.Group("/lecturers")
	{
		lecturers.GET("", c.Lecturer.GetAllLecturers)
		lecturers.DELETE("/:lid", c.Lecturer.DeleteLecturer)
	}

	v1.GET("/health", c.Health.GetHealth)
	v1.GET("/metrics", gin.WrapH(metricsHandler))
}
