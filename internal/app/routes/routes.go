package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umutk/registrar/internal/app/controllers"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/middleware"
)

// SetupRouter configures all application routes.
//
// Access follows the role capabilities of the system: admins manage every
// entity, professors read courses and their rosters, students read
// courses and manage their own enrollments.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	professorController *controllers.ProfessorController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	sectionController *controllers.SectionController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Department routes
	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)

		departmentsAdmin := departments.Group("")
		departmentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			departmentsAdmin.POST("", departmentController.CreateDepartment)
			departmentsAdmin.PUT("/:id", departmentController.UpdateDepartment)
			departmentsAdmin.DELETE("/:id", departmentController.DeleteDepartment)
		}
	}

	// Professor routes. The "me" endpoints are the professor's own
	// dashboard; management is admin-only.
	professors := authenticated.Group("/professors")
	{
		professorsSelf := professors.Group("/me")
		professorsSelf.Use(authMiddleware.RoleRequired(models.RoleProfessor))
		{
			professorsSelf.GET("/courses", professorController.GetMyCourses)
			professorsSelf.GET("/students", professorController.GetMyStudents)
		}

		professorsAdmin := professors.Group("")
		professorsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			professorsAdmin.GET("", professorController.GetAllProfessors)
			professorsAdmin.GET("/:id", professorController.GetProfessorByID)
			professorsAdmin.POST("", professorController.CreateProfessor)
			professorsAdmin.PUT("/:id", professorController.UpdateProfessor)
			professorsAdmin.DELETE("/:id", professorController.DeleteProfessor)
		}
	}

	// Course routes. Every authenticated role can browse the catalog.
	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.PUT("/:id/professor", courseController.AssignProfessor)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// Student routes. The "me" endpoints are the student's own dashboard;
	// management is admin-only.
	students := authenticated.Group("/students")
	{
		studentsSelf := students.Group("/me")
		studentsSelf.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentsSelf.GET("/courses", studentController.GetMyCourses)
			studentsSelf.POST("/enrollments", studentController.EnrollInCourse)
		}

		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			studentsAdmin.GET("", studentController.GetAllStudents)
			studentsAdmin.GET("/:id", studentController.GetStudentByID)
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	// Section routes (admin-only management, shared reads)
	sections := authenticated.Group("/sections")
	{
		sections.GET("", sectionController.GetAllSections)
		sections.GET("/:id", sectionController.GetSectionByID)

		sectionsAdmin := sections.Group("")
		sectionsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			sectionsAdmin.POST("", sectionController.CreateSection)
			sectionsAdmin.PUT("/:id", sectionController.UpdateSection)
			sectionsAdmin.DELETE("/:id", sectionController.DeleteSection)
		}
	}

	// Enrollment routes (admin-only)
	enrollments := authenticated.Group("/enrollments")
	enrollments.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}
}
