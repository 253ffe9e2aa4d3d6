package services

import (
	"github.com/rs/zerolog"
	"github.com/umutk/registrar/internal/app/repositories"
	"github.com/umutk/registrar/internal/pkg/auth"
)

// Services is the container for all business services
type Services struct {
	AuthService       *AuthService
	DepartmentService *DepartmentService
	ProfessorService  *ProfessorService
	CourseService     *CourseService
	StudentService    *StudentService
	SectionService    *SectionService
	EnrollmentService *EnrollmentService
}

// NewServices wires all services to the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.StudentRepository,
			repos.ProfessorRepository,
			repos.AdminRepository,
			jwtService,
			logger,
		),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		ProfessorService:  NewProfessorService(repos.ProfessorRepository),
		CourseService:     NewCourseService(repos.CourseRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		SectionService:    NewSectionService(repos.SectionRepository),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository),
	}
}
