package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all entity repositories
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	ProfessorRepository  *ProfessorRepository
	CourseRepository     *CourseRepository
	StudentRepository    *StudentRepository
	SectionRepository    *SectionRepository
	EnrollmentRepository *EnrollmentRepository
	AdminRepository      *AdminRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		ProfessorRepository:  NewProfessorRepository(db),
		CourseRepository:     NewCourseRepository(db),
		StudentRepository:    NewStudentRepository(db),
		SectionRepository:    NewSectionRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AdminRepository:      NewAdminRepository(db),
	}
}
