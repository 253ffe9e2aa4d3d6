//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umutk/registrar/internal/app/migrations"
	"github.com/umutk/registrar/internal/app/models"
)

// testPool connects to the database named by TEST_DATABASE_URL, applies
// the migrations and truncates all tables. Tests are skipped when the
// variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"); err != nil {
		t.Fatalf("applying migrations: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`TRUNCATE enrollments, sections, courses, students, professors, departments, admins RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("resetting tables: %v", err)
	}

	return pool
}

func createTestStudent(t *testing.T, pool *pgxpool.Pool, username string) *models.Student {
	t.Helper()
	student := &models.Student{
		Name:     "Jane Doe",
		Username: username,
		Password: "secret123",
	}
	if err := NewStudentRepository(pool).Create(context.Background(), student); err != nil {
		t.Fatalf("creating student: %v", err)
	}
	return student
}

func createTestCourse(t *testing.T, pool *pgxpool.Pool, name string) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Credits: 3}
	if err := NewCourseRepository(pool).Create(context.Background(), course); err != nil {
		t.Fatalf("creating course: %v", err)
	}
	return course
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...interface{}) int {
	t.Helper()
	var count int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return count
}

func TestDeleteDepartmentKeepsCourses(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	departmentRepo := NewDepartmentRepository(pool)
	department := &models.Department{Name: "Mathematics", Location: "Building A"}
	if err := departmentRepo.Create(ctx, department); err != nil {
		t.Fatalf("creating department: %v", err)
	}

	courseRepo := NewCourseRepository(pool)
	course := &models.Course{Name: "Calculus", Credits: 4, DepartmentID: &department.ID}
	if err := courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("creating course: %v", err)
	}

	if err := departmentRepo.Delete(ctx, department.ID); err != nil {
		t.Fatalf("deleting department: %v", err)
	}

	got, err := courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("course did not survive its department: %v", err)
	}
	if got.DepartmentID != nil {
		t.Errorf("DepartmentID = %d, want nil after department delete", *got.DepartmentID)
	}
	if got.DepartmentName != "" {
		t.Errorf("DepartmentName = %q, want empty", got.DepartmentName)
	}
}

func TestDeleteCourseCascadesSectionsAndEnrollments(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	student := createTestStudent(t, pool, "jdoe")
	course := createTestCourse(t, pool, "Databases")

	if _, err := NewEnrollmentRepository(pool).EnrollInCourse(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("enrolling: %v", err)
	}

	if err := NewCourseRepository(pool).Delete(ctx, course.ID); err != nil {
		t.Fatalf("deleting course: %v", err)
	}

	if n := countRows(t, pool, `SELECT COUNT(*) FROM sections`); n != 0 {
		t.Errorf("%d sections survive the course delete, want 0", n)
	}
	if n := countRows(t, pool, `SELECT COUNT(*) FROM enrollments`); n != 0 {
		t.Errorf("%d enrollments survive the course delete, want 0", n)
	}
}
