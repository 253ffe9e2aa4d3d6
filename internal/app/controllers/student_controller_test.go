package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/app/services"
	"github.com/umutk/registrar/internal/middleware"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/auth"
)

type fakeEnrollmentStore struct {
	enrollments      map[int64]*models.Enrollment
	enrolled         map[int64]bool // courseID -> already enrolled
	enrollCalls      [][2]int64     // studentID, courseID pairs
	studentCourses   map[int64][]*models.EnrolledCourse
	courseNotFound   bool
	nextEnrollmentID int64
}

func (f *fakeEnrollmentStore) Create(_ context.Context, e *models.Enrollment) error {
	return nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return e, nil
}

func (f *fakeEnrollmentStore) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentStore) Search(_ context.Context, _ string) ([]*models.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentStore) Update(_ context.Context, _ *models.Enrollment) error { return nil }

func (f *fakeEnrollmentStore) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeEnrollmentStore) EnrollInCourse(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	f.enrollCalls = append(f.enrollCalls, [2]int64{studentID, courseID})
	if f.courseNotFound {
		return nil, apperrors.ErrCourseNotFound
	}
	if f.enrolled[courseID] {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	f.nextEnrollmentID++
	return &models.Enrollment{
		ID:        f.nextEnrollmentID,
		StudentID: studentID,
		SectionID: 1,
		Grade:     models.DefaultGrade,
	}, nil
}

func (f *fakeEnrollmentStore) GetCoursesByStudentID(_ context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	return f.studentCourses[studentID], nil
}

func (f *fakeEnrollmentStore) GetStudentsByProfessorID(_ context.Context, _ int64) ([]*models.CourseStudent, error) {
	return nil, nil
}

func studentRouter(store *fakeEnrollmentStore) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})
	enrollmentService := services.NewEnrollmentService(store)
	controller := NewStudentController(services.NewStudentService(&noopStudentStore{}), enrollmentService)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	me := router.Group("/students/me", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	me.GET("/courses", controller.GetMyCourses)
	me.POST("/enrollments", controller.EnrollInCourse)
	return router, jwtService
}

type noopStudentStore struct{}

func (noopStudentStore) Create(_ context.Context, _ *models.Student) error { return nil }
func (noopStudentStore) GetByID(_ context.Context, _ int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (noopStudentStore) GetAll(_ context.Context) ([]*models.Student, error)           { return nil, nil }
func (noopStudentStore) Search(_ context.Context, _ string) ([]*models.Student, error) { return nil, nil }
func (noopStudentStore) Update(_ context.Context, _ *models.Student) error             { return nil }
func (noopStudentStore) Delete(_ context.Context, _ int64) error                       { return nil }

func studentToken(t *testing.T, svc *auth.JWTService, id int64) string {
	t.Helper()
	access, _, _, _, err := svc.GenerateTokenPair(&models.AuthenticatedUser{
		ID:       id,
		Username: "jdoe",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return access
}

func TestEnrollInCourseUsesTokenIdentity(t *testing.T) {
	store := &fakeEnrollmentStore{}
	router, jwtService := studentRouter(store)

	payload, _ := json.Marshal(dto.EnrollRequest{CourseID: 12})
	req := httptest.NewRequest(http.MethodPost, "/students/me/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+studentToken(t, jwtService, 9))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", recorder.Code, recorder.Body.String())
	}
	if len(store.enrollCalls) != 1 {
		t.Fatalf("EnrollInCourse called %d times, want 1", len(store.enrollCalls))
	}
	if store.enrollCalls[0] != [2]int64{9, 12} {
		t.Errorf("enroll call = %v, want student 9 from the token and course 12 from the body", store.enrollCalls[0])
	}
}

func TestEnrollInCourseDuplicateConflict(t *testing.T) {
	store := &fakeEnrollmentStore{enrolled: map[int64]bool{12: true}}
	router, jwtService := studentRouter(store)

	payload, _ := json.Marshal(dto.EnrollRequest{CourseID: 12})
	req := httptest.NewRequest(http.MethodPost, "/students/me/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+studentToken(t, jwtService, 9))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", recorder.Code)
	}
}

func TestEnrollInCourseUnknownCourse(t *testing.T) {
	store := &fakeEnrollmentStore{courseNotFound: true}
	router, jwtService := studentRouter(store)

	payload, _ := json.Marshal(dto.EnrollRequest{CourseID: 99})
	req := httptest.NewRequest(http.MethodPost, "/students/me/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+studentToken(t, jwtService, 9))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", recorder.Code)
	}
}

func TestGetMyCoursesReturnsStudentView(t *testing.T) {
	store := &fakeEnrollmentStore{studentCourses: map[int64][]*models.EnrolledCourse{
		9: {
			{CourseID: 1, CourseName: "Algorithms", Credits: 4, Grade: "A"},
			{CourseID: 2, CourseName: "Databases", Credits: 3, Grade: models.DefaultGrade},
		},
	}}
	router, jwtService := studentRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/students/me/courses", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken(t, jwtService, 9))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var envelope struct {
		Data []models.EnrolledCourse `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("got %d courses, want 2", len(envelope.Data))
	}
	if envelope.Data[0].CourseName != "Algorithms" || envelope.Data[0].Grade != "A" {
		t.Errorf("first course = %+v", envelope.Data[0])
	}
}

func TestStudentRoutesRejectOtherRoles(t *testing.T) {
	store := &fakeEnrollmentStore{}
	router, jwtService := studentRouter(store)

	access, _, _, _, err := jwtService.GenerateTokenPair(&models.AuthenticatedUser{
		ID:       2,
		Username: "prof",
		Role:     models.RoleProfessor,
	})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/students/me/courses", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}
}
