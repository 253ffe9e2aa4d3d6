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
	"github.com/rs/zerolog"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/app/services"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStudentCredentials struct{}

func (fakeStudentCredentials) GetByUsername(_ context.Context, _ string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (fakeStudentCredentials) UpdatePassword(_ context.Context, _ int64, _ string) error { return nil }

type fakeProfessorCredentials struct{}

func (fakeProfessorCredentials) GetByUsername(_ context.Context, _ string) (*models.Professor, error) {
	return nil, apperrors.ErrProfessorNotFound
}

func (fakeProfessorCredentials) UpdatePassword(_ context.Context, _ int64, _ string) error { return nil }

type fakeAdminCredentials struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminCredentials) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminCredentials) UpdatePassword(_ context.Context, _ int64, _ string) error { return nil }

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()

	hashed, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})
	authService := services.NewAuthService(
		fakeStudentCredentials{},
		fakeProfessorCredentials{},
		&fakeAdminCredentials{admins: map[string]*models.Admin{
			"admin": {ID: 1, Username: "admin", Password: hashed},
		}},
		jwtService,
		zerolog.Nop(),
	)

	router := gin.New()
	router.POST("/auth/login", NewAuthController(authService).Login)
	return router
}

func postLogin(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginEndpointSuccess(t *testing.T) {
	router := loginRouter(t)

	recorder := postLogin(router, dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
		Role:     models.RoleAdmin,
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", recorder.Code, recorder.Body.String())
	}

	var envelope struct {
		Data dto.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope.Data.Token.AccessToken == "" {
		t.Error("empty access token in response")
	}
	if envelope.Data.User == nil || envelope.Data.User.Role != models.RoleAdmin {
		t.Errorf("user = %+v, want ADMIN role", envelope.Data.User)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	router := loginRouter(t)

	recorder := postLogin(router, dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
		Role:     models.RoleAdmin,
	})

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestLoginEndpointRejectsBadRole(t *testing.T) {
	router := loginRouter(t)

	recorder := postLogin(router, map[string]string{
		"username": "admin",
		"password": "admin123",
		"role":     "SUPERUSER",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 from binding validation", recorder.Code)
	}
}

func TestLoginEndpointRejectsMissingFields(t *testing.T) {
	router := loginRouter(t)

	recorder := postLogin(router, map[string]string{"username": "admin"})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}
