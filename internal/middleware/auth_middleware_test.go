package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/auth"
)

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})
}

func tokenForRole(t *testing.T, svc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := svc.GenerateTokenPair(&models.AuthenticatedUser{
		ID:       9,
		Username: "jdoe",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return access
}

func protectedRouter(svc *auth.JWTService, roles ...models.RoleType) *gin.Engine {
	authMiddleware := NewAuthMiddleware(svc)
	router := gin.New()
	group := router.Group("", authMiddleware.JWTAuth())
	if len(roles) > 0 {
		group.Use(authMiddleware.RoleRequired(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userID": id})
	})
	return router
}

func TestJWTAuthAllowsValidToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	router := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, models.RoleStudent))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["userID"] != 9 {
		t.Errorf("userID = %d, want 9 from the token claims", body["userID"])
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(newTestJWTService(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expired := newTestJWTService(-time.Minute)
	router := protectedRouter(expired)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, expired, models.RoleStudent))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Error == nil || body.Error.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("error = %+v, want code %q", body.Error, dto.ErrorCodeExpiredToken)
	}
}

func TestJWTAuthRejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	router := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, models.RoleStudent)+"x")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	router := protectedRouter(svc, models.RoleAdmin)

	tests := []struct {
		name       string
		role       models.RoleType
		wantStatus int
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK},
		{"student forbidden", models.RoleStudent, http.StatusForbidden},
		{"professor forbidden", models.RoleProfessor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, tt.role))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

func TestRoleRequiredAllowsAnyListedRole(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	router := protectedRouter(svc, models.RoleStudent, models.RoleProfessor)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, models.RoleProfessor))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", recorder.Code)
	}
}
