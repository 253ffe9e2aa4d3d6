package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/pkg/apperrors"
	"github.com/umutk/registrar/internal/pkg/auth"
)

// Credential stores per role. Each lookup returns the stored password so
// the service can verify it; callers outside this package never see it.
type studentAuthStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type professorAuthStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Professor, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type adminAuthStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
}

// AuthService handles authentication for all three roles
type AuthService struct {
	studentRepo   studentAuthStore
	professorRepo professorAuthStore
	adminRepo     adminAuthStore
	jwtService    *auth.JWTService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo studentAuthStore,
	professorRepo professorAuthStore,
	adminRepo adminAuthStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo:   studentRepo,
		professorRepo: professorRepo,
		adminRepo:     adminRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// Login authenticates a user against the store for the requested role and
// returns a token pair. Lookup failures and password mismatches produce
// the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, stored, err := s.lookupUser(ctx, req)
	if err != nil {
		s.logger.Warn().
			Str("username", req.Username).
			Str("role", string(req.Role)).
			Msg("Login lookup failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(stored, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Plaintext passwords carried over from the legacy store are
	// upgraded to bcrypt on first successful login.
	if !auth.IsHashed(stored) {
		s.rehashPassword(ctx, user, req.Password)
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: user,
	}, nil
}

// lookupUser resolves the login request against the role's store and
// returns the identity together with the stored password value.
func (s *AuthService) lookupUser(ctx context.Context, req *dto.LoginRequest) (*models.AuthenticatedUser, string, error) {
	switch req.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, "", err
		}
		stored := student.Password
		student.Password = ""
		return &models.AuthenticatedUser{
			ID:       student.ID,
			Username: student.Username,
			Role:     models.RoleStudent,
			Student:  student,
		}, stored, nil

	case models.RoleProfessor:
		professor, err := s.professorRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, "", err
		}
		stored := professor.Password
		professor.Password = ""
		return &models.AuthenticatedUser{
			ID:        professor.ID,
			Username:  professor.Username,
			Role:      models.RoleProfessor,
			Professor: professor,
		}, stored, nil

	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, "", err
		}
		stored := admin.Password
		admin.Password = ""
		return &models.AuthenticatedUser{
			ID:       admin.ID,
			Username: admin.Username,
			Role:     models.RoleAdmin,
			Admin:    admin,
		}, stored, nil
	}

	return nil, "", apperrors.ErrInvalidCredentials
}

// rehashPassword stores the bcrypt hash of a freshly verified password.
// Failures leave the old value in place and do not block the login.
func (s *AuthService) rehashPassword(ctx context.Context, user *models.AuthenticatedUser, password string) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to hash legacy password")
		return
	}

	switch user.Role {
	case models.RoleStudent:
		err = s.studentRepo.UpdatePassword(ctx, user.ID, hashed)
	case models.RoleProfessor:
		err = s.professorRepo.UpdatePassword(ctx, user.ID, hashed)
	case models.RoleAdmin:
		err = s.adminRepo.UpdatePassword(ctx, user.ID, hashed)
	}

	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to upgrade legacy password")
		return
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("Upgraded legacy password to bcrypt")
}
