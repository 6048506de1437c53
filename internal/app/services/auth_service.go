package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/app/models/dto"
	"github.com/akshay/schoolms/internal/app/repositories"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
	"github.com/akshay/schoolms/internal/pkg/auth"
)

// AuthService handles admin login, logout, and admin creation
type AuthService struct {
	adminRepo   repositories.IAdminRepository
	sessionRepo repositories.ISessionRepository
	jwtService  *auth.JWTService
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo repositories.IAdminRepository, sessionRepo repositories.ISessionRepository, jwtService *auth.JWTService, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login verifies the credentials, creates a session row, and issues a token
// bound to it. Unknown usernames and wrong passwords produce the same
// rejection.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwtService.GenerateToken(admin.ID, admin.Username, session.ID.String())
	if err != nil {
		return nil, fmt.Errorf("error signing session token: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Str("sessionId", session.ID.String()).Msg("Admin logged in")

	return &dto.LoginResponse{
		Token:     token,
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// Logout revokes the session carried by the current token
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return apperrors.ErrTokenInvalid
	}

	if err := s.sessionRepo.Revoke(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("sessionId", sessionID).Msg("Session revoked")
	return nil
}

// CreateAdmin creates a new administrator account. The password must be
// confirmed and the username unused; the stored value is a bcrypt hash.
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.AddAdminRequest) (*models.Admin, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	exists, err := s.adminRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", admin.Username).Msg("Admin created")
	return admin, nil
}
