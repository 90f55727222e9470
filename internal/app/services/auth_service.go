package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/auth"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo    *repositories.UserRepository
	tokenRepo   *repositories.TokenRepository
	studentRepo *repositories.StudentProfileRepository
	alumniRepo  *repositories.AlumniProfileRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	studentRepo *repositories.StudentProfileRepository,
	alumniRepo *repositories.AlumniProfileRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		studentRepo: studentRepo,
		alumniRepo:  alumniRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new user account with a hashed password. Students and
// alumni also get an empty profile row so profile reads work right away.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.RoleType(strings.ToUpper(string(req.RoleType)))
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError("roleType must be STUDENT, TPO or ALUMNI")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		RoleType: role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch role {
	case models.RoleStudent:
		if err := s.studentRepo.Upsert(ctx, emptyStudentProfile(user.ID)); err != nil {
			return nil, fmt.Errorf("failed to create student profile: %w", err)
		}
	case models.RoleAlumni:
		if err := s.alumniRepo.Upsert(ctx, emptyAlumniProfile(user.ID)); err != nil {
			return nil, fmt.Errorf("failed to create alumni profile: %w", err)
		}
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.RoleType)).Msg("User registered")
	return user, nil
}

// emptyStudentProfile is the row created at registration. Collections are
// empty rather than nil so the jsonb columns start as [] instead of null.
func emptyStudentProfile(userID int64) *models.StudentProfile {
	return &models.StudentProfile{
		UserID:       userID,
		Skills:       []string{},
		Projects:     []models.Project{},
		Certificates: []models.Certificate{},
	}
}

func emptyAlumniProfile(userID int64) *models.AlumniProfile {
	return &models.AlumniProfile{UserID: userID}
}

// Login verifies credentials and returns the user with a fresh token pair.
// A wrong email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		UserID:   user.ID,
		Name:     user.Name,
		RoleType: user.RoleType,
		Tokens:   *tokens,
	}, nil
}

// RefreshToken rotates a refresh token: the old one is revoked and a new
// pair is issued. A reused token therefore fails instead of minting again.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenUserID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed during refresh: %w", err)
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes a refresh token. Revoking an already-dead token is not an
// error from the client's point of view.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		logger.Debug().Err(err).Msg("Logout revocation failed")
	}
	return nil
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
