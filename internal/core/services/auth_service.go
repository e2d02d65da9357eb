package services

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/pkg/jwt"
	"palmtec-registry/internal/pkg/logger"
	"palmtec-registry/internal/pkg/password"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotVerified    = errors.New("user is not verified")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// AuthService handles account creation, login and token checks
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// SignupInput represents account creation input
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// LoginResult is the authenticated account and its fresh token pair
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// Signup creates a verified, active account
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*models.User, error) {
	// 1. Every field except role is required
	required := []string{input.Username, input.Email, input.Password, input.ConfirmPassword}
	if lo.ContainsBy(required, func(v string) bool { return strings.TrimSpace(v) == "" }) {
		return nil, ErrMissingFields
	}

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	// 2. Username and email are checked separately so the caller can tell which one clashed
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashedPassword,
		Role:       lo.Ternary(strings.TrimSpace(input.Role) == "", domain.DefaultRole, input.Role),
		IsVerified: true,
		IsActive:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("username", user.Username), zap.String("role", user.Role))

	return user, nil
}

// Login checks credentials and issues an access and refresh token
func (s *AuthService) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	if username == "" || plain == "" {
		return nil, ErrMissingFields
	}

	// 1. Find user by username
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password before revealing anything about the account
	if !password.Verify(plain, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Account flags
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Generate tokens
	accessToken, err := jwt.GenerateAccessToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.AccessTTL())
	if err != nil {
		return nil, err
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTTL())
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in", zap.String("username", user.Username))

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token.
// The refresh token itself is not rotated.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	return jwt.GenerateAccessToken(claims.UserID, s.cfg.JWT.Secret, s.cfg.JWT.AccessTTL())
}

// Authenticate resolves an access token to the stored account
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	return s.GetUserByID(ctx, claims.UserID)
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
