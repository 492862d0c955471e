package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"splint-factory-backend/internal/config"
	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the user lookups the auth service needs
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
}

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	jwt.RegisteredClaims
}

// UserProfile is the caller-visible identity returned alongside tokens
type UserProfile struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	Role           string     `json:"role"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// LoginResponse is returned by a successful login or refresh
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// AuthService provides credentials-based authentication with JWT sessions.
// Refresh tokens live in an in-memory mutex-guarded store; restarting the
// server invalidates them, which forces a fresh login.
type AuthService struct {
	jwtSecret       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	userRepo        UserRepository
	refreshTokens   map[string]*RefreshTokenData
	tokenMutex      sync.RWMutex
	now             func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo UserRepository) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	accessTTL := time.Duration(cfg.AccessTokenTTLMin) * time.Minute
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	refreshTTL := time.Duration(cfg.RefreshTokenTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &AuthService{
		jwtSecret:       []byte(cfg.JWTSecret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
		userRepo:        userRepo,
		refreshTokens:   make(map[string]*RefreshTokenData),
		now:             time.Now,
	}, nil
}

// Login verifies email+password and issues a token pair
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is rotated out.
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	s.tokenMutex.Lock()
	data, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(data.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByEmail(data.Email)
	if err != nil || user == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	return s.issueTokens(user)
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// ValidateJWT parses and validates an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) issueTokens(user *models.User) (*LoginResponse, error) {
	now := s.now()

	claims := &AuthClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "splint-factory-backend",
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if user.OrganizationID != nil {
		claims.OrganizationID = user.OrganizationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	refreshToken, err := generateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(s.refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &LoginResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile: UserProfile{
			ID:             user.ID,
			Email:          user.Email,
			DisplayName:    user.FullName(),
			Role:           string(user.Role),
			OrganizationID: user.OrganizationID,
		},
	}, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// generateSecureToken returns a URL-safe random token of n bytes entropy
func generateSecureToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateToken exposes secure token generation for invitations and API keys
func GenerateToken(n int) (string, error) {
	return generateSecureToken(n)
}
