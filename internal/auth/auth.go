package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolapp/yol-backend/internal/domain"
)

// BcryptCost is fixed so hashes stay comparable across deployments.
const BcryptCost = 10

// TokenKind distinguishes access tokens from refresh tokens inside claims,
// so one can never be replayed as the other even if secrets match.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the JWT payload for both token kinds
type Claims struct {
	UserID int       `json:"uid"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// Service issues and verifies JWTs and handles password hashing
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewService creates an auth service from configured secrets and lifetimes
func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// HashPassword hashes a plaintext password with bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored hash
func (s *Service) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken mints a short-lived access token for the user
func (s *Service) IssueAccessToken(userID int) (string, error) {
	return s.issue(userID, TokenKindAccess, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token for the user
func (s *Service) IssueRefreshToken(userID int) (string, error) {
	return s.issue(userID, TokenKindRefresh, s.refreshSecret, s.refreshTTL)
}

func (s *Service) issue(userID int, kind TokenKind, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken parses an access token and returns the user id
func (s *Service) VerifyAccessToken(tokenString string) (int, error) {
	return s.verify(tokenString, TokenKindAccess, s.accessSecret)
}

// VerifyRefreshToken parses a refresh token and returns the user id
func (s *Service) VerifyRefreshToken(tokenString string) (int, error) {
	return s.verify(tokenString, TokenKindRefresh, s.refreshSecret)
}

func (s *Service) verify(tokenString string, kind TokenKind, secret []byte) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		// Require exact HS256 algorithm to avoid algorithm confusion
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Kind != kind || claims.UserID <= 0 {
		return 0, domain.ErrInvalidCredentials
	}
	return claims.UserID, nil
}
