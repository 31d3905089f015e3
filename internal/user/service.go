package user

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/metrics"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Authenticator covers the auth operations the account service needs
type Authenticator interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) error
	IssueAccessToken(userID int) (string, error)
	IssueRefreshToken(userID int) (string, error)
	VerifyRefreshToken(tokenString string) (int, error)
}

// TokenPair carries the tokens returned on signup and login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service defines the account operations
type Service interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, TokenPair, error)
	Login(ctx context.Context, username, password string) (*domain.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	GetUser(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, username, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	UpdatePicture(ctx context.Context, userID int, picture string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int, password string) error
}

type service struct {
	repo repository.User
	auth Authenticator
}

// NewService creates the account service
func NewService(repo repository.User, auth Authenticator) Service {
	return &service{repo: repo, auth: auth}
}

// Signup registers a new account. Usernames and emails are normalized to
// lowercase, the password is bcrypt-hashed, a random avatar is assigned, and
// the user plus their full set of success progress rows is created atomically.
func (s *service) Signup(ctx context.Context, username, email, password string) (*domain.User, TokenPair, error) {
	log := logger.FromContext(ctx)

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user := &domain.User{
		Username:     normalize(username),
		Email:        normalize(email),
		PasswordHash: hash,
		Picture:      randomAvatar(),
	}

	created, err := s.repo.CreateUserWithSuccesses(ctx, user)
	if err != nil {
		return nil, TokenPair{}, err
	}

	tokens, err := s.issueTokens(created.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	metrics.SignupsTotal.Inc()
	log.Info("User signed up", "user_id", created.ID, "username", created.Username)
	return created, tokens, nil
}

// Login verifies credentials and returns the user with a fresh token pair
func (s *service) Login(ctx context.Context, username, password string) (*domain.User, TokenPair, error) {
	user, err := s.repo.GetUserByUsername(ctx, normalize(username))
	if err != nil {
		// Hide whether the account exists
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	logger.FromContext(ctx).Info("User logged in", "user_id", user.ID)
	return user, tokens, nil
}

// Refresh mints a new access token from a valid refresh token
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	// The account may have been deleted since the token was issued
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.auth.IssueAccessToken(userID)
}

// GetUser returns a user by id
func (s *service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// UpdateProfile changes username and/or email; empty values keep the current one
func (s *service) UpdateProfile(ctx context.Context, userID int, username, email string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = normalize(username)
	}
	if email != "" {
		user.Email = normalize(email)
	}

	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword replaces the password after verifying the current one
func (s *service) UpdatePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.auth.CheckPassword(user.PasswordHash, currentPassword); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

// UpdatePicture changes the profile picture
func (s *service) UpdatePicture(ctx context.Context, userID int, picture string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Picture = picture
	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account after verifying the password. The yol,
// tasks and success progress go with it.
func (s *service) DeleteUser(ctx context.Context, userID int, password string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return domain.ErrInvalidCredentials
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("User deleted", "user_id", userID)
	return nil
}

func (s *service) issueTokens(userID int) (TokenPair, error) {
	access, err := s.auth.IssueAccessToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.auth.IssueRefreshToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func randomAvatar() string {
	n := rand.Intn(domain.AvatarCount) + 1 //nolint:gosec
	return fmt.Sprintf(domain.AvatarPathFormat, n)
}
