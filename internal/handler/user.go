package handler

import (
	"net/http"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/user"
)

// SignupRequest represents the request to create an account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the request to mint a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse carries the account and its tokens after signup or login
type AuthResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshResponse carries the new access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateProfileRequest represents a profile update; empty fields keep their value
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=32,username"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// UpdatePictureRequest represents a profile picture change
type UpdatePictureRequest struct {
	Picture string `json:"picture" validate:"required,max=255"`
}

// DeleteUserRequest confirms account deletion with the password
type DeleteUserRequest struct {
	Password string `json:"password" validate:"required"`
}

// OwnedPathUserID extracts the userID path parameter and verifies it matches
// the authenticated user. Users can only operate on their own resources.
//
// If ok is false, the HTTP response has already been written.
func OwnedPathUserID(r *http.Request, w http.ResponseWriter) (int, bool) {
	authUserID, ok := AuthenticatedUserID(r, w)
	if !ok {
		return 0, false
	}
	pathUserID, ok := URLParamInt(r, w, "userID")
	if !ok {
		return 0, false
	}
	if pathUserID != authUserID {
		logger.FromContext(r.Context()).Warn("Ownership check failed",
			"auth_user_id", authUserID, "path_user_id", pathUserID, "path", r.URL.Path)
		respondError(w, http.StatusForbidden, ErrMsgForbidden)
		return 0, false
	}
	return pathUserID, true
}

// HandleSignup creates a new account
// @Summary Sign up
// @Description Creates an account, seeds its success progress and returns a token pair
// @Tags user
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user/signup [post]
func HandleSignup(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Signup"); err != nil {
			return
		}

		created, tokens, err := userService.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "Signup", err)
			return
		}

		respondJSON(w, http.StatusCreated, AuthResponse{
			User:         created,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		})
	}
}

// HandleLogin authenticates an account
// @Summary Log in
// @Description Verifies credentials and returns a token pair
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/user/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		u, tokens, err := userService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		respondJSON(w, http.StatusOK, AuthResponse{
			User:         u,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		})
	}
}

// HandleRefresh exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Tags user
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/user/refresh [post]
func HandleRefresh(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Refresh token"); err != nil {
			return
		}

		access, err := userService.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			respondServiceError(w, r, "Refresh token", err)
			return
		}

		respondJSON(w, http.StatusOK, RefreshResponse{AccessToken: access})
	}
}

// HandleGetUser returns the account identified by the path
// @Summary Get account
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/user/{userID} [get]
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		u, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleUpdateProfile updates username and/or email
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Param request body UpdateProfileRequest true "New profile fields"
// @Success 200 {object} domain.User
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user/{userID} [patch]
func HandleUpdateProfile(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		u, err := userService.UpdateProfile(r.Context(), userID, req.Username, req.Email)
		if err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile updated", "user_id", userID)
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleUpdatePassword changes the account password
// @Summary Change password
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Param request body UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/user/{userID}/password [patch]
func HandleUpdatePassword(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		var req UpdatePasswordRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update password"); err != nil {
			return
		}

		if err := userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			respondServiceError(w, r, "Update password", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Password updated"})
	}
}

// HandleUpdatePicture changes the profile picture
// @Summary Change profile picture
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Param request body UpdatePictureRequest true "Picture path"
// @Success 200 {object} domain.User
// @Router /api/v1/user/{userID}/picture [patch]
func HandleUpdatePicture(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		var req UpdatePictureRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update picture"); err != nil {
			return
		}

		u, err := userService.UpdatePicture(r.Context(), userID, req.Picture)
		if err != nil {
			respondServiceError(w, r, "Update picture", err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleDeleteUser deletes the account and everything attached to it
// @Summary Delete account
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Param request body DeleteUserRequest true "Password confirmation"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/user/{userID} [delete]
func HandleDeleteUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		var req DeleteUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete user"); err != nil {
			return
		}

		if err := userService.DeleteUser(r.Context(), userID, req.Password); err != nil {
			respondServiceError(w, r, "Delete user", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Account deleted"})
	}
}
