package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yolapp/yol-backend/internal/auth"
	"github.com/yolapp/yol-backend/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns
// appropriate errors. It logs the operation and returns a standardized error
// response to the client.
//
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
//
// Example usage:
//
//	var req CreateTaskRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create task"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// URLParamInt extracts an integer path parameter from the request.
// If the parameter is missing or not a positive integer, it writes an error
// response and returns false.
//
// Example usage:
//
//	yolID, ok := URLParamInt(r, w, "yolID")
//	if !ok {
//	    return
//	}
func URLParamInt(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid path parameter", "param", paramName, "value", raw)
		http.Error(w, fmt.Sprintf(ErrMsgInvalidPathParam, paramName), http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

// AuthenticatedUserID returns the user ID the auth middleware stored in the
// request context. A missing ID means the route was wired outside the auth
// middleware; respond 401 rather than act on a zero user.
func AuthenticatedUserID(r *http.Request, w http.ResponseWriter) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("No authenticated user in request context", "path", r.URL.Path)
		http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
