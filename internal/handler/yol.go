package handler

import (
	"net/http"

	"github.com/yolapp/yol-backend/internal/yol"
)

// AdoptYolRequest represents the request to adopt a companion
type AdoptYolRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=32"`
	Species string `json:"species" validate:"required,min=1,max=64"`
}

// YolHandlers bundles the companion endpoints
type YolHandlers struct {
	service yol.Service
}

// NewYolHandlers creates handlers backed by the companion service
func NewYolHandlers(service yol.Service) *YolHandlers {
	return &YolHandlers{service: service}
}

// HandleAdoptYol creates the user's companion at the egg stage
// @Summary Adopt a yol
// @Tags yol
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdoptYolRequest true "Name and species"
// @Success 201 {object} domain.Yol
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/yol [post]
func (h *YolHandlers) HandleAdoptYol() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}

		var req AdoptYolRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adopt yol"); err != nil {
			return
		}

		created, err := h.service.Adopt(r.Context(), userID, req.Name, req.Species)
		if err != nil {
			respondServiceError(w, r, "Adopt yol", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetYol returns a companion by id
// @Summary Get yol
// @Tags yol
// @Produce json
// @Security BearerAuth
// @Param yolID path int true "Yol ID"
// @Success 200 {object} domain.Yol
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/yol/{yolID} [get]
func (h *YolHandlers) HandleGetYol() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		yolID, ok := URLParamInt(r, w, "yolID")
		if !ok {
			return
		}

		y, err := h.service.GetYol(r.Context(), yolID)
		if err != nil {
			respondServiceError(w, r, "Get yol", err)
			return
		}
		// Another user's companion looks like it doesn't exist
		if y.UserID != userID {
			respondError(w, http.StatusNotFound, ErrMsgYolNotFoundError)
			return
		}

		respondJSON(w, http.StatusOK, y)
	}
}

// HandleGetYolByUser returns the user's companion, running bond-level checks
// @Summary Get user's yol
// @Tags yol
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Success 200 {object} domain.Yol
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/yol/user/{userID} [get]
func (h *YolHandlers) HandleGetYolByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		y, err := h.service.GetYolByUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get yol by user", err)
			return
		}

		respondJSON(w, http.StatusOK, y)
	}
}

// HandleEvolveYol advances the companion one stage
// @Summary Evolve yol
// @Tags yol
// @Produce json
// @Security BearerAuth
// @Param yolID path int true "Yol ID"
// @Success 200 {object} domain.Yol
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/yol/{yolID}/evolve [patch]
func (h *YolHandlers) HandleEvolveYol() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		yolID, ok := URLParamInt(r, w, "yolID")
		if !ok {
			return
		}

		evolved, err := h.service.Evolve(r.Context(), userID, yolID)
		if err != nil {
			respondServiceError(w, r, "Evolve yol", err)
			return
		}

		respondJSON(w, http.StatusOK, evolved)
	}
}

// HandleListSpecies lists the species catalog
// @Summary List species
// @Tags yol
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Species
// @Router /api/v1/species [get]
func (h *YolHandlers) HandleListSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species, err := h.service.ListSpecies(r.Context())
		if err != nil {
			respondServiceError(w, r, "List species", err)
			return
		}

		respondJSON(w, http.StatusOK, species)
	}
}
