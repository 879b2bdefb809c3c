package server

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/models"
)

// birthTimeRegex matches a 24-hour HH:mm clock time.
var birthTimeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// requireUser resolves the authenticated user ID from the request context.
// Writes a 401 and returns "" when the request is unauthenticated.
func requireUser(w http.ResponseWriter, r *http.Request) string {
	userID := common.ResolveUserID(r.Context())
	if userID == "" {
		WriteError(w, http.StatusUnauthorized, "authentication required")
		return ""
	}
	return userID
}

// validateBirthProfileRequest checks the profile creation payload.
func validateBirthProfileRequest(req *models.CreateBirthProfileRequest) error {
	parsed, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return fmt.Errorf("birth_date must be a valid date in YYYY-MM-DD format")
	}
	if parsed.After(time.Now()) {
		return fmt.Errorf("birth_date cannot be in the future")
	}

	if req.BirthPlace == "" {
		return fmt.Errorf("birth_place is required")
	}

	switch req.TimeConfidence {
	case models.TimeConfidenceExact, models.TimeConfidenceApprox, models.TimeConfidenceUnknown:
	default:
		return fmt.Errorf("time_confidence must be one of: exact, approximate, unknown")
	}

	if req.TimeConfidence != models.TimeConfidenceUnknown {
		if req.BirthTime == "" || !birthTimeRegex.MatchString(req.BirthTime) {
			return fmt.Errorf("birth_time must be in HH:mm format unless time_confidence is unknown")
		}
	}

	return nil
}

// routeBirthProfile dispatches /api/birth-profile by method.
func (s *Server) routeBirthProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleBirthProfileCreate(w, r)
	case http.MethodGet:
		s.handleBirthProfileGet(w, r)
	case http.MethodPut, http.MethodPatch:
		s.handleBirthProfileModify(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, PATCH")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleBirthProfileCreate handles POST /api/birth-profile.
func (s *Server) handleBirthProfileCreate(w http.ResponseWriter, r *http.Request) {
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	var req models.CreateBirthProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := validateBirthProfileRequest(&req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.app.AstrologyService.CreateProfile(r.Context(), userID, &req)
	switch {
	case err == nil:
	case errors.Is(err, interfaces.ErrProfileExists):
		WriteErrorWithCode(w, http.StatusConflict, "A birth profile already exists for this user", "profile_exists")
		return
	case errors.Is(err, interfaces.ErrLocationResolution):
		WriteError(w, http.StatusBadRequest, "Unable to resolve birth place location")
		return
	case errors.Is(err, interfaces.ErrInvalidBirthDatetime):
		WriteError(w, http.StatusBadRequest, "Could not compute birth datetime from the provided details")
		return
	default:
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Birth profile creation failed")
		WriteError(w, http.StatusInternalServerError, "failed to create birth profile")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Birth profile created",
		"locked":  true,
	})
}

// handleBirthProfileGet handles GET /api/birth-profile.
func (s *Server) handleBirthProfileGet(w http.ResponseWriter, r *http.Request) {
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	profile, err := s.app.AstrologyService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "You haven't submitted your birth details yet")
			return
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Birth profile lookup failed")
		WriteError(w, http.StatusInternalServerError, "failed to load birth profile")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"birth_date":      profile.BirthDate,
		"birth_time":      profile.BirthTime,
		"time_confidence": profile.TimeConfidence,
		"birth_place":     profile.BirthPlaceInput,
		"locked":          profile.Locked,
	})
}

// handleBirthProfileModify handles PUT/PATCH /api/birth-profile.
// Profiles are locked on creation and never modifiable.
func (s *Server) handleBirthProfileModify(w http.ResponseWriter, r *http.Request) {
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	WriteErrorWithCode(w, http.StatusForbidden, "Birth profile is locked and cannot be modified", "profile_locked")
}

// handleNormalizedBirth handles GET /api/astro/normalized-birth.
func (s *Server) handleNormalizedBirth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	normalized, err := s.app.AstrologyService.NormalizedBirth(r.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "You haven't submitted your birth details yet")
			return
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Normalized birth lookup failed")
		WriteError(w, http.StatusInternalServerError, "failed to load normalized birth details")
		return
	}

	WriteJSON(w, http.StatusOK, normalized)
}
