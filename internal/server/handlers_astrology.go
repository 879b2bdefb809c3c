package server

import (
	"errors"
	"net/http"

	"github.com/lunehq/lune/internal/interfaces"
)

const missingProfileMessage = "You need to submit your birth details before viewing a chart"

// handleChart handles GET /api/astrology/chart.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	chart, err := s.app.AstrologyService.Chart(r.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			WriteError(w, http.StatusBadRequest, missingProfileMessage)
			return
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Chart derivation failed")
		WriteError(w, http.StatusInternalServerError, "failed to derive chart")
		return
	}

	WriteJSON(w, http.StatusOK, chart)
}

// handleHoroscope handles GET /api/horoscope.
func (s *Server) handleHoroscope(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	horoscope, err := s.app.AstrologyService.Horoscope(r.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			WriteError(w, http.StatusBadRequest, missingProfileMessage)
			return
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Horoscope derivation failed")
		WriteError(w, http.StatusInternalServerError, "failed to derive horoscope")
		return
	}

	WriteJSON(w, http.StatusOK, horoscope)
}

// handleInterpretation handles GET /api/interpretation.
func (s *Server) handleInterpretation(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID := requireUser(w, r)
	if userID == "" {
		return
	}

	interpretation, err := s.app.AstrologyService.Interpretation(r.Context(), userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			WriteError(w, http.StatusBadRequest, missingProfileMessage)
			return
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Interpretation failed")
		WriteError(w, http.StatusInternalServerError, "failed to build interpretation")
		return
	}

	WriteJSON(w, http.StatusOK, interpretation)
}
