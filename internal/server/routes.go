package server

import (
	"net/http"
	"time"

	"github.com/lunehq/lune/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Users
	mux.HandleFunc("/api/users", s.handleUserCreate)

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/oauth", s.handleAuthOAuth)
	mux.HandleFunc("/api/auth/validate", s.handleAuthValidate)
	mux.HandleFunc("/api/auth/login/", s.routeOAuthLogin)
	mux.HandleFunc("/api/auth/callback/", s.routeOAuthCallback)

	// Birth profile
	mux.HandleFunc("/api/birth-profile", s.routeBirthProfile)
	mux.HandleFunc("/api/astro/normalized-birth", s.handleNormalizedBirth)

	// Astrology
	mux.HandleFunc("/api/astrology/chart", s.handleChart)
	mux.HandleFunc("/api/horoscope", s.handleHoroscope)
	mux.HandleFunc("/api/interpretation", s.handleInterpretation)

	// Chat
	mux.HandleFunc("/api/chat", s.handleChat)
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

// handleHealth responds to GET/HEAD /api/health with {"status":"ok"}.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds to GET/HEAD /api/version with build info.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleConfig handles GET /api/config — effective runtime configuration
// with secrets masked.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config

	geminiKey, _ := common.ResolveAPIKey(r.Context(), s.app.Storage.InternalStore(), "gemini_api_key", cfg.Clients.Gemini.APIKey)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment": cfg.Environment,
		"storage": map[string]interface{}{
			"internal_path": cfg.Storage.Internal.Path,
		},
		"logging": map[string]interface{}{
			"level": cfg.Logging.Level,
		},
		"clients": map[string]interface{}{
			"gemini": map[string]interface{}{
				"model":      cfg.Clients.Gemini.Model,
				"api_key":    maskSecret(geminiKey),
				"configured": geminiKey != "",
			},
			"nominatim": map[string]interface{}{
				"base_url":   cfg.Clients.Nominatim.BaseURL,
				"user_agent": cfg.Clients.Nominatim.UserAgent,
				"rate_limit": cfg.Clients.Nominatim.RateLimit,
			},
		},
	})
}

// maskSecret masks a secret value for display, keeping a short prefix.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
