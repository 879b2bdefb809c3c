package server

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/models"
)

const chatRecoveryText = "The chart can be reflected on calmly. Please try again shortly."

// handleChat handles POST /api/chat — single-turn reflective chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	userID := common.ResolveUserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" || utf8.RuneCountInString(message) > 500 {
		WriteError(w, http.StatusBadRequest, "A message is required to continue.")
		return
	}

	// Any unexpected failure past this point still produces a calm reply.
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error().Interface("panic", rec).Str("user_id", userID).Msg("Chat pipeline panicked")
			WriteJSON(w, http.StatusOK, models.ChatResponse{Text: chatRecoveryText})
		}
	}()

	text, err := s.app.ChatService.Respond(r.Context(), userID, message)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "The chart could not be accessed at this time.")
		return
	}

	WriteJSON(w, http.StatusOK, models.ChatResponse{Text: text})
}
