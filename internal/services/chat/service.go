// Package chat provides the reflective chat service.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/lunehq/lune/internal/astro"
	chatengine "github.com/lunehq/lune/internal/chat"
	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/models"
)

// Service implements interfaces.ChatService.
type Service struct {
	storage interfaces.StorageManager
	gemini  interfaces.GenerativeClient
	logger  *common.Logger
}

// NewService creates a new chat service.
func NewService(storage interfaces.StorageManager, gemini interfaces.GenerativeClient, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		gemini:  gemini,
		logger:  logger,
	}
}

// buildContext assembles the astrology context for the user. Any failure
// here means the chart cannot be accessed, which the handler maps to 500.
func (s *Service) buildContext(ctx context.Context, userID string) (chatengine.Context, error) {
	profile, err := s.storage.InternalStore().GetBirthProfile(ctx, userID)
	if err != nil {
		return chatengine.Context{}, err
	}
	birthDate, err := time.Parse("2006-01-02", profile.BirthDate)
	if err != nil {
		return chatengine.Context{}, fmt.Errorf("invalid stored birth date '%s': %w", profile.BirthDate, err)
	}

	chart := astro.BuildWholeSignChart(birthDate)
	domains := astro.BuildLifeDomains(chart)

	// The previous-life block requires both derivations to succeed.
	var insight *models.PreviousLifeInsight
	if brief := astro.GeneratePreviousLifeBrief(chart); brief != nil {
		insight = astro.DerivePreviousLifeInsight(chart)
	}

	return chatengine.BuildContext(chart, domains, insight), nil
}

// Respond runs the chat pipeline: context, intent, frame, then guarded
// generation. Unsafe intents and generation failures resolve to fixed
// sentences inside the pipeline.
func (s *Service) Respond(ctx context.Context, userID, message string) (string, error) {
	astroContext, err := s.buildContext(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("Chat context construction failed")
		return "", err
	}

	intent := chatengine.DetectIntent(message)
	frame := chatengine.BuildResponseFrame(intent)

	text := chatengine.GenerateResponse(ctx, s.gemini, astroContext, intent, frame)

	s.logger.Debug().
		Str("user_id", userID).
		Str("domain", intent.Domain).
		Str("depth", intent.Depth).
		Bool("safe", intent.Safe).
		Msg("Chat response generated")

	return text, nil
}

// Ensure Service implements ChatService
var _ interfaces.ChatService = (*Service)(nil)
