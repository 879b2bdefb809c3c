package interfaces

import (
	"context"
	"errors"

	"github.com/lunehq/lune/internal/horoscope"
	"github.com/lunehq/lune/internal/models"
)

// Service-level sentinel errors, mapped to HTTP statuses by the handlers.
var (
	// ErrProfileExists is returned when a user already has a birth profile.
	ErrProfileExists = errors.New("a birth profile already exists for this user")

	// ErrLocationResolution is returned when a birth place cannot be
	// geocoded.
	ErrLocationResolution = errors.New("unable to resolve birth place location")

	// ErrInvalidBirthDatetime is returned when the birth moment cannot be
	// computed in UTC.
	ErrInvalidBirthDatetime = errors.New("could not compute birth datetime in UTC")
)

// AstrologyService manages birth profiles and everything derived from them.
type AstrologyService interface {
	// CreateProfile resolves the birth place, computes the UTC birth moment,
	// and stores a locked profile. One profile per user.
	CreateProfile(ctx context.Context, userID string, req *models.CreateBirthProfileRequest) error

	// GetProfile returns the stored profile.
	GetProfile(ctx context.Context, userID string) (*models.BirthProfile, error)

	// NormalizedBirth returns the normalized birth view, backfilling missing
	// location data with the fixed stub location and persisting the result.
	NormalizedBirth(ctx context.Context, userID string) (*models.NormalizedBirth, error)

	// Chart builds the Whole Sign chart with summary, life domains, and
	// carried-pattern brief.
	Chart(ctx context.Context, userID string) (*models.ChartResponse, error)

	// Horoscope derives the daily, monthly, and yearly forecast.
	Horoscope(ctx context.Context, userID string) (*horoscope.Response, error)

	// Interpretation assembles the narrative reading.
	Interpretation(ctx context.Context, userID string) (*models.InterpretationResponse, error)
}

// ChatService answers single-turn reflective chat messages.
type ChatService interface {
	// Respond runs the chat pipeline for a validated message. An error means
	// the chart context could not be built; generation failures are absorbed
	// into fallback text.
	Respond(ctx context.Context, userID, message string) (string, error)
}
