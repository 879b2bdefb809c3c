// Package astrology provides the birth profile and chart derivation service.
package astrology

import (
	"context"
	"fmt"
	"time"

	"github.com/lunehq/lune/internal/astro"
	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/horoscope"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/interpretation"
	"github.com/lunehq/lune/internal/models"
	"github.com/lunehq/lune/internal/psychology"
)

// Stub location used by the normalization backfill when a profile predates
// real geocoding.
const (
	stubLatitude  = 17.385
	stubLongitude = 78.4867
	stubTimezone  = "Asia/Kolkata"
)

// Service implements interfaces.AstrologyService.
type Service struct {
	storage  interfaces.StorageManager
	geocoder interfaces.GeocodingClient
	gemini   interfaces.GenerativeClient
	logger   *common.Logger
}

// NewService creates a new astrology service.
func NewService(
	storage interfaces.StorageManager,
	geocoder interfaces.GeocodingClient,
	gemini interfaces.GenerativeClient,
	logger *common.Logger,
) *Service {
	return &Service{
		storage:  storage,
		geocoder: geocoder,
		gemini:   gemini,
		logger:   logger,
	}
}

// birthDatetimeUTC computes the UTC birth moment from a local date, time,
// and IANA timezone.
func birthDatetimeUTC(birthDate, birthTime, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}
	local, err := time.ParseInLocation("2006-01-02 15:04", birthDate+" "+birthTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date/time: %w", err)
	}
	return local.UTC(), nil
}

// CreateProfile resolves the birth place, computes the UTC birth moment, and
// stores a locked profile. Only one profile per user.
func (s *Service) CreateProfile(ctx context.Context, userID string, req *models.CreateBirthProfileRequest) error {
	if _, err := s.storage.InternalStore().GetBirthProfile(ctx, userID); err == nil {
		return interfaces.ErrProfileExists
	}

	location, err := s.geocoder.Resolve(ctx, req.BirthPlace)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("Birth place resolution failed")
		return fmt.Errorf("%w: %s", interfaces.ErrLocationResolution, req.BirthPlace)
	}

	birthTime := req.BirthTime
	if req.TimeConfidence == models.TimeConfidenceUnknown {
		birthTime = "00:00"
	}

	birthUTC, err := birthDatetimeUTC(req.BirthDate, birthTime, location.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrInvalidBirthDatetime, err)
	}

	profile := &models.BirthProfile{
		UserID:          userID,
		BirthDate:       req.BirthDate,
		BirthTime:       birthTime,
		TimeConfidence:  req.TimeConfidence,
		BirthPlaceInput: req.BirthPlace,
		Latitude:        location.Latitude,
		Longitude:       location.Longitude,
		Timezone:        location.Timezone,
		BirthUTC:        birthUTC,
		Locked:          true,
	}
	if err := s.storage.InternalStore().SaveBirthProfile(ctx, profile); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("Birth profile created")
	return nil
}

// GetProfile returns the stored birth profile.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.BirthProfile, error) {
	return s.storage.InternalStore().GetBirthProfile(ctx, userID)
}

// NormalizedBirth returns the normalized birth view. Profiles missing
// resolved location data are backfilled with the fixed stub location, the
// UTC birth moment recomputed, and the result persisted.
func (s *Service) NormalizedBirth(ctx context.Context, userID string) (*models.NormalizedBirth, error) {
	profile, err := s.storage.InternalStore().GetBirthProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.HasNormalizedLocation() {
		birthTime := profile.BirthTime
		if birthTime == "" {
			birthTime = "00:00"
		}
		birthUTC, err := birthDatetimeUTC(profile.BirthDate, birthTime, stubTimezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidBirthDatetime, err)
		}

		profile.Latitude = stubLatitude
		profile.Longitude = stubLongitude
		profile.Timezone = stubTimezone
		profile.BirthUTC = birthUTC
		if err := s.storage.InternalStore().SaveBirthProfile(ctx, profile); err != nil {
			return nil, err
		}
		s.logger.Info().Str("user_id", userID).Msg("Birth profile location backfilled")
	}

	var birthTime *string
	if profile.BirthTime != "" {
		birthTime = &profile.BirthTime
	}

	return &models.NormalizedBirth{
		BirthDate:      profile.BirthDate,
		BirthPlace:     profile.BirthPlaceInput,
		BirthTime:      birthTime,
		TimeConfidence: profile.TimeConfidence,
		Latitude:       profile.Latitude,
		Longitude:      profile.Longitude,
		Timezone:       profile.Timezone,
		BirthUTC:       profile.BirthUTC.UTC().Format(time.RFC3339),
		Locked:         profile.Locked,
	}, nil
}

// chartForUser loads the profile and builds the Whole Sign chart from the
// local birth date.
func (s *Service) chartForUser(ctx context.Context, userID string) (*models.Chart, error) {
	profile, err := s.storage.InternalStore().GetBirthProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	birthDate, err := time.Parse("2006-01-02", profile.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid stored birth date '%s': %w", profile.BirthDate, err)
	}
	return astro.BuildWholeSignChart(birthDate), nil
}

func chartSummary(chart *models.Chart) string {
	return fmt.Sprintf("%s natal chart with %s rising.", chart.System, chart.Ascendant)
}

// Chart builds the full chart response.
func (s *Service) Chart(ctx context.Context, userID string) (*models.ChartResponse, error) {
	chart, err := s.chartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ChartResponse{
		Chart:             *chart,
		Summary:           chartSummary(chart),
		LifeDomains:       astro.BuildLifeDomains(chart),
		PreviousLifeBrief: astro.GeneratePreviousLifeBrief(chart),
	}, nil
}

// Horoscope derives the daily, monthly, and yearly forecast.
func (s *Service) Horoscope(ctx context.Context, userID string) (*horoscope.Response, error) {
	chart, err := s.chartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := horoscope.Derive(chart)
	return &resp, nil
}

// Interpretation assembles the narrative reading: generated (or fallback)
// sections, the integration summary, and the previous-life section when the
// chart's system supports it.
func (s *Service) Interpretation(ctx context.Context, userID string) (*models.InterpretationResponse, error) {
	chart, err := s.chartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := chartSummary(chart)
	traits := psychology.MapChartToInsights(chart)
	out := interpretation.Generate(ctx, s.gemini, s.logger, interpretation.Input{
		Summary: summary,
		Traits:  traits,
	})

	sunHouse, moonHouse := 1, 1
	if sun := chart.Planet("Sun"); sun != nil {
		sunHouse = sun.House
	}
	if moon := chart.Planet("Moon"); moon != nil {
		moonHouse = moon.House
	}

	brief := astro.GeneratePreviousLifeBrief(chart)

	resp := &models.InterpretationResponse{
		Narrative: out.Narrative,
		Sections: models.InterpretationSections{
			Identity:        out.Sections.Identity,
			EmotionalNature: out.Sections.EmotionalNature,
			LifeFocus:       out.Sections.LifeFocus,
			Integration:     out.Sections.Integration,
		},
		IntegrationSummary: interpretation.BuildIntegrationSummary(chart.Ascendant, sunHouse, moonHouse, brief),
	}

	if brief != nil {
		section := interpretation.BuildPreviousLifeSection(brief)
		previousLife := &models.PreviousLifeSection{
			Title: section.Title,
			Text:  section.Text,
		}
		if insight := astro.DerivePreviousLifeInsight(chart); insight != nil {
			previousLife.Theme = insight.Theme
			previousLife.UnresolvedPattern = insight.UnresolvedPattern
			previousLife.CarriedInstincts = insight.CarriedInstincts
			previousLife.PresentLifeCorrection = insight.PresentLifeCorrection
		}
		resp.Sections.PreviousLife = previousLife
	}

	return resp, nil
}

// Ensure Service implements AstrologyService
var _ interfaces.AstrologyService = (*Service)(nil)
