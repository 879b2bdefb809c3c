// Package nominatim provides a client for the OpenStreetMap Nominatim
// geocoding API.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/models"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "lune-server"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 1 // requests per second, per Nominatim usage policy
)

// ErrUnresolvable marks a place that could not be resolved to coordinates.
// Transport failures wrap it too: callers treat every resolution failure the
// same way.
var ErrUnresolvable = errors.New("unable to resolve birth place location")

// Client implements the GeocodingClient interface
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Nominatim client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// searchResult is a single Nominatim search hit. lat/lon arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve geocodes a free-text place name to coordinates and a timezone.
// The timezone is derived from the resolved longitude, never guessed from
// the place string.
func (c *Client) Resolve(ctx context.Context, place string) (*models.Location, error) {
	trimmed := strings.TrimSpace(place)
	if trimmed == "" {
		return nil, ErrUnresolvable
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(trimmed))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("place", trimmed).Msg("Geocoding request failed")
		return nil, fmt.Errorf("geocoding request failed: %w", ErrUnresolvable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("place", trimmed).Msg("Geocoding request rejected")
		return nil, fmt.Errorf("geocoding returned status %d: %w", resp.StatusCode, ErrUnresolvable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoding response: %w", ErrUnresolvable)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return nil, ErrUnresolvable
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, ErrUnresolvable
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrUnresolvable
	}

	c.logger.Debug().
		Str("place", trimmed).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("Place resolved")

	return &models.Location{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  timezoneForLongitude(lon),
	}, nil
}

// timezoneForLongitude maps a longitude to its nominal 15-degree offset band
// as an Etc/GMT zone. The Etc/GMT sign convention is inverted relative to
// UTC offsets: Etc/GMT-5 means UTC+5.
func timezoneForLongitude(lon float64) string {
	offset := int(math.Round(lon / 15.0))
	if offset == 0 {
		return "Etc/GMT"
	}
	return fmt.Sprintf("Etc/GMT%+d", -offset)
}

// Ensure Client implements GeocodingClient
var _ interfaces.GeocodingClient = (*Client)(nil)
