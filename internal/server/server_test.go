package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunehq/lune/internal/app"
	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/models"
	"github.com/lunehq/lune/internal/services/astrology"
	chatsvc "github.com/lunehq/lune/internal/services/chat"
	"github.com/lunehq/lune/internal/storage"
)

// --- Stub geocoder ---

type stubGeocoder struct{}

func (g *stubGeocoder) Resolve(_ context.Context, place string) (*models.Location, error) {
	if strings.Contains(place, "Nowhereville") {
		return nil, errors.New("no results")
	}
	return &models.Location{Latitude: 17.385, Longitude: 78.4867, Timezone: "UTC"}, nil
}

// newTestServer builds a server over a fresh temp-dir store, with no
// generative client so all narrative paths use deterministic fallbacks.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := common.NewDefaultConfig()
	cfg.Storage.Internal.Path = t.TempDir()
	logger := common.NewSilentLogger()

	sm, err := storage.NewManager(logger, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { sm.Close() })

	a := &app.App{
		Config:           cfg,
		Logger:           logger,
		Storage:          sm,
		AstrologyService: astrology.NewService(sm, &stubGeocoder{}, nil, logger),
		ChatService:      chatsvc.NewService(sm, nil, logger),
	}
	return NewServer(a)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates a user and returns a bearer token.
func registerAndLogin(t *testing.T, srv *Server, username string) string {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/users", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func validProfilePayload() map[string]string {
	return map[string]string{
		"birth_date":      "1990-06-15",
		"birth_time":      "14:30",
		"time_confidence": "exact",
		"birth_place":     "Hyderabad, India",
	}
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUserRegistrationAndLogin(t *testing.T) {
	srv := newTestServer(t)

	token := registerAndLogin(t, srv, "alice")
	assert.NotEmpty(t, token)

	// Duplicate registration
	rec := doJSON(t, srv, http.MethodPost, "/api/users", "", map[string]string{
		"username": "alice",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	// Token validation round trip
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/validate", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/validate", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBirthProfileValidation(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "bob")

	// Unauthenticated
	rec := doJSON(t, srv, http.MethodPost, "/api/birth-profile", "", validProfilePayload())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cases := []struct {
		name    string
		mutate  func(map[string]string)
		wantMsg string
	}{
		{"bad date", func(p map[string]string) { p["birth_date"] = "15/06/1990" }, "birth_date"},
		{"future date", func(p map[string]string) { p["birth_date"] = "2999-01-01" }, "future"},
		{"empty place", func(p map[string]string) { p["birth_place"] = "" }, "birth_place"},
		{"bad confidence", func(p map[string]string) { p["time_confidence"] = "roughly" }, "time_confidence"},
		{"bad time", func(p map[string]string) { p["birth_time"] = "25:99" }, "birth_time"},
		{"missing time", func(p map[string]string) { delete(p, "birth_time") }, "birth_time"},
	}
	for _, tc := range cases {
		payload := validProfilePayload()
		tc.mutate(payload)
		rec := doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
		assert.Contains(t, rec.Body.String(), tc.wantMsg, tc.name)
	}

	// Unknown time confidence waives birth_time
	payload := validProfilePayload()
	delete(payload, "birth_time")
	payload["time_confidence"] = "unknown"
	rec = doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, payload)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestBirthProfileLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "carol")

	// Chart before profile
	rec := doJSON(t, srv, http.MethodGet, "/api/astrology/chart", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You need to submit your birth details before viewing a chart")

	rec = doJSON(t, srv, http.MethodGet, "/api/astro/normalized-birth", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "You haven't submitted your birth details yet")

	// Create
	rec = doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, validProfilePayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Birth profile created")

	// Duplicate
	rec = doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, validProfilePayload())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "A birth profile already exists for this user")
	assert.Contains(t, rec.Body.String(), `"code":"profile_exists"`)

	// Locked against modification
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		rec = doJSON(t, srv, method, "/api/birth-profile", token, validProfilePayload())
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Birth profile is locked and cannot be modified")
		assert.Contains(t, rec.Body.String(), `"code":"profile_locked"`)
	}

	// Read back
	rec = doJSON(t, srv, http.MethodGet, "/api/birth-profile", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"locked":true`)

	rec = doJSON(t, srv, http.MethodGet, "/api/astro/normalized-birth", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var normalized models.NormalizedBirth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &normalized))
	assert.True(t, normalized.Locked)
	assert.Equal(t, "1990-06-15", normalized.BirthDate)
	assert.Equal(t, "UTC", normalized.Timezone)
}

func TestGeocodeFailure(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "dave")

	payload := validProfilePayload()
	payload["birth_place"] = "Nowhereville"
	rec := doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unable to resolve birth place location")
}

func TestChartHoroscopeInterpretation(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "erin")

	rec := doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, validProfilePayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Chart
	rec = doJSON(t, srv, http.MethodGet, "/api/astrology/chart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var chart models.ChartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, "whole_sign", chart.System)
	assert.Equal(t, "Sagittarius", chart.Ascendant)
	assert.Len(t, chart.Houses, 12)
	assert.Len(t, chart.Planets, 7)
	assert.Equal(t, fmt.Sprintf("%s natal chart with %s rising.", chart.System, chart.Ascendant), chart.Summary)
	assert.Len(t, chart.LifeDomains, 5)
	// Built charts carry the "whole_sign" label, which the previous-life
	// whitelist does not recognize.
	assert.Nil(t, chart.PreviousLifeBrief)

	// Same profile, same chart
	rec2 := doJSON(t, srv, http.MethodGet, "/api/astrology/chart", token, nil)
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())

	// Horoscope
	rec = doJSON(t, srv, http.MethodGet, "/api/horoscope", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var horoscope struct {
		Today struct {
			Headline string `json:"headline"`
		} `json:"today"`
		Month struct {
			Theme string `json:"theme"`
		} `json:"month"`
		Year struct {
			OverarchingTheme string `json:"overarching_theme"`
		} `json:"year"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &horoscope))
	assert.NotEmpty(t, horoscope.Today.Headline)
	assert.NotEmpty(t, horoscope.Month.Theme)
	assert.NotEmpty(t, horoscope.Year.OverarchingTheme)

	// Interpretation (no generative client: deterministic fallback)
	rec = doJSON(t, srv, http.MethodGet, "/api/interpretation", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var interp models.InterpretationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &interp))
	assert.NotEmpty(t, interp.Narrative)
	assert.NotEmpty(t, interp.Sections.Identity)
	assert.NotEmpty(t, interp.Sections.EmotionalNature)
	assert.NotEmpty(t, interp.Sections.LifeFocus)
	assert.NotEmpty(t, interp.Sections.Integration)
	assert.NotEmpty(t, interp.IntegrationSummary)
	assert.Nil(t, interp.Sections.PreviousLife)
}

func TestOAuthProviderRouting(t *testing.T) {
	srv := newTestServer(t)

	// Known providers dispatch to their handlers; with no client IDs
	// configured they answer 500 from inside the provider handler.
	rec := doJSON(t, srv, http.MethodGet, "/api/auth/login/google", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Google OAuth not configured")

	rec = doJSON(t, srv, http.MethodGet, "/api/auth/login/github", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GitHub OAuth not configured")

	// Unknown provider segments 404 at the dispatcher.
	for _, path := range []string{"/api/auth/login/facebook", "/api/auth/callback/twitter", "/api/auth/login/"} {
		rec = doJSON(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Unknown OAuth provider")
	}
}

func TestChat(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "frank")

	// Unauthenticated: bare 401
	rec := doJSON(t, srv, http.MethodPost, "/api/chat", "", map[string]string{"message": "hello"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// No profile yet: chart context unavailable
	rec = doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": "What is my chart like?"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "The chart could not be accessed at this time.")

	rec = doJSON(t, srv, http.MethodPost, "/api/birth-profile", token, validProfilePayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Message validation
	for _, message := range []string{"", "   ", strings.Repeat("a", 501)} {
		rec = doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": message})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "A message is required to continue.")
	}

	// Unsafe message: fixed refusal, even without a generative client
	rec = doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": "Can my chart explain my depression?"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "beyond what astrology can safely explore")

	// Safe message with no client: fixed unavailable text
	rec = doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": "Will I ever find love?"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var chat models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chat))
	assert.Equal(t, "Astrology chat is not available at the moment. Please try again later.", chat.Text)
}
