package nominatim

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTimezoneForLongitude(t *testing.T) {
	cases := []struct {
		lon  float64
		want string
	}{
		{0, "Etc/GMT"},
		{7.4, "Etc/GMT"},   // rounds to band 0
		{7.6, "Etc/GMT-1"}, // Etc sign convention is inverted
		{78.4867, "Etc/GMT-5"},
		{-74.006, "Etc/GMT+5"},
		{179.9, "Etc/GMT-12"},
		{-179.9, "Etc/GMT+12"},
	}
	for _, tc := range cases {
		if got := timezoneForLongitude(tc.lon); got != tc.want {
			t.Errorf("timezoneForLongitude(%v) = %q, want %q", tc.lon, got, tc.want)
		}
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(
		WithBaseURL(baseURL),
		WithUserAgent("lune-test"),
		WithRateLimit(1000),
	)
}

func TestResolve(t *testing.T) {
	var gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if r.URL.Query().Get("q") != "Hyderabad, India" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat":"17.385","lon":"78.4867"}]`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	location, err := client.Resolve(context.Background(), "  Hyderabad, India  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if location.Latitude != 17.385 || location.Longitude != 78.4867 {
		t.Errorf("coordinates = %v, %v", location.Latitude, location.Longitude)
	}
	if location.Timezone != "Etc/GMT-5" {
		t.Errorf("timezone = %q, want Etc/GMT-5", location.Timezone)
	}
	if gotUserAgent != "lune-test" {
		t.Errorf("User-Agent = %q", gotUserAgent)
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"no results", `[]`, http.StatusOK},
		{"malformed body", `{"not":"an array"}`, http.StatusOK},
		{"non-numeric coordinates", `[{"lat":"abc","lon":"def"}]`, http.StatusOK},
		{"out-of-range coordinates", `[{"lat":"95.0","lon":"10.0"}]`, http.StatusOK},
		{"server error", `boom`, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			_, err := newTestClient(ts.URL).Resolve(context.Background(), "Somewhere")
			if !errors.Is(err, ErrUnresolvable) {
				t.Errorf("err = %v, want ErrUnresolvable", err)
			}
		})
	}
}

func TestResolve_EmptyPlace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty place should not reach the network")
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).Resolve(context.Background(), "   "); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("err = %v, want ErrUnresolvable", err)
	}
}
