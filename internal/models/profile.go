package models

import "time"

// Time confidence for a birth time.
const (
	TimeConfidenceExact   = "exact"
	TimeConfidenceApprox  = "approx"
	TimeConfidenceUnknown = "unknown"
)

// BirthProfile is a user's birth record. One per user; locked on creation and
// immutable through the API afterward. Location backfill by the normalization
// pass is the only write that touches an existing profile.
type BirthProfile struct {
	UserID          string    `json:"user_id"`
	BirthDate       string    `json:"birth_date"` // YYYY-MM-DD
	BirthTime       string    `json:"birth_time"` // HH:mm, "00:00" when unknown
	TimeConfidence  string    `json:"time_confidence"`
	BirthPlaceInput string    `json:"birth_place_input"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Timezone        string    `json:"timezone"`
	BirthUTC        time.Time `json:"birth_utc"`
	Locked          bool      `json:"locked"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

// HasNormalizedLocation reports whether the profile already carries resolved
// coordinates and a timezone.
func (p *BirthProfile) HasNormalizedLocation() bool {
	hasCoords := p.Latitude != 0 || p.Longitude != 0
	hasTz := len(p.Timezone) > 0
	return hasCoords && hasTz
}

// NormalizedBirth is the API view of a normalized birth profile.
type NormalizedBirth struct {
	BirthDate      string  `json:"birth_date"`
	BirthPlace     string  `json:"birth_place"`
	BirthTime      *string `json:"birth_time"`
	TimeConfidence string  `json:"time_confidence"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Timezone       string  `json:"timezone"`
	BirthUTC       string  `json:"birth_utc"`
	Locked         bool    `json:"locked"`
}
