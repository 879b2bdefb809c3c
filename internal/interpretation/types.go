// Package interpretation assembles the narrative chart reading. A generative
// rewrite is attempted when a client is available; every path degrades to a
// deterministic fallback built from the trait data, so the response shape is
// always complete.
package interpretation

import "github.com/lunehq/lune/internal/models"

// Input carries the deterministic material the narrative is built from.
type Input struct {
	Summary string
	Traits  []models.AstrologyInsight
}

// Sections is the fixed four-part body of a reading.
type Sections struct {
	Identity        string `json:"identity"`
	EmotionalNature string `json:"emotional_nature"`
	LifeFocus       string `json:"life_focus"`
	Integration     string `json:"integration"`
}

// Output is a complete reading. All fields are always populated.
type Output struct {
	Narrative string   `json:"narrative"`
	Sections  Sections `json:"sections"`
}

// Section is a titled narrative block appended to a reading.
type Section struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
