package models

// CreateBirthProfileRequest is the birth profile creation payload.
// birth_time is required unless time_confidence is "unknown".
type CreateBirthProfileRequest struct {
	BirthDate      string `json:"birth_date"`
	BirthTime      string `json:"birth_time,omitempty"`
	TimeConfidence string `json:"time_confidence"`
	BirthPlace     string `json:"birth_place"`
}

// ChartResponse is the chart endpoint payload: the chart itself plus the
// derived summary, life domains, and optional carried-pattern brief.
type ChartResponse struct {
	Chart
	Summary           string                `json:"summary"`
	LifeDomains       map[string]LifeDomain `json:"life_domains"`
	PreviousLifeBrief *PreviousLifeBrief    `json:"previous_life_brief,omitempty"`
}

// PreviousLifeSection is the previous-life block of an interpretation. The
// insight fields are present only when the richer derivation succeeded.
type PreviousLifeSection struct {
	Title                 string `json:"title"`
	Text                  string `json:"text"`
	Theme                 string `json:"theme,omitempty"`
	UnresolvedPattern     string `json:"unresolved_pattern,omitempty"`
	CarriedInstincts      string `json:"carried_instincts,omitempty"`
	PresentLifeCorrection string `json:"present_life_correction,omitempty"`
}

// InterpretationSections is the section body of an interpretation response.
type InterpretationSections struct {
	Identity        string               `json:"identity"`
	EmotionalNature string               `json:"emotional_nature"`
	LifeFocus       string               `json:"life_focus"`
	Integration     string               `json:"integration"`
	PreviousLife    *PreviousLifeSection `json:"previous_life,omitempty"`
}

// InterpretationResponse is the interpretation endpoint payload.
type InterpretationResponse struct {
	Narrative          string                 `json:"narrative"`
	Sections           InterpretationSections `json:"sections"`
	IntegrationSummary string                 `json:"integration_summary"`
}

// ChatResponse is the chat endpoint payload.
type ChatResponse struct {
	Text string `json:"text"`
}
