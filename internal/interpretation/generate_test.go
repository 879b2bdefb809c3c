package interpretation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/models"
)

// --- Mock generative client ---

type mockGenerativeClient struct {
	response string
	err      error
	calls    int
	lastReq  interfaces.GenerateRequest
}

func (m *mockGenerativeClient) Generate(_ context.Context, req interfaces.GenerateRequest) (string, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func sampleInput() Input {
	return Input{
		Summary: "whole_sign natal chart with Leo rising.",
		Traits: []models.AstrologyInsight{
			{Domain: "identity", Text: "The ascendant in Leo suggests a confident approach."},
			{Domain: "emotional_nature", Text: "The Moon in a fire sign reflects quick responses."},
			{Domain: "life_theme", Text: "The Sun in the seventh house points to partnership."},
		},
	}
}

func TestGenerate_NilClientFallsBack(t *testing.T) {
	out := Generate(context.Background(), nil, nil, sampleInput())

	if out.Sections.Identity != "The ascendant in Leo suggests a confident approach." {
		t.Errorf("Identity = %q, want trait text", out.Sections.Identity)
	}
	if !strings.HasPrefix(out.Narrative, "whole_sign natal chart with Leo rising.") {
		t.Errorf("Narrative = %q, want summary prefix", out.Narrative)
	}
	if out.Sections.Integration == "" {
		t.Error("Integration empty in fallback")
	}
}

func TestGenerate_ClientErrorFallsBack(t *testing.T) {
	client := &mockGenerativeClient{err: errors.New("quota exceeded")}
	out := Generate(context.Background(), client, nil, sampleInput())

	if client.calls != 1 {
		t.Errorf("calls = %d, want 1", client.calls)
	}
	if out.Sections.LifeFocus != "The Sun in the seventh house points to partnership." {
		t.Errorf("LifeFocus = %q, want fallback trait text", out.Sections.LifeFocus)
	}
}

func TestGenerate_MalformedResponseFallsBack(t *testing.T) {
	for _, response := range []string{"", "not json", `{"narrative":"only narrative"}`} {
		client := &mockGenerativeClient{response: response}
		out := Generate(context.Background(), client, nil, sampleInput())
		if out.Sections.Integration != "These factors work together in the chart. Each area touches the others." {
			t.Errorf("response %q: Integration = %q, want fallback text", response, out.Sections.Integration)
		}
	}
}

func TestGenerate_ValidResponseSanitized(t *testing.T) {
	client := &mockGenerativeClient{
		response: `{"narrative":"you will find balance.","sections":{"identity":"A confident presence.","emotional_nature":"Steady rhythms.","life_focus":"Partnership matters.","integration":"These areas certainly connect."}}`,
	}
	out := Generate(context.Background(), client, nil, sampleInput())

	if out.Narrative != "find balance." {
		t.Errorf("Narrative = %q, want sanitized text", out.Narrative)
	}
	if out.Sections.Integration != "These areas connect." {
		t.Errorf("Integration = %q, want sanitized text", out.Sections.Integration)
	}
	if out.Sections.Identity != "A confident presence." {
		t.Errorf("Identity = %q, want untouched text", out.Sections.Identity)
	}

	if !client.lastReq.JSONOutput {
		t.Error("request did not ask for JSON output")
	}
	if client.lastReq.Temperature != generateTemperature {
		t.Errorf("temperature = %v, want %v", client.lastReq.Temperature, generateTemperature)
	}
}

func TestBuildFallback_DefaultsWhenTraitsMissing(t *testing.T) {
	out := BuildFallback(Input{Summary: "Placidus natal chart with Aries rising."})

	if out.Sections.Identity != "The first house and ascendant describe the approach to the world." {
		t.Errorf("Identity = %q", out.Sections.Identity)
	}
	if out.Sections.EmotionalNature != "The Moon placement reflects inner rhythms and responsiveness." {
		t.Errorf("EmotionalNature = %q", out.Sections.EmotionalNature)
	}
	if out.Sections.LifeFocus != "The Sun house indicates where life emphasis tends to fall." {
		t.Errorf("LifeFocus = %q", out.Sections.LifeFocus)
	}
}
