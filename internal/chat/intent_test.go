package chat

import (
	"reflect"
	"testing"
)

func TestDetectIntent_Domains(t *testing.T) {
	cases := []struct {
		message string
		domain  string
	}{
		{"Will I ever find love?", DomainRelationships},
		{"Who am I really?", DomainIdentity},
		{"Is this career right for me?", DomainWorkAndDuty},
		{"My feelings change so quickly.", DomainEmotionalLife},
		{"What is my destiny?", DomainBeliefAndMeaning},
		{"Tell me about my chart.", DomainGeneral},
	}
	for _, tc := range cases {
		intent := DetectIntent(tc.message)
		if intent.Domain != tc.domain {
			t.Errorf("%q: domain = %q, want %q", tc.message, intent.Domain, tc.domain)
		}
	}
}

func TestDetectIntent_DomainPriority(t *testing.T) {
	// Identity keywords win over relationship keywords when both match.
	intent := DetectIntent("my personality in love")
	if intent.Domain != DomainIdentity {
		t.Errorf("domain = %q, want identity to win", intent.Domain)
	}
}

func TestDetectIntent_Depths(t *testing.T) {
	cases := []struct {
		message string
		depth   string
	}{
		{"Will I ever find love?", DepthSurface},
		{"What does this placement mean?", DepthSurface},
		{"Why do I repeat this pattern?", DepthReflective},
		{"What is the meaning of life?", DepthExistential},
		{"Hello there.", DepthSurface},
	}
	for _, tc := range cases {
		intent := DetectIntent(tc.message)
		if intent.Depth != tc.depth {
			t.Errorf("%q: depth = %q, want %q", tc.message, intent.Depth, tc.depth)
		}
	}
}

func TestDetectIntent_Flags(t *testing.T) {
	intent := DetectIntent("Am I doomed? Tell me what to do about my anxiety.")
	want := []string{"fatalism", "dependency", "medical_or_mental"}
	if !reflect.DeepEqual(intent.Flags, want) {
		t.Errorf("flags = %v, want %v", intent.Flags, want)
	}
	if intent.Safe {
		t.Error("intent with medical_or_mental flag marked safe")
	}

	clean := DetectIntent("Will I ever find love?")
	if !clean.Safe {
		t.Error("clean message marked unsafe")
	}
	if clean.Flags == nil || len(clean.Flags) != 0 {
		t.Errorf("flags = %v, want empty non-nil slice", clean.Flags)
	}
}

func TestBuildResponseFrame(t *testing.T) {
	relationship := BuildResponseFrame(Intent{Domain: DomainRelationships, Depth: DepthSurface, Safe: true})
	if relationship.Tone != "grounded" || relationship.Voice != "neutral_astrologer" || relationship.Length != "short" {
		t.Errorf("relationship frame = %+v", relationship)
	}
	if !reflect.DeepEqual(relationship.AllowedSections, []string{"relationships", "identity"}) {
		t.Errorf("allowed sections = %v", relationship.AllowedSections)
	}
	if relationship.OpeningStyle != "Let us look at this calmly." {
		t.Errorf("opening = %q", relationship.OpeningStyle)
	}

	belief := BuildResponseFrame(Intent{Domain: DomainBeliefAndMeaning, Depth: DepthExistential, Safe: true})
	if belief.Voice != "guru_like" || belief.Length != "medium" || belief.Tone != "reflective" {
		t.Errorf("belief frame = %+v", belief)
	}
	if belief.ClosingStyle != "This understanding unfolds over time." {
		t.Errorf("closing = %q", belief.ClosingStyle)
	}
}
