package interfaces

import (
	"context"

	"github.com/lunehq/lune/internal/models"
)

// GenerateRequest describes a single text-generation call.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int32
	JSONOutput  bool
}

// GenerativeClient produces model-generated text. Implementations must be
// safe for concurrent use.
type GenerativeClient interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GeocodingClient resolves a free-text place name to coordinates and a
// timezone.
type GeocodingClient interface {
	Resolve(ctx context.Context, place string) (*models.Location, error)
}
