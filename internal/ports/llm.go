package ports

import (
	"context"
	"encoding/json"
)

// HintInput is what the LLM needs to produce a hint.
type HintInput struct {
	Prompt string
}

// HintGenerator sends a hint prompt to an LLM and returns the raw JSON reply.
// The reply is opaque to callers and must not be reshaped.
type HintGenerator interface {
	GenerateHint(ctx context.Context, in HintInput) (json.RawMessage, error)
}
