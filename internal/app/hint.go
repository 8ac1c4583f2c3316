package app

import (
	"context"
	"encoding/json"

	"github.com/soapsrc/ImposterGame/internal/domain"
	"github.com/soapsrc/ImposterGame/internal/ports"
)

// HintService relays a secret word to the LLM and returns its reply untouched.
type HintService struct {
	generator ports.HintGenerator
}

func NewHintService(gen ports.HintGenerator) *HintService {
	return &HintService{generator: gen}
}

// GenerateHint validates secretWord, renders the prompt and makes exactly one
// upstream call. Errors are domain errors; HTTP mapping happens in the adapter.
func (s *HintService) GenerateHint(ctx context.Context, secretWord string) (json.RawMessage, error) {
	if secretWord == "" {
		return nil, domain.ErrMissingSecretWord
	}

	return s.generator.GenerateHint(ctx, ports.HintInput{
		Prompt: domain.BuildHintPrompt(secretWord),
	})
}
