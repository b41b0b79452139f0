package services

import (
	"context"
	"log"
	"strings"

	"github.com/itish2003/giggle/models"
)

// AskService answers a single question and decorates the answer with a
// tagline.
type AskService interface {
	Ask(c context.Context, req models.AskRequest) (*models.AskResponse, error)
}

type askServiceImpl struct {
	generator Generator
	pickFunny func() string
}

// NewAskService creates an AskService that sends questions to generator.
func NewAskService(generator Generator) AskService {
	return &askServiceImpl{
		generator: generator,
		pickFunny: PickFunny,
	}
}

// Ask implements AskService. Backend errors are returned unchanged so the
// caller sees the original message.
func (s *askServiceImpl) Ask(c context.Context, req models.AskRequest) (*models.AskResponse, error) {
	rid := RequestID(c)
	log.Printf("SERVICE [%s]: Asking question: '%s'", rid, req.Question)

	systemPrompt := DefaultSystemPrompt
	if req.SystemPrompt != nil {
		systemPrompt = *req.SystemPrompt
	}

	text, err := s.generator.Generate(c, systemPrompt, req.Question)
	if err != nil {
		log.Printf("SERVICE [%s]: Backend call failed: %v", rid, err)
		return nil, err
	}
	answer := strings.TrimSpace(text)

	funny := s.pickFunny()
	log.Printf("SERVICE [%s]: Answer ready (%d bytes)", rid, len(answer))
	return &models.AskResponse{
		Answer:     answer,
		FunnyAddon: funny,
		Combined:   answer + "\n\n" + funny,
	}, nil
}
