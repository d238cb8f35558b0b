package service

import "context"

// TextGenerator is a single stateless call to a generative text model.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
