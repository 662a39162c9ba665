package model

import "context"

// Generator produces free-text answers from an external generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
