package service

import "context"

// GenreClassifier defines the interface for LLM-backed genre classification.
// Classify embeds the text in the configured instruction template, issues a
// single synchronous request to the inference service and returns the
// generated text unmodified.
type GenreClassifier interface {
	Classify(ctx context.Context, text string) (string, error)

	// Ready reports whether the inference service is reachable.
	Ready(ctx context.Context) error
}
