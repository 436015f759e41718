package client

import (
	"context"
	"fmt"

	"github.com/cinescope/cinescope/internal/domain/service"
)

// GenreClassifier adapts OllamaClient to the service.GenreClassifier
// interface. It embeds the submitted text in a fixed instruction template;
// the template and model are configuration, not code.
type GenreClassifier struct {
	client   *OllamaClient
	template string
}

// NewGenreClassifier creates a new GenreClassifier. The template must
// contain a single %s placeholder for the submitted text.
func NewGenreClassifier(client *OllamaClient, template string) service.GenreClassifier {
	return &GenreClassifier{client: client, template: template}
}

// Classify renders the instruction template with the given text, issues
// exactly one request to the inference service and returns the generated
// text unmodified.
func (c *GenreClassifier) Classify(ctx context.Context, text string) (string, error) {
	return c.client.Chat(ctx, c.BuildPrompt(text))
}

// Ready reports whether the inference service is reachable.
func (c *GenreClassifier) Ready(ctx context.Context) error {
	return c.client.Ready(ctx)
}

// BuildPrompt renders the instruction template with the given text. Empty
// text yields the template with nothing in the placeholder position.
func (c *GenreClassifier) BuildPrompt(text string) string {
	return fmt.Sprintf(c.template, text)
}
