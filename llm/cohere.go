package llm

import (
	"context"
	"fmt"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereClient implements Generator on the Cohere chat API. Cohere has no
// reasoning-budget knob, so Request.UnboundedThinking is ignored.
type CohereClient struct {
	client *cohereclient.Client
}

// NewCohereClient returns a client authenticated with the given API key.
func NewCohereClient(apiKey string) *CohereClient {
	return &CohereClient{client: cohereclient.NewClient(cohereclient.WithToken(apiKey))}
}

// Generate invokes the chat endpoint with a single user message.
func (c *CohereClient) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Model:   &model,
		Message: req.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat (%s): %w", req.Model, err)
	}
	return resp.Text, nil
}
