package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient implements Generator against the Gemini generateContent API.
// Endpoint: POST {base}/models/{model}:generateContent
type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiClient returns a client for the public Gemini API.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   defaultGeminiEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type geminiGenerateRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ThinkingConfig *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiThinkingConfig struct {
	// -1 requests a dynamic, effectively unbounded thinking budget.
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate invokes the model and returns the concatenated candidate text.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	payload := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.UnboundedThinking {
		payload.GenerationConfig = &geminiGenerationConfig{
			ThinkingConfig: &geminiThinkingConfig{ThinkingBudget: -1},
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini %s: status %d: %s", req.Model, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed geminiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini %s: no candidates returned", req.Model)
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
