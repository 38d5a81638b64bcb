package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrModelsExhausted reports that every configured model was tried without a
// usable completion. It wraps the last model error when one occurred; when all
// attempts merely returned whitespace it is returned bare.
var ErrModelsExhausted = errors.New("all models exhausted without usable output")

// Prompt templates. Article text is interpolated verbatim with no truncation
// or chunking; upstream token limits are the service's own business.
const (
	simplifyPrompt = "Rewrite this article to be dyslexia-friendly with large spacing and easy-to-read formatting. " +
		"Do not add any headings, labels, or commentary. Only output the rewritten article:\n\n%s"
	tldrPrompt = "Summarize this article in concise bullet points only. " +
		"Do not add any introduction or labels, just the bullets:\n\n%s"
	titlePrompt = "Generate a concise and descriptive title for the following article only. " +
		"Do not add any additional commentary or explanation. Just the title:\n\n%s"
)

// Writer produces the simplified text, summary, and title for an article.
// Simplify and TLDR walk the configured model list from most to least
// capable; Title goes straight to the primary model with no fallback.
type Writer struct {
	gen    Generator
	models []string
	log    *zap.SugaredLogger
}

// NewWriter builds a Writer over the ordered model list. The list must be
// non-empty; the first entry is the primary model.
func NewWriter(gen Generator, models []string, log *zap.SugaredLogger) *Writer {
	return &Writer{gen: gen, models: models, log: log}
}

// Simplify rewrites the article into a dyslexia-friendly format.
func (w *Writer) Simplify(ctx context.Context, article string) (string, error) {
	return w.generateWithFallback(ctx, fmt.Sprintf(simplifyPrompt, article))
}

// TLDR summarizes the article into bullet points.
func (w *Writer) TLDR(ctx context.Context, article string) (string, error) {
	return w.generateWithFallback(ctx, fmt.Sprintf(tldrPrompt, article))
}

// Title generates a title using only the primary model.
func (w *Writer) Title(ctx context.Context, article string) (string, error) {
	out, err := w.gen.Generate(ctx, Request{
		Model:  w.models[0],
		Prompt: fmt.Sprintf(titlePrompt, article),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// generateWithFallback tries each model in order and returns the first
// non-empty completion. Errors do not abort the loop; whitespace-only
// completions are skipped without being recorded as errors.
func (w *Writer) generateWithFallback(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for i, model := range w.models {
		out, err := w.gen.Generate(ctx, Request{
			Model:             model,
			Prompt:            prompt,
			UnboundedThinking: i == 0,
		})
		if err != nil {
			lastErr = err
			w.log.Warnw("model attempt failed", "model", model, "error", err)
			continue
		}
		if strings.TrimSpace(out) != "" {
			return out, nil
		}
		w.log.Warnw("model returned empty completion", "model", model)
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: last error: %w", ErrModelsExhausted, lastErr)
	}
	return "", ErrModelsExhausted
}
