package extract

import (
	"context"
	"fmt"

	readability "github.com/go-shiori/go-readability"

	"readright/types"
)

// ReadabilityExtractor parses the page locally with go-readability. It is the
// fallback when no Diffbot token is configured.
type ReadabilityExtractor struct{}

// NewReadabilityExtractor returns a local extractor.
func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{}
}

// Extract fetches and parses the URL directly.
func (e *ReadabilityExtractor) Extract(ctx context.Context, url string) (types.ArticleContent, error) {
	article, err := readability.FromURL(url, FetchTimeout)
	if err != nil {
		return types.ArticleContent{}, fmt.Errorf("readability extraction failed: %w", err)
	}

	if article.TextContent == "" {
		return types.ArticleContent{}, ErrNotFound
	}

	title := article.Title
	if title == "" {
		title = "Untitled"
	}

	return types.ArticleContent{Text: article.TextContent, Title: title}, nil
}
