package extract

import (
	"context"
	"errors"
	"time"

	"readright/types"
)

// FetchTimeout bounds a single article acquisition.
const FetchTimeout = 25 * time.Second

// ErrNotFound reports that the upstream extractor could not produce any
// article text for the URL. Callers must not confuse it with a valid empty
// article.
var ErrNotFound = errors.New("article not found")

// Extractor resolves a URL into clean article text and a title.
type Extractor interface {
	Extract(ctx context.Context, url string) (types.ArticleContent, error)
}
