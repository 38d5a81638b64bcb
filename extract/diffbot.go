package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"readright/types"
)

const defaultDiffbotEndpoint = "https://api.diffbot.com/v3/article"

// DiffbotClient extracts articles through the Diffbot Article API.
// Docs: https://docs.diffbot.com/reference/article
type DiffbotClient struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

// NewDiffbotClient returns a client bound to the given API token.
func NewDiffbotClient(token string) *DiffbotClient {
	return &DiffbotClient{
		token:      token,
		endpoint:   defaultDiffbotEndpoint,
		httpClient: &http.Client{Timeout: FetchTimeout},
	}
}

type diffbotResponse struct {
	Objects []struct {
		Text  string `json:"text"`
		Title string `json:"title"`
	} `json:"objects"`
}

// Extract calls the Article API and returns the first extracted object.
// Any transport failure, non-2xx status, or empty extraction yields an error.
func (c *DiffbotClient) Extract(ctx context.Context, articleURL string) (types.ArticleContent, error) {
	q := url.Values{}
	q.Set("token", c.token)
	q.Set("url", articleURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return types.ArticleContent{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.ArticleContent{}, fmt.Errorf("diffbot fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return types.ArticleContent{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.ArticleContent{}, fmt.Errorf("diffbot fetch: status %d", resp.StatusCode)
	}

	var raw diffbotResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return types.ArticleContent{}, fmt.Errorf("diffbot decode: %w", err)
	}

	if len(raw.Objects) == 0 || raw.Objects[0].Text == "" {
		return types.ArticleContent{}, ErrNotFound
	}

	title := raw.Objects[0].Title
	if title == "" {
		title = "Untitled"
	}

	return types.ArticleContent{Text: raw.Objects[0].Text, Title: title}, nil
}
