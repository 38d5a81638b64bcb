package types

// ArticleContent is the acquired input to the generation pipeline, either
// caller-supplied raw text or the output of article extraction.
type ArticleContent struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}

// ProcessRequest is the POST body. Exactly one of URL or Text must be set;
// DocID optionally pins the id of the persisted result row.
type ProcessRequest struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	DocID string `json:"docid"`
}

// GenerationResult is the persisted outcome of one processed article. The
// simplified text keeps its Markdown; only the spoken copy is sanitized.
type GenerationResult struct {
	Title          string `json:"title"`
	SimplifiedText string `json:"simplifiedText"`
	TLDR           string `json:"tldr"`
	AudioURL       string `json:"audioUrl"`
}
