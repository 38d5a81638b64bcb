package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"readright/extract"
	"readright/pipeline"
	"readright/types"
)

type fakeExtractor struct {
	article types.ArticleContent
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (types.ArticleContent, error) {
	f.calls++
	return f.article, f.err
}

type fakeWriter struct {
	title      string
	simplified string
	tldr       string
	titleErr   error
}

func (f *fakeWriter) Simplify(ctx context.Context, article string) (string, error) {
	return f.simplified, nil
}

func (f *fakeWriter) TLDR(ctx context.Context, article string) (string, error) {
	return f.tldr, nil
}

func (f *fakeWriter) Title(ctx context.Context, article string) (string, error) {
	return f.title, f.titleErr
}

type fakeSynth struct {
	path string
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) (string, error) {
	return f.path, nil
}

type fakePersister struct {
	apiKey    string
	audioURL  string
	rowResult types.GenerationResult
	createdID string
}

func (f *fakePersister) UploadAudio(ctx context.Context, path string) (string, error) {
	return f.audioURL, nil
}

func (f *fakePersister) CreateRow(ctx context.Context, rowID string, result types.GenerationResult) (string, error) {
	f.rowResult = result
	return f.createdID, nil
}

type fakeStatus struct {
	execution map[string]any
	err       error
}

func (f *fakeStatus) GetExecution(ctx context.Context, executionID string) (map[string]any, error) {
	return f.execution, f.err
}

type testEnv struct {
	router    *gin.Engine
	extractor *fakeExtractor
	persister *fakePersister
	status    *fakeStatus
}

func newTestEnv(t *testing.T, extractor *fakeExtractor, writer *fakeWriter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	scratch := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(scratch, []byte("mp3"), 0o600))

	log := zaptest.NewLogger(t).Sugar()
	persister := &fakePersister{audioURL: "https://cdn.example/view", createdID: "row-42"}
	status := &fakeStatus{execution: map[string]any{"status": "completed"}}

	d := Deps{
		Log:       log,
		Extractor: extractor,
		Writer:    writer,
		Runner:    pipeline.NewRunner(writer, &fakeSynth{path: scratch}, scratch, log),
		Persist: func(apiKey string) pipeline.Persister {
			persister.apiKey = apiKey
			return persister
		},
		Status: func(apiKey string) StatusFetcher { return status },
	}

	return &testEnv{router: NewRouter(d), extractor: extractor, persister: persister, status: status}
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-appwrite-key", "caller-key")
	r.ServeHTTP(w, req)
	return w
}

func TestProcessEmptyBodyIsBadRequest(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{}, &fakeWriter{})

	w := postJSON(env.router, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestProcessMalformedBodyIsBadRequest(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{}, &fakeWriter{})

	w := postJSON(env.router, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessURLNotFound(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{err: extract.ErrNotFound}, &fakeWriter{})

	w := postJSON(env.router, `{"url": "https://example.com/gone"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestProcessTextSkipsExtraction(t *testing.T) {
	extractor := &fakeExtractor{}
	writer := &fakeWriter{title: "Generated Title", simplified: "Simple.", tldr: "- point"}
	env := newTestEnv(t, extractor, writer)

	w := postJSON(env.router, `{"text": "Sample article body."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, extractor.calls)
	assert.Equal(t, "Generated Title", env.persister.rowResult.Title)
}

func TestProcessTextEndToEnd(t *testing.T) {
	writer := &fakeWriter{title: "Generated Title", simplified: "Simple words.", tldr: "- bullet"}
	env := newTestEnv(t, &fakeExtractor{}, writer)

	w := postJSON(env.router, `{"text": "Sample article body."}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "row-42", resp["id"])

	assert.Equal(t, types.GenerationResult{
		Title:          "Generated Title",
		SimplifiedText: "Simple words.",
		TLDR:           "- bullet",
		AudioURL:       "https://cdn.example/view",
	}, env.persister.rowResult)

	// The per-request Appwrite key reaches the persistence layer.
	assert.Equal(t, "caller-key", env.persister.apiKey)
}

func TestProcessURLEndToEnd(t *testing.T) {
	extractor := &fakeExtractor{article: types.ArticleContent{
		Text:  "Extracted body.",
		Title: "Extracted Title",
	}}
	writer := &fakeWriter{simplified: "Simple.", tldr: "- point"}
	env := newTestEnv(t, extractor, writer)

	w := postJSON(env.router, `{"url": "https://example.com/story", "docid": "doc-7"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, extractor.calls)
	// Title comes from extraction, not from the LLM.
	assert.Equal(t, "Extracted Title", env.persister.rowResult.Title)
}

func TestProcessTitleFailureIsOpaque500(t *testing.T) {
	writer := &fakeWriter{titleErr: errors.New("model down")}
	env := newTestEnv(t, &fakeExtractor{}, writer)

	w := postJSON(env.router, `{"text": "Sample article body."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestStatusPollRelaysUpstreamBody(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{}, &fakeWriter{})
	env.status.execution = map[string]any{"$id": "exec-1", "status": "processing"}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?workerid=exec-1", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp["status"])
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusPollUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{}, &fakeWriter{})
	env.status.err = errors.New("invalid execution id")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?workerid=bogus", nil)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
}
