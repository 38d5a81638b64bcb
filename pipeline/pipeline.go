// Package pipeline runs the sequential generation flow for one request:
// simplify, summarize, synthesize, upload, persist. Stages never overlap;
// each one blocks only on its own network call.
package pipeline

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"readright/tts"
	"readright/types"
)

// Writer produces the three generated texts for an article.
type Writer interface {
	Simplify(ctx context.Context, article string) (string, error)
	TLDR(ctx context.Context, article string) (string, error)
	Title(ctx context.Context, article string) (string, error)
}

// Persister performs the two persistence writes for one request.
type Persister interface {
	UploadAudio(ctx context.Context, path string) (string, error)
	CreateRow(ctx context.Context, rowID string, result types.GenerationResult) (string, error)
}

// Runner executes the pipeline with process-lifetime collaborators. The
// Persister is per-request because it carries the caller's API key.
type Runner struct {
	writer  Writer
	synth   tts.Synthesizer
	scratch string
	log     *zap.SugaredLogger
}

// NewRunner builds a Runner. scratch is the fixed path the synthesizer writes
// to; it is also what gets uploaded when synthesis fails silently.
func NewRunner(writer Writer, synth tts.Synthesizer, scratch string, log *zap.SugaredLogger) *Runner {
	return &Runner{writer: writer, synth: synth, scratch: scratch, log: log}
}

// Run processes one acquired article through generation and persistence and
// returns the id of the created row. docID pins the row id when non-empty.
func (r *Runner) Run(ctx context.Context, article types.ArticleContent, docID string, persist Persister) (string, error) {
	simplified, err := r.writer.Simplify(ctx, article.Text)
	if err != nil {
		return "", errors.Wrap(err, "simplifying article")
	}

	tldr, err := r.writer.TLDR(ctx, article.Text)
	if err != nil {
		return "", errors.Wrap(err, "summarizing article")
	}

	// A failed synthesis degrades silently: whatever sits at the scratch
	// path is uploaded, and a missing file surfaces as an upload error.
	audioPath, err := r.synth.Synthesize(ctx, simplified)
	if err != nil {
		r.log.Warnw("speech synthesis failed, uploading scratch audio as-is", "error", err)
		audioPath = r.scratch
	}

	audioURL, err := persist.UploadAudio(ctx, audioPath)
	if err != nil {
		return "", errors.Wrap(err, "uploading audio")
	}
	if removeErr := os.Remove(audioPath); removeErr != nil {
		r.log.Debugw("could not remove audio artifact", "path", audioPath, "error", removeErr)
	}

	rowID := docID
	if rowID == "" {
		rowID = uuid.NewString()
	}

	id, err := persist.CreateRow(ctx, rowID, types.GenerationResult{
		Title:          article.Title,
		SimplifiedText: simplified,
		TLDR:           tldr,
		AudioURL:       audioURL,
	})
	if err != nil {
		return "", errors.Wrap(err, "creating result row")
	}

	return id, nil
}
