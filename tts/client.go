package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	synthesisTimeout = 120 * time.Second

	filePermissions = 0o600
	dirPermissions  = 0o750
)

// Synthesizer turns text into a speech audio file and returns its path.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// Client calls a standalone TTS HTTP service and writes the returned audio to
// a fixed scratch path.
type Client struct {
	serviceURL string
	voice      string
	outputPath string
	httpClient *http.Client
}

// NewClient builds a TTS client with a fixed voice and scratch output path.
func NewClient(serviceURL, voice, outputPath string) *Client {
	return &Client{
		serviceURL: serviceURL,
		voice:      voice,
		outputPath: outputPath,
		httpClient: &http.Client{Timeout: synthesisTimeout},
	}
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Synthesize sanitizes the text, requests audio from the service, and writes
// it to the scratch path.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:  CleanForSpeech(text),
		Voice: c.voice,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("tts request: status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(c.outputPath), dirPermissions); err != nil {
		return "", err
	}

	out, err := os.OpenFile(c.outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}

	return c.outputPath, nil
}
