// Package store persists pipeline outputs: the audio artifact to an object
// store and the generation result to a table row.
package store

import (
	"context"

	"readright/types"
)

// AudioStore uploads a local audio file and returns its public URL.
type AudioStore interface {
	Upload(ctx context.Context, path string) (string, error)
}

// RowStore creates the persisted result row and returns its id.
type RowStore interface {
	CreateRow(ctx context.Context, rowID string, result types.GenerationResult) (string, error)
}

// Persister bundles the two persistence writes of one request. The writes are
// sequential and not atomic with respect to each other.
type Persister struct {
	Audio AudioStore
	Rows  RowStore
}

// UploadAudio uploads the audio artifact.
func (p Persister) UploadAudio(ctx context.Context, path string) (string, error) {
	return p.Audio.Upload(ctx, path)
}

// CreateRow persists the generation result.
func (p Persister) CreateRow(ctx context.Context, rowID string, result types.GenerationResult) (string, error) {
	return p.Rows.CreateRow(ctx, rowID, result)
}
