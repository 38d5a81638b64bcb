package store

import (
	"context"

	"github.com/google/uuid"

	"readright/appwrite"
	"readright/types"
)

// AppwriteAudio uploads audio artifacts into an Appwrite storage bucket.
type AppwriteAudio struct {
	client   *appwrite.Client
	bucketID string
}

// NewAppwriteAudio returns a bucket-backed audio store.
func NewAppwriteAudio(client *appwrite.Client, bucketID string) *AppwriteAudio {
	return &AppwriteAudio{client: client, bucketID: bucketID}
}

// Upload stores the file under a generated unique id and returns the public
// view URL.
func (s *AppwriteAudio) Upload(ctx context.Context, path string) (string, error) {
	fileID, err := s.client.CreateFile(ctx, s.bucketID, uuid.NewString(), path)
	if err != nil {
		return "", err
	}
	return s.client.ViewURL(s.bucketID, fileID), nil
}

// AppwriteRows persists generation results as TablesDB rows.
type AppwriteRows struct {
	client     *appwrite.Client
	databaseID string
	tableID    string
}

// NewAppwriteRows returns a TablesDB-backed row store.
func NewAppwriteRows(client *appwrite.Client, databaseID, tableID string) *AppwriteRows {
	return &AppwriteRows{client: client, databaseID: databaseID, tableID: tableID}
}

// CreateRow inserts the result keyed by rowID.
func (s *AppwriteRows) CreateRow(ctx context.Context, rowID string, result types.GenerationResult) (string, error) {
	return s.client.CreateRow(ctx, s.databaseID, s.tableID, rowID, result)
}
