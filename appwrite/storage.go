package appwrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CreateFile uploads the file at path into the bucket under fileID and
// returns the server-assigned id.
func (c *Client) CreateFile(ctx context.Context, bucketID, fileID, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening audio artifact")
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("fileId", fileID); err != nil {
		return "", err
	}
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", errors.Wrap(err, "reading audio artifact")
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"$id"`
	}
	apiPath := fmt.Sprintf("/storage/buckets/%s/files", url.PathEscape(bucketID))
	if err := c.do(ctx, http.MethodPost, apiPath, mw.FormDataContentType(), &buf, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// ViewURL builds the deterministic public view link for an uploaded file.
func (c *Client) ViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.endpoint, url.PathEscape(bucketID), url.PathEscape(fileID), url.QueryEscape(c.projectID))
}
