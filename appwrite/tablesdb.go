package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateRow inserts a row keyed by rowID into the given table and returns the
// server-assigned id.
func (c *Client) CreateRow(ctx context.Context, databaseID, tableID, rowID string, data any) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"rowId": rowID,
		"data":  data,
	})
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"$id"`
	}
	path := fmt.Sprintf("/tablesdb/%s/tables/%s/rows",
		url.PathEscape(databaseID), url.PathEscape(tableID))
	if err := c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload), &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
