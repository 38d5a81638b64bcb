package appwrite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrMissingExecutionID reports a status poll without a worker id.
var ErrMissingExecutionID = errors.New("execution id is required")

// Functions polls execution status for one function.
type Functions struct {
	client     *Client
	functionID string
}

// NewFunctions binds a client to a function id.
func NewFunctions(c *Client, functionID string) *Functions {
	return &Functions{client: c, functionID: functionID}
}

// GetExecution returns the raw execution-status object as a plain map so the
// upstream body can be relayed verbatim.
func (f *Functions) GetExecution(ctx context.Context, executionID string) (map[string]any, error) {
	if executionID == "" {
		return nil, ErrMissingExecutionID
	}

	var execution map[string]any
	path := fmt.Sprintf("/functions/%s/executions/%s",
		url.PathEscape(f.functionID), url.PathEscape(executionID))
	if err := f.client.do(ctx, http.MethodGet, path, "", nil, &execution); err != nil {
		return nil, err
	}
	return execution, nil
}
