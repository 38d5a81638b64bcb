package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetStatus relays the upstream execution-status object for the worker
// id in the query string. The upstream body is returned verbatim as a plain
// map; upstream failures surface as an opaque 500 with the CORS header.
func handleGetStatus(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		workerID := c.Query("workerid")
		fetcher := d.Status(c.GetHeader(apiKeyHeader))

		execution, err := fetcher.GetExecution(c.Request.Context(), workerID)
		if err != nil {
			d.Log.Errorw("execution status lookup failed", "workerid", workerID, "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, execution)
	}
}
