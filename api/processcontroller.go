package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"readright/types"
)

const apiKeyHeader = "x-appwrite-key"

// RegisterProcessRoutes registers the content-processing endpoints on the
// function root, mirroring the serverless dispatch: OPTIONS preflight, GET
// status poll, POST generation pipeline.
func RegisterProcessRoutes(r *gin.Engine, d Deps) {
	// Preflight is fully answered by the CORS middleware; the route only
	// has to exist.
	r.OPTIONS("/", func(c *gin.Context) {})
	r.GET("/", handleGetStatus(d))
	r.POST("/", handleProcess(d))
}

// handleProcess runs the full pipeline for one article. Responses carry no
// error detail: 400 on missing input, 404 on failed extraction, opaque 500
// on anything else.
func handleProcess(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil || (req.Text == "" && req.URL == "") {
			c.Status(http.StatusBadRequest)
			return
		}

		ctx := c.Request.Context()
		article, ok := acquire(ctx, c, d, req)
		if !ok {
			return
		}

		persist := d.Persist(c.GetHeader(apiKeyHeader))
		id, err := d.Runner.Run(ctx, article, req.DocID, persist)
		if err != nil {
			d.Log.Errorw("processing pipeline failed", "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// acquire resolves the article content from raw text or a URL. It writes the
// error response itself and reports success through the boolean.
func acquire(ctx context.Context, c *gin.Context, d Deps, req types.ProcessRequest) (types.ArticleContent, bool) {
	if req.Text != "" {
		title, err := d.Writer.Title(ctx, req.Text)
		if err != nil {
			d.Log.Errorw("title generation failed", "error", err)
			c.Status(http.StatusInternalServerError)
			return types.ArticleContent{}, false
		}
		return types.ArticleContent{Text: req.Text, Title: title}, true
	}

	article, err := d.Extractor.Extract(ctx, req.URL)
	if err != nil || article.Text == "" {
		// Extraction failures of every kind present as "no article
		// here", matching the empty-result contract of the extractor.
		if err != nil {
			d.Log.Warnw("article extraction failed", "url", req.URL, "error", err)
		}
		c.Status(http.StatusNotFound)
		return types.ArticleContent{}, false
	}
	return article, true
}
