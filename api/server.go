package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"readright/config"
	"readright/extract"
	"readright/pipeline"
)

// StatusFetcher polls the execution status of a queued worker.
type StatusFetcher interface {
	GetExecution(ctx context.Context, executionID string) (map[string]any, error)
}

// Deps wires the controllers to their collaborators. Persist and Status are
// factories because Appwrite clients carry the per-request API key from the
// x-appwrite-key header.
type Deps struct {
	Cfg       *config.Config
	Log       *zap.SugaredLogger
	Extractor extract.Extractor
	Writer    pipeline.Writer
	Runner    *pipeline.Runner
	Persist   func(apiKey string) pipeline.Persister
	Status    func(apiKey string) StatusFetcher
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())

	RegisterHealthRoutes(r)
	RegisterProcessRoutes(r, d)
	return r
}

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
