package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"readright/api"
	"readright/appwrite"
	"readright/config"
	"readright/extract"
	"readright/llm"
	"readright/pipeline"
	"readright/store"
	"readright/tts"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	deps, err := buildDeps(context.Background(), cfg, sugar)
	if err != nil {
		sugar.Fatalw("startup failed", "error", err)
	}

	r := api.NewRouter(deps)
	addr := ":" + cfg.Port
	sugar.Infow("starting readright server", "addr", addr,
		"llm_provider", cfg.LLMProvider, "models", cfg.Models,
		"storage_backend", cfg.StorageBackend)

	if err := http.ListenAndServe(addr, r); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
}

// buildDeps initializes the process-lifetime collaborators once at cold start;
// per-request Appwrite clients are built by the Persist/Status factories from
// the caller's API key.
func buildDeps(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) (api.Deps, error) {
	var gen llm.Generator
	switch cfg.LLMProvider {
	case config.ProviderCohere:
		gen = llm.NewCohereClient(cfg.CohereKey)
	default:
		gen = llm.NewGeminiClient(cfg.GeminiKey)
	}
	writer := llm.NewWriter(gen, cfg.Models, sugar)

	var extractor extract.Extractor
	if cfg.DiffbotToken != "" {
		extractor = extract.NewDiffbotClient(cfg.DiffbotToken)
	} else {
		sugar.Infow("no Diffbot token configured, using local readability extraction")
		extractor = extract.NewReadabilityExtractor()
	}

	synth := tts.NewClient(cfg.TTSServiceURL, cfg.TTSVoice, cfg.ScratchPath)
	runner := pipeline.NewRunner(writer, synth, cfg.ScratchPath, sugar)

	var s3Audio *store.S3Audio
	if cfg.StorageBackend == config.StorageS3 {
		var err error
		s3Audio, err = store.NewS3Audio(ctx, cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			return api.Deps{}, err
		}
	}

	persist := func(apiKey string) pipeline.Persister {
		client := appwrite.New(cfg.AppwriteEndpoint, cfg.ProjectID, apiKey)
		var audio store.AudioStore = store.NewAppwriteAudio(client, cfg.BucketID)
		if s3Audio != nil {
			audio = s3Audio
		}
		return store.Persister{
			Audio: audio,
			Rows:  store.NewAppwriteRows(client, cfg.DatabaseID, cfg.TableID),
		}
	}

	status := func(apiKey string) api.StatusFetcher {
		client := appwrite.New(cfg.AppwriteEndpoint, cfg.ProjectID, apiKey)
		return appwrite.NewFunctions(client, cfg.FunctionID)
	}

	return api.Deps{
		Cfg:       cfg,
		Log:       sugar,
		Extractor: extractor,
		Writer:    writer,
		Runner:    runner,
		Persist:   persist,
		Status:    status,
	}, nil
}
