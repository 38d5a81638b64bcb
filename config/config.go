package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage backend identifiers for the generated audio artifact.
const (
	StorageAppwrite = "appwrite"
	StorageS3       = "s3"
)

// LLM provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderCohere = "cohere"
)

const defaultAppwriteEndpoint = "https://fra.cloud.appwrite.io/v1"

// Config holds all process-level settings. It is loaded once at startup and
// reused across requests; the only per-request credential is the Appwrite API
// key arriving on the x-appwrite-key header.
type Config struct {
	Port string

	// Appwrite platform identifiers.
	AppwriteEndpoint string
	ProjectID        string
	FunctionID       string
	BucketID         string
	DatabaseID       string
	TableID          string

	// Article extraction. When DiffbotToken is empty, extraction falls back
	// to local readability parsing.
	DiffbotToken string

	// LLM settings. Models are ordered most to least capable; the first is
	// the primary model used for title generation and unbounded reasoning.
	LLMProvider string
	GeminiKey   string
	CohereKey   string
	Models      []string

	// Speech synthesis.
	TTSServiceURL string
	TTSVoice      string
	ScratchPath   string

	// Audio storage backend selection.
	StorageBackend string
	S3Bucket       string
	S3Region       string
}

var defaultGeminiModels = []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.5-flash-lite"}

var defaultCohereModels = []string{"command-a-03-2025", "command-r-plus", "command-r"}

// Load reads configuration from the environment. Platform identifiers are
// required; everything else has a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		AppwriteEndpoint: getenv("APPWRITE_ENDPOINT", defaultAppwriteEndpoint),
		ProjectID:        os.Getenv("APPWRITE_FUNCTION_PROJECT_ID"),
		FunctionID:       os.Getenv("APPWRITE_FUNCTION_ID"),
		BucketID:         os.Getenv("APPWRITE_BUCKET_ID"),
		DatabaseID:       os.Getenv("APPWRITE_DATABASE_ID"),
		TableID:          os.Getenv("APPWRITE_TABLE_ID"),
		DiffbotToken:     os.Getenv("DIFFBOT_TOKEN"),
		LLMProvider:      getenv("LLM_PROVIDER", ProviderGemini),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		CohereKey:        os.Getenv("COHERE_API_KEY"),
		TTSServiceURL:    os.Getenv("TTS_SERVICE_URL"),
		TTSVoice:         getenv("TTS_VOICE", "en-GB-LibbyNeural"),
		ScratchPath:      getenv("AUDIO_SCRATCH_PATH", "/tmp/audio.mp3"),
		StorageBackend:   getenv("STORAGE_BACKEND", StorageAppwrite),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3Region:         os.Getenv("S3_REGION"),
	}

	if v := os.Getenv("LLM_MODELS"); v != "" {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.Models = append(cfg.Models, m)
			}
		}
	}
	if len(cfg.Models) == 0 {
		if cfg.LLMProvider == ProviderCohere {
			cfg.Models = defaultCohereModels
		} else {
			cfg.Models = defaultGeminiModels
		}
	}

	for name, v := range map[string]string{
		"APPWRITE_FUNCTION_PROJECT_ID": cfg.ProjectID,
		"APPWRITE_FUNCTION_ID":         cfg.FunctionID,
		"APPWRITE_BUCKET_ID":           cfg.BucketID,
		"APPWRITE_DATABASE_ID":         cfg.DatabaseID,
		"APPWRITE_TABLE_ID":            cfg.TableID,
	} {
		if v == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	switch cfg.StorageBackend {
	case StorageAppwrite:
	case StorageS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND=s3 requires S3_BUCKET")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
