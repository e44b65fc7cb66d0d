package cmd

import (
	"log"
	"os"
)

var config = Config{}

type Config struct {
	// Authentication
	AnthropicAPIKey string

	// Conversation options
	Model           string
	MaxOutputTokens int64
	ImagesDir       string
	TranscriptPath  string

	// Snapshot options
	HistoryDir      string
	ResumeSessionID string

	// Telemetry config
	TelemetryEnabled bool
	OTLPEndpoint     string
}

func loadFromEnv(dest *string, key string) {
	parseFromEnv(dest, key, func(v string) (string, error) { return v, nil })
}

func parseFromEnv[T any](dest *T, key string, parseFn func(string) (T, error)) {
	str := os.Getenv(key)
	if str == "" {
		log.Fatalf("%s not set", key)
	}
	v, err := parseFn(str)
	if err != nil {
		log.Fatalf("failed to parse environment variable '%s' value '%s' as '%T': %v", key, str, *dest, err)
	}
	*dest = v
}
