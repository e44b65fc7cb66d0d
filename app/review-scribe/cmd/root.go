package cmd

import (
	"log"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "review-scribe",
	Short: "Interactive assistant that turns product feedback into polished reviews",
	Long: `Review Scribe collects an initial product experience, along with any photos
in the local images directory, and refines it into a high-quality marketplace
review through a multi-turn conversation with Claude. Type 'exit' to end the
session and save the transcript.`,
	PreRun: loadRootConfig,
	RunE:   runSession,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(_ *cobra.Command, _ []string) {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	loadFromEnv(&config.AnthropicAPIKey, "ANTHROPIC_API_KEY")
}

func init() {
	rootCmd.Flags().StringVar(&config.ImagesDir, "images-dir", "images", "Directory scanned non-recursively for product images")
	rootCmd.Flags().StringVar(&config.TranscriptPath, "output", "amazon_review_conversation.txt", "File the conversation transcript is written to")
	rootCmd.Flags().StringVar(&config.Model, "model", string(anthropic.ModelClaude3_7SonnetLatest), "Model to converse with")
	rootCmd.Flags().Int64Var(&config.MaxOutputTokens, "max-tokens", 4000, "Maximum output tokens per response")
	rootCmd.Flags().StringVar(&config.HistoryDir, "history-dir", "", "Directory for resumable conversation snapshots (disabled when empty)")
	rootCmd.Flags().StringVar(&config.ResumeSessionID, "resume", "", "Session ID of a conversation snapshot to resume")
	rootCmd.Flags().BoolVar(&config.TelemetryEnabled, "telemetry", false, "Enable OTLP trace export")
	rootCmd.Flags().StringVar(&config.OTLPEndpoint, "otlp-endpoint", "localhost:4318", "OTLP/HTTP endpoint for trace export")
}
