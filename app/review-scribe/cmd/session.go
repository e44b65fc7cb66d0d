package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reviewscribe/review-scribe/internal/ai"
	"github.com/reviewscribe/review-scribe/internal/console"
	"github.com/reviewscribe/review-scribe/internal/review"
	"github.com/reviewscribe/review-scribe/internal/telemetry"
)

func runSession(cmd *cobra.Command, args []string) error {
	ctx := setupContext()

	telemetryProvider, err := createTelemetryProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryProvider.Shutdown(ctx); err != nil {
			log.Printf("Failed to shut down telemetry provider: %v", err)
		}
	}()

	client := createAnthropicClient(config.AnthropicAPIKey)
	sender := ai.NewSynchronousMessageSender(client)

	markdown := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	printer := console.NewPrinter(os.Stdout, markdown)

	model := anthropic.Model(config.Model)

	var historyStore review.HistoryStore
	var fsStore ai.FileSystemConversationHistoryStore
	if config.HistoryDir != "" {
		fsStore = ai.NewFileSystemConversationHistoryStore(config.HistoryDir)
		historyStore = fsStore
	}

	var conv *ai.Conversation
	var sessionID string

	if config.ResumeSessionID != "" {
		if config.HistoryDir == "" {
			return fmt.Errorf("--resume requires --history-dir")
		}
		snapshot, err := fsStore.Get(config.ResumeSessionID)
		if err != nil {
			return fmt.Errorf("failed to load conversation snapshot: %w", err)
		}
		if snapshot == nil {
			return fmt.Errorf("no conversation snapshot found for session '%s'", config.ResumeSessionID)
		}
		conv = ai.ResumeConversation(sender, *snapshot, model, config.MaxOutputTokens)
		sessionID = config.ResumeSessionID
		log.Printf("Resumed session %s with %d messages", sessionID, conv.MessageCount())
	} else {
		conv = ai.NewConversation(sender, model, config.MaxOutputTokens, ai.SystemPrompt())
		sessionID = telemetry.NewSessionID()
	}

	session := review.NewSession(review.SessionConfig{
		Conversation:   conv,
		Input:          os.Stdin,
		Printer:        printer,
		Tracer:         telemetryProvider.Tracer(),
		History:        historyStore,
		ID:             sessionID,
		TranscriptPath: config.TranscriptPath,
	})

	// The content of the next user message; nil when resuming, in which case
	// the session starts by soliciting operator input
	var pending []anthropic.ContentBlockParamUnion

	if config.ResumeSessionID == "" {
		printer.Banner()
		initialReview, err := session.PromptInitialReview()
		if err != nil {
			return err
		}

		// An unreadable image aborts here, before any remote request is made
		images, err := review.CollectImages(config.ImagesDir)
		if err != nil {
			return err
		}
		if len(images) > 0 {
			log.Printf("Attaching %d product image(s) from %s", len(images), config.ImagesDir)
		}

		pending = review.InitialMessage(initialReview, images)
		printer.SessionStart()
	} else {
		// Re-display the last reply so the operator can pick up where they left off
		if last := lastResponse(conv); last != nil {
			if reply, err := ai.FirstText(last); err == nil {
				printer.AssistantReply(reply)
			}
		}
	}

	return session.Run(ctx, pending)
}

func lastResponse(conv *ai.Conversation) *anthropic.Message {
	if len(conv.Turns) == 0 {
		return nil
	}
	return conv.Turns[len(conv.Turns)-1].Response
}
