package review

import (
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/reviewscribe/review-scribe/internal/ai"
)

// RenderTranscript flattens a conversation to text: one block per message, an
// upper-cased role label followed by the message's text content, blocks
// separated by a blank line. Image parts are omitted.
func RenderTranscript(turns []ai.ConversationTurn) string {
	var sb strings.Builder
	for _, turn := range turns {
		writeBlock(&sb, string(turn.UserMessage.Role), userText(turn.UserMessage))
		if turn.Response != nil {
			writeBlock(&sb, string(turn.Response.Role), assistantText(turn.Response))
		}
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, role string, text string) {
	fmt.Fprintf(sb, "%s: %s\n\n", strings.ToUpper(role), text)
}

// userText concatenates the text parts of a user message param
func userText(msg anthropic.MessageParam) string {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.OfText != nil {
			sb.WriteString(block.OfText.Text)
		}
	}
	return sb.String()
}

// assistantText concatenates the text blocks of an assistant response
func assistantText(msg *anthropic.Message) string {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String()
}

// WriteTranscript writes the rendered transcript to path, truncating any
// existing file
func WriteTranscript(path string, turns []ai.ConversationTurn) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create transcript file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(RenderTranscript(turns)); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close transcript file: %w", err)
	}
	return nil
}
