package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reviewscribe/review-scribe/internal/ai"
	"github.com/reviewscribe/review-scribe/internal/console"
)

// sentinel is the reserved input keyword that ends the session, matched
// case-insensitively
const sentinel = "exit"

// HistoryStore persists resumable conversation snapshots between turns
type HistoryStore interface {
	Set(key string, value ai.ConversationHistory) error
}

// Session owns the conversation for the whole run. It alternates between
// awaiting the model's reply and awaiting operator input, and persists the
// transcript when the operator ends the session.
type Session struct {
	conv    *ai.Conversation
	input   *bufio.Scanner
	printer *console.Printer
	tracer  trace.Tracer
	history HistoryStore // May be nil, in which case snapshots are skipped

	id             string
	transcriptPath string
}

// SessionConfig carries the collaborators a Session needs
type SessionConfig struct {
	Conversation   *ai.Conversation
	Input          io.Reader
	Printer        *console.Printer
	Tracer         trace.Tracer
	History        HistoryStore
	ID             string
	TranscriptPath string
}

func NewSession(cfg SessionConfig) *Session {
	scanner := bufio.NewScanner(cfg.Input)
	// Allow operator lines well beyond the scanner's default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Session{
		conv:    cfg.Conversation,
		input:   scanner,
		printer: cfg.Printer,
		tracer:  cfg.Tracer,
		history: cfg.History,

		id:             cfg.ID,
		transcriptPath: cfg.TranscriptPath,
	}
}

// PromptInitialReview asks the operator for their initial product experience
// and reads one line of free text
func (s *Session) PromptInitialReview() (string, error) {
	s.printer.InitialReviewPrompt()
	if !s.input.Scan() {
		if err := s.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read initial review: %w", err)
		}
		return "", fmt.Errorf("no initial review provided")
	}
	return s.input.Text(), nil
}

// Run drives the exchange to completion. The content of the next user message
// to submit is passed in pending; when resuming a conversation whose last
// reply has already been shown, pending may be nil and the loop starts by
// soliciting operator input instead.
func (s *Session) Run(ctx context.Context, pending []anthropic.ContentBlockParamUnion) error {
	ctx, span := s.tracer.Start(ctx, "conversation",
		trace.WithAttributes(attribute.String("session.id", s.id)))
	defer span.End()

	for {
		if pending != nil {
			reply, err := s.submit(ctx, pending)
			if err != nil {
				return err
			}
			s.printer.AssistantReply(reply)
		}

		line, err := s.readLine()
		if err != nil {
			return err
		}
		if strings.EqualFold(line, sentinel) {
			break
		}
		pending = []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(line)}
	}

	if err := WriteTranscript(s.transcriptPath, s.conv.Turns); err != nil {
		return err
	}
	s.printer.Saved(s.transcriptPath)
	return nil
}

// submit sends the pending user message as part of the full conversation and
// returns the assistant's utterance
func (s *Session) submit(ctx context.Context, content []anthropic.ContentBlockParamUnion) (string, error) {
	ctx, span := s.tracer.Start(ctx, "turn",
		trace.WithAttributes(attribute.Int("turn.index", len(s.conv.Turns))))
	defer span.End()

	response, err := s.conv.Send(ctx, content...)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("conversation request failed: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("tokens.input", response.Usage.InputTokens),
		attribute.Int64("tokens.output", response.Usage.OutputTokens),
	)

	if s.history != nil {
		if err := s.history.Set(s.id, s.conv.History()); err != nil {
			log.Printf("Warning: failed to save conversation snapshot: %v", err)
		}
	}

	return ai.FirstText(response)
}

func (s *Session) readLine() (string, error) {
	s.printer.UserPrompt()
	if !s.input.Scan() {
		if err := s.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		// End of input ends the session the same way the sentinel does
		return sentinel, nil
	}
	return s.input.Text(), nil
}
