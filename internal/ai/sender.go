package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/anthropics/anthropic-sdk-go"
)

// MessageSender is the narrow boundary to the remote model. Production code
// uses SynchronousMessageSender; tests substitute a fake.
type MessageSender interface {
	SendMessage(ctx context.Context, params anthropic.MessageNewParams) (anthropic.Message, error)
}

// SynchronousMessageSender submits one request and blocks until the complete
// response is available. No streaming, no retries.
type SynchronousMessageSender struct {
	client anthropic.Client
}

func NewSynchronousMessageSender(client anthropic.Client) SynchronousMessageSender {
	return SynchronousMessageSender{
		client: client,
	}
}

func (sms SynchronousMessageSender) SendMessage(ctx context.Context, params anthropic.MessageNewParams) (anthropic.Message, error) {
	response, err := sms.client.Messages.New(ctx, params)
	if err != nil {
		return anthropic.Message{}, fmt.Errorf("failed to send message: %w", err)
	}
	if response.StopReason == "" {
		b, err := json.Marshal(response)
		if err != nil {
			log.Printf("error while marshalling corrupt message for inspection: %v", err)
		}
		return anthropic.Message{}, fmt.Errorf("malformed message: %v", string(b))
	}

	return *response, nil
}
