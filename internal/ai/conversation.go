package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Conversation is the ordered message sequence for one session, paired with
// the fixed system directive that accompanies every request. Turns are
// appended, never edited or removed.
type Conversation struct {
	sender MessageSender

	model        anthropic.Model
	systemPrompt string
	Turns        []ConversationTurn

	maxOutputTokens int64 // Maximum number of output tokens per response
}

func NewConversation(
	sender MessageSender,
	model anthropic.Model,
	maxOutputTokens int64,
	systemPrompt string,
) *Conversation {

	return &Conversation{
		sender: sender,

		model:        model,
		systemPrompt: systemPrompt,

		maxOutputTokens: maxOutputTokens,
	}
}

// ResumeConversation reconstructs a conversation from a stored history snapshot
func ResumeConversation(
	sender MessageSender,
	history ConversationHistory,
	model anthropic.Model,
	maxOutputTokens int64,
) *Conversation {
	return &Conversation{
		sender: sender,

		model:        model,
		systemPrompt: history.SystemPrompt,
		Turns:        history.Turns,

		maxOutputTokens: maxOutputTokens,
	}
}

// Send appends a user message built from the given content blocks, submits the
// entire history plus the system directive as one synchronous request, and
// records the response before returning it
func (c *Conversation) Send(ctx context.Context, messageContent ...anthropic.ContentBlockParamUnion) (*anthropic.Message, error) {
	c.Turns = append(c.Turns, ConversationTurn{
		UserMessage: anthropic.NewUserMessage(messageContent...),
	})

	messageParams := []anthropic.MessageParam{}
	for _, turn := range c.Turns {
		messageParams = append(messageParams, turn.UserMessage)
		if turn.Response != nil {
			messageParams = append(messageParams, turn.Response.ToParam())
		}
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxOutputTokens,
		System: []anthropic.TextBlockParam{
			{Text: c.systemPrompt},
		},
		Messages: messageParams,
	}

	response, err := c.sender.SendMessage(ctx, params)
	if err != nil {
		return nil, err
	}

	// Record the response
	c.Turns[len(c.Turns)-1].Response = &response

	return &response, nil
}

// MessageCount returns the number of messages in the conversation, counting
// user messages and recorded assistant responses separately
func (c *Conversation) MessageCount() int {
	n := 0
	for _, turn := range c.Turns {
		n++
		if turn.Response != nil {
			n++
		}
	}
	return n
}

// History returns a serializable conversation history
func (c *Conversation) History() ConversationHistory {
	return ConversationHistory{
		SystemPrompt: c.systemPrompt,
		Turns:        c.Turns,
	}
}

// FirstText returns the text of the first text content block of a response
func FirstText(msg *anthropic.Message) (string, error) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("response contains no text content")
}
