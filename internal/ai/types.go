// Package ai manages the conversation with the hosted model: the ordered
// message history, the synchronous sending boundary, and resumable history
// snapshots.
package ai

import "github.com/anthropics/anthropic-sdk-go"

// ConversationTurn is a pair of messages: a user message, and an optional assistant response
type ConversationTurn struct {
	UserMessage anthropic.MessageParam
	Response    *anthropic.Message // May be nil
}

// ConversationHistory contains a serializable and resumable snapshot of a Conversation
type ConversationHistory struct {
	SystemPrompt string             `json:"systemPrompt"`
	Turns        []ConversationTurn `json:"turns"`
}
