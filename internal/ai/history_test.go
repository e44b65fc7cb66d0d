package ai

import (
	"path/filepath"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_GetMissingKey(t *testing.T) {
	store := NewFileSystemConversationHistoryStore(t.TempDir())

	value, err := store.Get("no-such-session")

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestHistoryStore_SetGetRoundTrip(t *testing.T) {
	store := NewFileSystemConversationHistoryStore(t.TempDir())

	history := ConversationHistory{
		SystemPrompt: "sys",
		Turns: []ConversationTurn{
			{UserMessage: anthropic.NewUserMessage(anthropic.NewTextBlock("hello"))},
		},
	}
	require.NoError(t, store.Set("session-1", history))

	loaded, err := store.Get("session-1")

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "sys", loaded.SystemPrompt)
	require.Len(t, loaded.Turns, 1)
}

func TestHistoryStore_SetCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "history")
	store := NewFileSystemConversationHistoryStore(dir)

	require.NoError(t, store.Set("session-1", ConversationHistory{SystemPrompt: "sys"}))

	loaded, err := store.Get("session-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
}

func TestHistoryStore_Delete(t *testing.T) {
	store := NewFileSystemConversationHistoryStore(t.TempDir())

	require.NoError(t, store.Set("session-1", ConversationHistory{SystemPrompt: "sys"}))
	require.NoError(t, store.Delete("session-1"))

	value, err := store.Get("session-1")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestHistoryStore_DeleteMissingKey(t *testing.T) {
	store := NewFileSystemConversationHistoryStore(t.TempDir())

	err := store.Delete("no-such-session")

	require.Error(t, err)
}
