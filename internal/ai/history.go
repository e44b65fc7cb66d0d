package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
)

// FileSystemConversationHistoryStore persists conversation history snapshots
// as JSON files under a directory, one file per session key
type FileSystemConversationHistoryStore struct {
	dir string // The directory keys will be relative to
}

func NewFileSystemConversationHistoryStore(dir string) FileSystemConversationHistoryStore {
	return FileSystemConversationHistoryStore{
		dir: dir,
	}
}

func (fschs FileSystemConversationHistoryStore) Get(key string) (*ConversationHistory, error) {
	path := path.Join(fschs.dir, key)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// The file doesn't exist so nothing is stored at this key
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var value ConversationHistory
	err = json.Unmarshal(b, &value)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}
	return &value, nil
}

func (fschs FileSystemConversationHistoryStore) Set(key string, value ConversationHistory) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}
	if err := os.MkdirAll(fschs.dir, 0777); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	path := path.Join(fschs.dir, key)
	err = os.WriteFile(path, b, 0666)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (fschs FileSystemConversationHistoryStore) Delete(key string) error {
	path := path.Join(fschs.dir, key)
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
