// Package store provides file-backed prompt storage
package store

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FilePromptStore implements PromptStore on top of a single text file,
// the classic prompt.txt deployment.
type FilePromptStore struct {
	path string
}

// NewFilePromptStore creates a file-backed prompt store. The file does
// not have to exist yet; a missing file reads as an empty prompt.
func NewFilePromptStore(path string) *FilePromptStore {
	return &FilePromptStore{path: path}
}

// Read returns the file contents, trimmed.
func (s *FilePromptStore) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read prompt file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write replaces the file contents.
func (s *FilePromptStore) Write(ctx context.Context, prompt string) error {
	if err := os.WriteFile(s.path, []byte(prompt), 0644); err != nil {
		return fmt.Errorf("write prompt file %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for files.
func (s *FilePromptStore) Close() error {
	return nil
}

var _ PromptStore = (*FilePromptStore)(nil)
