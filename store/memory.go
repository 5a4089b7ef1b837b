package store

import (
	"context"
	"sync"
)

// MemoryPromptStore is an in-process PromptStore for tests.
type MemoryPromptStore struct {
	mu     sync.RWMutex
	prompt string
	writes int
}

// NewMemoryPromptStore creates an empty in-memory store.
func NewMemoryPromptStore() *MemoryPromptStore {
	return &MemoryPromptStore{}
}

// Read returns the stored prompt.
func (s *MemoryPromptStore) Read(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt, nil
}

// Write replaces the stored prompt.
func (s *MemoryPromptStore) Write(ctx context.Context, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
	s.writes++
	return nil
}

// Writes reports how many times Write was called.
func (s *MemoryPromptStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Close is a no-op.
func (s *MemoryPromptStore) Close() error {
	return nil
}

var _ PromptStore = (*MemoryPromptStore)(nil)
