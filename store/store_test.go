package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPromptStore(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisPromptStore(ctx, RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "missing key should read as empty prompt")

	require.NoError(t, s.Write(ctx, "[CHARACTER]\nИмя: Ария\n[/CHARACTER]"))

	got, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[CHARACTER]\nИмя: Ария\n[/CHARACTER]", got)

	// Overwrite replaces, never appends.
	require.NoError(t, s.Write(ctx, "новый промпт"))
	got, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "новый промпт", got)
}

func TestRedisPromptStoreKeyPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisPromptStore(ctx, RedisConfig{Addr: mr.Addr(), Prefix: "bot42"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, "x"))
	assert.True(t, mr.Exists("bot42:prompt"))
}

func TestFilePromptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	s := NewFilePromptStore(path)
	ctx := context.Background()

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "missing file should read as empty prompt")

	require.NoError(t, s.Write(ctx, "базовый промпт\n"))

	got, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "базовый промпт", got, "read should trim trailing whitespace")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "базовый промпт\n", string(data))
}

func TestFilePromptStoreWriteError(t *testing.T) {
	s := NewFilePromptStore(filepath.Join(t.TempDir(), "no", "such", "dir", "prompt.txt"))
	err := s.Write(context.Background(), "x")
	assert.Error(t, err)
}

func TestMemoryPromptStoreCountsWrites(t *testing.T) {
	s := NewMemoryPromptStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "a"))
	require.NoError(t, s.Write(ctx, "b"))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.Equal(t, 2, s.Writes())
}
