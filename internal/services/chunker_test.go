package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	chunker := NewTextChunker()

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, chunker.ChunkText("", 1000, 100))
	})

	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := chunker.ChunkText("A short job description.", 1000, 100)
		require.Len(t, chunks, 1)
		assert.Equal(t, "A short job description.", chunks[0])
	})

	t.Run("paragraphs split into multiple chunks", func(t *testing.T) {
		paraA := strings.Repeat("alpha ", 20)
		paraB := strings.Repeat("beta ", 20)
		text := paraA + "\n\n" + paraB

		chunks := chunker.ChunkText(text, 120, 0)
		require.Len(t, chunks, 2)
		assert.Contains(t, chunks[0], "alpha")
		assert.Contains(t, chunks[1], "beta")
	})

	t.Run("overlap carries trailing text forward", func(t *testing.T) {
		paraA := strings.Repeat("alpha ", 20)
		paraB := strings.Repeat("beta ", 20)
		text := paraA + "\n\n" + paraB

		chunks := chunker.ChunkText(text, 150, 20)
		require.Len(t, chunks, 2)
		carried := lastNChars(chunks[0], 20)
		assert.True(t, strings.HasPrefix(chunks[1], carried))
	})

	t.Run("no empty chunks", func(t *testing.T) {
		chunks := chunker.ChunkText("one\n\n\n\ntwo\n\nthree", 1000, 0)
		for _, chunk := range chunks {
			assert.NotEmpty(t, strings.TrimSpace(chunk))
		}
	})
}
