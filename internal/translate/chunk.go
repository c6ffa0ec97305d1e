package translate

import (
	"fmt"

	"github.com/psams/subtran/internal/subtitle"
)

// splits entries into contiguous chunks of at most size entries.
// Concatenating the chunks in order reproduces the input exactly.
func Chunk(entries []subtitle.Entry, size int) ([][]subtitle.Entry, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}

	var chunks [][]subtitle.Entry
	for i := 0; i < len(entries); i += size {
		end := i + size
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[i:end])
	}

	return chunks, nil
}
