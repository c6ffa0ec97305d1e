package translate

import (
	"errors"
	"testing"

	"github.com/psams/subtran/internal/subtitle"
)

func makeEntries(n int) []subtitle.Entry {
	entries := make([]subtitle.Entry, n)
	for i := range entries {
		entries[i] = subtitle.Entry{
			Index: i + 1,
			Text:  "line",
		}
	}
	return entries
}

func TestChunkSizes(t *testing.T) {
	tests := []struct {
		name       string
		entries    int
		size       int
		wantChunks int
		wantLast   int
	}{
		{"empty", 0, 10, 0, 0},
		{"single chunk", 3, 50, 1, 3},
		{"exact fit", 10, 5, 2, 5},
		{"remainder", 11, 5, 3, 1},
		{"size one", 4, 1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Chunk(makeEntries(tt.entries), tt.size)
			if err != nil {
				t.Fatalf("Chunk error: %v", err)
			}
			if len(chunks) != tt.wantChunks {
				t.Fatalf("expected %d chunks, got %d", tt.wantChunks, len(chunks))
			}
			if tt.wantChunks > 0 {
				last := chunks[len(chunks)-1]
				if len(last) != tt.wantLast {
					t.Errorf("expected last chunk of %d, got %d", tt.wantLast, len(last))
				}
			}
		})
	}
}

// concatenating all chunks reproduces the original sequence exactly
func TestChunkCompleteness(t *testing.T) {
	entries := makeEntries(23)

	for size := 1; size <= 25; size++ {
		chunks, err := Chunk(entries, size)
		if err != nil {
			t.Fatalf("Chunk(size=%d) error: %v", size, err)
		}

		wantChunks := (len(entries) + size - 1) / size
		if len(chunks) != wantChunks {
			t.Errorf("size %d: expected %d chunks, got %d", size, wantChunks, len(chunks))
		}

		var flat []subtitle.Entry
		for _, chunk := range chunks {
			flat = append(flat, chunk...)
		}
		if len(flat) != len(entries) {
			t.Fatalf("size %d: expected %d entries, got %d", size, len(entries), len(flat))
		}
		for i := range entries {
			if flat[i] != entries[i] {
				t.Errorf("size %d: entry %d changed", size, i)
			}
		}
	}
}

func TestChunkRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		_, err := Chunk(makeEntries(3), size)
		if !errors.Is(err, ErrInvalidChunkSize) {
			t.Errorf("Chunk(size=%d) error = %v, want ErrInvalidChunkSize", size, err)
		}
	}
}
