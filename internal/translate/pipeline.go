package translate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/psams/subtran/internal/subtitle"
)

// Translate runs the full pipeline over the given entries and returns a new
// slice with translated text, same order and timings. Chunks are dispatched
// to the oracle one at a time; the first oracle failure aborts the run.
// With Options.Workers > 1 chunks are translated concurrently and
// reassembled in chunk order.
func (s *Session) Translate(ctx context.Context, entries []subtitle.Entry) ([]subtitle.Entry, error) {
	if len(entries) == 0 {
		return []subtitle.Entry{}, nil
	}

	chunks, err := Chunk(entries, s.opts.ChunkSize)
	if err != nil {
		return nil, err
	}

	if s.opts.Workers > 1 && len(chunks) > 1 {
		return s.translateConcurrent(ctx, chunks)
	}

	out := make([]subtitle.Entry, 0, len(entries))
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.logger.Debugw("translating chunk",
			"chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)),
			"entries", len(chunk),
		)

		translated, err := s.translateChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d failed: %w", i+1, len(chunks), err)
		}
		out = append(out, translated...)
	}

	return out, nil
}

func (s *Session) translateChunk(ctx context.Context, chunk []subtitle.Entry) ([]subtitle.Entry, error) {
	prompt := BuildPrompt(s.opts, chunk)

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	reply, err := s.oracle.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return Reconcile(chunk, reply), nil
}

// Chunks are fully independent, so workers pull chunk positions from a
// shared queue and results land in a position-indexed buffer; output order
// never depends on completion order.
func (s *Session) translateConcurrent(parent context.Context, chunks [][]subtitle.Entry) ([]subtitle.Entry, error) {
	workers := s.opts.Workers
	if workers > len(chunks) {
		workers = len(chunks)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type chunkResult struct {
		Index   int
		Entries []subtitle.Entry
		Error   error
	}

	workChan := make(chan int)
	resultChan := make(chan chunkResult, len(chunks))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case chunkIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					translated, err := s.translateChunk(ctx, chunks[chunkIdx])
					if err != nil {
						cancel()
					}
					resultChan <- chunkResult{
						Index:   chunkIdx,
						Entries: translated,
						Error:   err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range chunks {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([][]subtitle.Entry, len(chunks))
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.Error != nil {
			cancel()
			// siblings canceled after the triggering failure must not
			// mask the originating diagnostic
			if firstErr == nil ||
				(errors.Is(firstErr, context.Canceled) &&
					!errors.Is(result.Error, context.Canceled)) {
				firstErr = fmt.Errorf(
					"chunk %d/%d failed: %w",
					result.Index+1,
					len(chunks),
					result.Error,
				)
			}
			continue
		}
		results[result.Index] = result.Entries
		completed++
	}

	if firstErr != nil {
		return nil, firstErr
	}

	// cancellation can stop the feeder before every chunk is dispatched;
	// a partial result must never pass for a complete one
	if completed < len(chunks) {
		if err := parent.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf(
			"translation aborted: %d of %d chunks incomplete",
			len(chunks)-completed,
			len(chunks),
		)
	}

	var out []subtitle.Entry
	for _, translated := range results {
		out = append(out, translated...)
	}

	return out, nil
}
