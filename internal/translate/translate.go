// Package translate drives the chunked translation pipeline: entries are
// split into bounded chunks, each chunk is rendered into an oracle prompt,
// and the oracle's reply is reconciled back onto the original entries.
package translate

import (
	"errors"
	"fmt"
	"time"

	"github.com/psams/subtran/internal/logging"
	"github.com/psams/subtran/internal/oracle"
)

// chunk size must be at least 1
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

const DefaultChunkSize = 50

type Options struct {
	SourceLanguage string
	TargetLanguage string
	Instructions   string        // replaces the built-in instruction block when set
	ChunkSize      int           // entries per oracle request (default 50)
	Workers        int           // concurrent oracle calls; <= 1 means sequential
	Timeout        time.Duration // per-invocation deadline; 0 means none
}

// a translation run over one subtitle track
type Session struct {
	oracle oracle.Oracle
	opts   Options
	logger *logging.Logger
}

func NewSession(o oracle.Oracle, opts Options, logger *logging.Logger) (*Session, error) {
	if o == nil {
		return nil, fmt.Errorf("oracle is required")
	}
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.ChunkSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, opts.ChunkSize)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Session{oracle: o, opts: opts, logger: logger}, nil
}
