package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// resolves the subtitle format from a file extension (case-insensitive)
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// parses subtitle data in the given format
func Parse(r io.Reader, format Format) (*Subtitle, error) {
	var entries []Entry
	var err error

	switch format {
	case FormatSRT:
		entries, err = parseSRT(r)
	case FormatVTT:
		entries, err = parseVTT(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return &Subtitle{Entries: entries, Format: format}, nil
}

// opens and parses a subtitle file, picking the format from the extension
func Open(path string) (*Subtitle, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file, format)
}

// serializes the subtitle back to its textual form
func (s *Subtitle) Render() string {
	switch s.Format {
	case FormatVTT:
		return renderVTT(s.Entries)
	default:
		return renderSRT(s.Entries)
	}
}

// writes the subtitle to a file in its own format
func (s *Subtitle) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.Render()), 0644)
}

// default output path for a translated file: the language code is
// inserted before the extension, e.g. movie.srt -> movie.es.srt
func OutputPath(path, lang string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s.%s%s", base, lang, ext)
}
