package subtitle

import (
	"errors"
)

var (
	// a timestamp field failed to parse
	ErrFormat = errors.New("malformed timestamp")

	// file extension is not a recognized subtitle format
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime TimeCode
	EndTime   TimeCode
	Text      string
}

// returns a copy of the entry with only the text replaced
func (e Entry) WithText(text string) Entry {
	e.Text = text
	return e
}

// represents complete subtitle track
type Subtitle struct {
	Entries []Entry
	Format  Format
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)
