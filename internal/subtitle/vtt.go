package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// VTT carries no native index, so cues are renumbered sequentially from 1.
// Cue identifier lines, NOTE/STYLE blocks and cue-settings suffixes are
// accepted on input and never emitted on output.
func parseVTT(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	var current *Entry
	var textLines []string
	lineNum := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Index = len(entries) + 1
			current.Text = strings.Join(textLines, "\n")
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)

		if lineNum == 1 && strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}

		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if strings.Contains(line, "-->") {
			flush()

			start, end, ok := parseVTTTiming(line)
			if !ok {
				continue
			}
			current = &Entry{StartTime: start, EndTime: end}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT input: %w", err)
	}

	return entries, nil
}

func parseVTTTiming(line string) (TimeCode, TimeCode, bool) {
	left, right, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, false
	}

	start, err := ParseVTTTimeCode(left)
	if err != nil {
		return 0, 0, false
	}

	// cue settings follow the end time after a space, e.g. "position:50%"
	right = strings.TrimSpace(right)
	if i := strings.IndexAny(right, " \t"); i >= 0 {
		right = right[:i]
	}

	end, err := ParseVTTTimeCode(right)
	if err != nil {
		return 0, 0, false
	}

	return start, end, true
}

func renderVTT(entries []Entry) string {
	var sb strings.Builder

	sb.WriteString("WEBVTT\n\n")

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			entry.StartTime.VTT(),
			entry.EndTime.VTT()))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}
