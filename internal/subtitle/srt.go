package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parsing is best-effort: a block that doesn't match the
// index/timing/text shape is skipped rather than failing the file.
func parseSRT(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	var block []string
	lineNum := 0

	flush := func() {
		if entry, ok := parseSRTBlock(block); ok {
			entries = append(entries, entry)
		}
		block = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		block = append(block, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT input: %w", err)
	}

	return entries, nil
}

// index line, timing line, then one or more text lines
func parseSRTBlock(lines []string) (Entry, bool) {
	if len(lines) < 3 {
		return Entry{}, false
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || index < 1 {
		return Entry{}, false
	}

	start, end, ok := parseSRTTiming(lines[1])
	if !ok {
		return Entry{}, false
	}

	text := strings.TrimSpace(strings.Join(lines[2:], "\n"))
	if text == "" {
		return Entry{}, false
	}

	return Entry{
		Index:     index,
		StartTime: start,
		EndTime:   end,
		Text:      text,
	}, true
}

func parseSRTTiming(line string) (TimeCode, TimeCode, bool) {
	left, right, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, false
	}

	start, err := ParseSRTTimeCode(left)
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseSRTTimeCode(right)
	if err != nil {
		return 0, 0, false
	}

	return start, end, true
}

// renders entries as SRT, preserving each entry's own index
func renderSRT(entries []Entry) string {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(strconv.Itoa(entry.Index))
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			entry.StartTime.SRT(),
			entry.EndTime.SRT()))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
