package translate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/psams/subtran/internal/subtitle"
)

var indexMarkerRegex = regexp.MustCompile(`\[(\d+)\]`)

// Reconcile matches the oracle's reply back onto the original chunk by
// index. Entries whose index is missing from the reply keep their original
// text; nothing is ever dropped or reordered. Reconciliation never fails:
// a malformed or empty reply simply yields zero matches.
func Reconcile(entries []subtitle.Entry, reply string) []subtitle.Entry {
	translations := parseReply(reply)

	out := make([]subtitle.Entry, len(entries))
	for i, entry := range entries {
		if text, ok := translations[entry.Index]; ok {
			out[i] = entry.WithText(text)
		} else {
			out[i] = entry
		}
	}

	return out
}

// Captured text runs from one bracketed index marker to the next, so an
// oracle that emits literal multi-line translations is still picked up.
// Duplicate indices: last occurrence wins.
func parseReply(reply string) map[int]string {
	matches := indexMarkerRegex.FindAllStringSubmatchIndex(reply, -1)
	translations := make(map[int]string, len(matches))

	for i, m := range matches {
		index, err := strconv.Atoi(reply[m[2]:m[3]])
		if err != nil {
			continue
		}

		end := len(reply)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		text := strings.TrimSpace(reply[m[1]:end])
		if text == "" {
			continue
		}

		translations[index] = unescapeBreaks(text)
	}

	return translations
}
