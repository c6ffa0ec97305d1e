package translate

import (
	"fmt"
	"strings"

	"github.com/psams/subtran/internal/subtitle"
)

const defaultInstructions = "You are a professional subtitle translator. " +
	"Preserve the tone and register of the dialogue, keep translations " +
	"concise enough to read as subtitles, and leave any formatting tags " +
	"(like <i> or {\\an8}) unchanged."

// BuildPrompt renders one chunk into an oracle request. Each entry occupies
// exactly one line in the wire form "[index] text"; internal line breaks are
// escaped to a literal \n, which the reconciler unescapes on the way back.
func BuildPrompt(opts Options, entries []subtitle.Entry) string {
	var sb strings.Builder

	if opts.Instructions != "" {
		sb.WriteString(opts.Instructions)
	} else {
		sb.WriteString(defaultInstructions)
	}
	sb.WriteString("\n\n")

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s subtitle lines to %s.\n\n",
			opts.SourceLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following subtitle lines to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Reply with exactly one line per entry, in the form [<index>] <text>.\n")
	sb.WriteString("2. Keep the bracketed index of each entry exactly as given.\n")
	sb.WriteString("3. A literal \\n marks a line break inside an entry; keep it where a break belongs.\n")
	sb.WriteString("4. Do not add any explanation, numbering, or markdown formatting.\n\n")

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", entry.Index, escapeBreaks(entry.Text)))
	}

	return sb.String()
}

func escapeBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

func unescapeBreaks(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
