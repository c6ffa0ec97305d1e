package translate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/psams/subtran/internal/oracle"
	"github.com/psams/subtran/internal/subtitle"
)

const detectSampleSize = 5

// DetectLanguage sends a small sample of entry text to the oracle with a
// constrained prompt and parses a short language code from the reply.
func DetectLanguage(ctx context.Context, o oracle.Oracle, entries []subtitle.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no entries to sample")
	}

	sample := entries
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}

	var sb strings.Builder
	sb.WriteString("Identify the language of the following subtitle lines.\n")
	sb.WriteString("Reply with only the ISO 639-1 two-letter code, nothing else.\n\n")
	for _, entry := range sample {
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}

	reply, err := o.Invoke(ctx, sb.String())
	if err != nil {
		return "", err
	}

	code := strings.ToLower(strings.TrimSpace(reply))
	if fields := strings.Fields(code); len(fields) > 0 {
		code = fields[0]
	}
	code = strings.Trim(code, `."'`)

	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("oracle returned unrecognized language code %q: %w", code, err)
	}

	base, _ := tag.Base()
	return base.String(), nil
}
