package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/psams/subtran/internal/oracle"
	"github.com/psams/subtran/internal/subtitle"
)

func TestDetectLanguage(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 1, Text: "Hola, ¿cómo estás?"},
		{Index: 2, Text: "Muy bien, gracias."},
	}

	o := &fakeOracle{reply: func(prompt string) (string, error) {
		if !strings.Contains(prompt, "Hola, ¿cómo estás?") {
			t.Errorf("prompt missing sample text:\n%s", prompt)
		}
		return "es", nil
	}}

	code, err := DetectLanguage(context.Background(), o, entries)
	if err != nil {
		t.Fatalf("DetectLanguage error: %v", err)
	}
	if code != "es" {
		t.Errorf("expected 'es', got %q", code)
	}
}

// chatty replies still yield the leading code
func TestDetectLanguageTolerantParsing(t *testing.T) {
	entries := []subtitle.Entry{{Index: 1, Text: "Bonjour"}}

	tests := []struct {
		reply string
		want  string
	}{
		{"fr", "fr"},
		{"FR\n", "fr"},
		{"fr.", "fr"},
		{`"ja"`, "ja"},
		{"de (German)", "de"},
	}

	for _, tt := range tests {
		o := &fakeOracle{reply: func(string) (string, error) {
			return tt.reply, nil
		}}

		code, err := DetectLanguage(context.Background(), o, entries)
		if err != nil {
			t.Fatalf("DetectLanguage(%q) error: %v", tt.reply, err)
		}
		if code != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.reply, code, tt.want)
		}
	}
}

func TestDetectLanguageRejectsGarbageReply(t *testing.T) {
	entries := []subtitle.Entry{{Index: 1, Text: "text"}}

	o := &fakeOracle{reply: func(string) (string, error) {
		return "that is not a language code I recognize!!", nil
	}}

	_, err := DetectLanguage(context.Background(), o, entries)
	if err == nil {
		t.Error("expected error for unparseable reply")
	}
}

func TestDetectLanguagePropagatesOracleFailure(t *testing.T) {
	entries := []subtitle.Entry{{Index: 1, Text: "text"}}

	o := &fakeOracle{reply: func(string) (string, error) {
		return "", fmt.Errorf("%w: transport error", oracle.ErrOracle)
	}}

	_, err := DetectLanguage(context.Background(), o, entries)
	if !errors.Is(err, oracle.ErrOracle) {
		t.Errorf("expected ErrOracle, got %v", err)
	}
}

func TestDetectLanguageRequiresEntries(t *testing.T) {
	o := &fakeOracle{reply: echoReply}
	_, err := DetectLanguage(context.Background(), o, nil)
	if err == nil {
		t.Error("expected error for empty input")
	}
}
