package translate

import (
	"strings"
	"testing"

	"github.com/psams/subtran/internal/subtitle"
)

func TestBuildPromptWireForm(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 1, Text: "Hello"},
		{Index: 2, Text: "World"},
	}
	opts := Options{TargetLanguage: "Spanish"}

	prompt := BuildPrompt(opts, entries)

	if !strings.Contains(prompt, "[1] Hello\n") {
		t.Errorf("prompt missing wire form for entry 1:\n%s", prompt)
	}
	if !strings.Contains(prompt, "[2] World\n") {
		t.Errorf("prompt missing wire form for entry 2:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Spanish") {
		t.Errorf("prompt missing target language:\n%s", prompt)
	}
	if strings.Index(prompt, "[1]") > strings.Index(prompt, "[2]") {
		t.Error("entries out of order in prompt")
	}
}

// multi-line entries must occupy exactly one line in the prompt
func TestBuildPromptEscapesLineBreaks(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 3, Text: "First line\nSecond line"},
	}
	opts := Options{TargetLanguage: "French"}

	prompt := BuildPrompt(opts, entries)

	if !strings.Contains(prompt, `[3] First line\nSecond line`) {
		t.Errorf("expected escaped line break in prompt:\n%s", prompt)
	}
}

func TestBuildPromptSourceLanguageDirective(t *testing.T) {
	entries := []subtitle.Entry{{Index: 1, Text: "Hi"}}

	with := BuildPrompt(Options{SourceLanguage: "English", TargetLanguage: "German"}, entries)
	if !strings.Contains(with, "English subtitle lines to German") {
		t.Errorf("expected source language directive:\n%s", with)
	}

	without := BuildPrompt(Options{TargetLanguage: "German"}, entries)
	if !strings.Contains(without, "subtitle lines to German") {
		t.Errorf("expected target-only directive:\n%s", without)
	}
}

func TestBuildPromptCustomInstructions(t *testing.T) {
	entries := []subtitle.Entry{{Index: 1, Text: "Hi"}}
	opts := Options{
		TargetLanguage: "Italian",
		Instructions:   "Use a formal register.",
	}

	prompt := BuildPrompt(opts, entries)

	if !strings.Contains(prompt, "Use a formal register.") {
		t.Errorf("custom instructions missing:\n%s", prompt)
	}
	if strings.Contains(prompt, defaultInstructions) {
		t.Errorf("default instructions should be replaced:\n%s", prompt)
	}
}
