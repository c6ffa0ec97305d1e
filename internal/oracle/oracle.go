// Package oracle abstracts the external translation service behind a
// single-method invoke interface so the pipeline can be tested with
// scripted replies.
package oracle

import (
	"context"
	"errors"
	"fmt"
)

// an external translation call failed (non-zero exit, timeout, transport)
var ErrOracle = errors.New("oracle invocation failed")

// opaque text-in text-out translation service
type Oracle interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// translation oracle backend
type Provider string

const (
	ProviderCommand   Provider = "command"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// backend settings shared by all oracle constructors
type Config struct {
	APIKey  string
	Model   string
	Command string   // external binary for ProviderCommand
	Args    []string // extra argv before the prompt is piped on stdin
}

// creates an Oracle for the given provider
func Factory(ctx context.Context, provider Provider, cfg Config) (Oracle, error) {
	switch provider {
	case ProviderCommand:
		return NewCommandOracle(cfg.Command, cfg.Args...)
	case ProviderAnthropic:
		return NewAnthropicOracle(cfg.APIKey, cfg.Model)
	case ProviderOpenAI:
		return NewOpenAIOracle(cfg.APIKey, cfg.Model)
	case ProviderGemini:
		return NewGeminiOracle(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", provider)
	}
}
