package oracle

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements Oracle using Anthropic Claude
type AnthropicOracle struct {
	client anthropic.Client
	model  anthropic.Model
}

func NewAnthropicOracle(apiKey, model string) (*AnthropicOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := anthropic.Model(model)
	if model == "" {
		m = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicOracle{client: client, model: m}, nil
}

func (o *AnthropicOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	message, err := o.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     o.model,
			MaxTokens: 4096,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(prompt),
				),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOracle, err)
	}

	if message == nil || len(message.Content) == 0 {
		return "", fmt.Errorf("%w: empty response from Anthropic", ErrOracle)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("%w: no text in Anthropic response", ErrOracle)
	}

	return responseText, nil
}
