package oracle

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Oracle using OpenAI Chat Completions
type OpenAIOracle struct {
	client openai.Client
	model  string
}

func NewOpenAIOracle(apiKey, model string) (*OpenAIOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAIOracle{client: client, model: model}, nil
}

func (o *OpenAIOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: o.model,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOracle, err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from OpenAI", ErrOracle)
	}

	responseText := completion.Choices[0].Message.Content
	if responseText == "" {
		return "", fmt.Errorf("%w: no text in OpenAI response", ErrOracle)
	}

	return responseText, nil
}
