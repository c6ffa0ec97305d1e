package oracle

import (
	"context"
	"testing"
)

func TestFactoryReturnsCommandOracle(t *testing.T) {
	o, err := Factory(context.Background(), ProviderCommand, Config{Command: "cat"})
	if err != nil {
		t.Fatalf("Factory(ProviderCommand) returned error: %v", err)
	}
	if _, ok := o.(*CommandOracle); !ok {
		t.Errorf("expected *CommandOracle, got %T", o)
	}
}

func TestFactoryReturnsAnthropicOracle(t *testing.T) {
	o, err := Factory(context.Background(), ProviderAnthropic, Config{APIKey: "fake-key"})
	if err != nil {
		t.Fatalf("Factory(ProviderAnthropic) returned error: %v", err)
	}
	if _, ok := o.(*AnthropicOracle); !ok {
		t.Errorf("expected *AnthropicOracle, got %T", o)
	}
}

func TestFactoryReturnsOpenAIOracle(t *testing.T) {
	o, err := Factory(context.Background(), ProviderOpenAI, Config{APIKey: "fake-key"})
	if err != nil {
		t.Fatalf("Factory(ProviderOpenAI) returned error: %v", err)
	}
	if _, ok := o.(*OpenAIOracle); !ok {
		t.Errorf("expected *OpenAIOracle, got %T", o)
	}
}

func TestFactoryRequiresAPIKey(t *testing.T) {
	_, err := Factory(context.Background(), ProviderOpenAI, Config{})
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := Factory(context.Background(), Provider("unknown"), Config{})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}
