package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/psams/subtran/internal/config"
	"github.com/psams/subtran/internal/oracle"
)

func apiKeyEnvName(provider oracle.Provider) string {
	switch provider {
	case oracle.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case oracle.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case oracle.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// builds the oracle selected by flags/config, resolving the API key from
// the provider's environment variable when not passed explicitly
func buildOracle(
	ctx context.Context,
	cfg *config.Config,
	providerStr, apiKey, model, oracleCmd string,
	oracleArgs []string,
) (oracle.Oracle, error) {
	provider := oracle.Provider(providerStr)

	if provider == oracle.ProviderCommand {
		command := oracleCmd
		args := oracleArgs
		if command == "" {
			command = cfg.Oracle.Command
			args = cfg.Oracle.Args
		}
		if command == "" {
			return nil, fmt.Errorf(
				"oracle command is required: use --oracle-cmd or set oracle.command in the config file",
			)
		}
		return oracle.Factory(ctx, provider, oracle.Config{
			Command: command,
			Args:    args,
		})
	}

	if apiKey == "" {
		if env := apiKeyEnvName(provider); env != "" {
			apiKey = os.Getenv(env)
		}
	}
	if apiKey == "" {
		env := apiKeyEnvName(provider)
		if env == "" {
			env = "API_KEY"
		}
		return nil, fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			env,
		)
	}

	return oracle.Factory(ctx, provider, oracle.Config{
		APIKey: apiKey,
		Model:  model,
	})
}
