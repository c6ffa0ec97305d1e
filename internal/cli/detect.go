package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psams/subtran/internal/subtitle"
	"github.com/psams/subtran/internal/translate"
)

var detectCmd = &cobra.Command{
	Use:   "detect [subtitle_file]",
	Short: "Detect the language of a subtitle file",
	Long: `Send a small sample of the subtitle text to the oracle and print the
detected ISO 639-1 language code.

Examples:
  subtran detect movie.srt
  subtran detect movie.srt --provider command --oracle-cmd llm`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().
		String("provider", "", "Translation oracle (command, anthropic, openai, gemini)")
	detectCmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's environment variable)")
	detectCmd.Flags().
		String("model", "", "Model to use (provider-specific, uses sensible defaults)")
	detectCmd.Flags().
		String("oracle-cmd", "", "External oracle command (reads prompt on stdin, prints reply)")
	detectCmd.Flags().
		StringSlice("oracle-arg", nil, "Extra argument for the external oracle command (repeatable)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	oracleCmd, _ := cmd.Flags().GetString("oracle-cmd")
	oracleArgs, _ := cmd.Flags().GetStringSlice("oracle-arg")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if providerStr == "" {
		providerStr = cfg.Provider
	}
	if model == "" {
		model = cfg.Model
	}

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if len(sub.Entries) == 0 {
		return fmt.Errorf("subtitle file contains no entries")
	}

	orc, err := buildOracle(ctx, cfg, providerStr, apiKey, model, oracleCmd, oracleArgs)
	if err != nil {
		return err
	}

	code, err := translate.DetectLanguage(ctx, orc, sub.Entries)
	if err != nil {
		return fmt.Errorf("language detection failed: %w", err)
	}

	fmt.Println(code)
	return nil
}
