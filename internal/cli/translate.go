package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/psams/subtran/internal/subtitle"
	"github.com/psams/subtran/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate a subtitle file to another language",
	Long: `Translate an existing subtitle file to another language.

Supports SRT and VTT formats. Entries are sent to the oracle in chunks;
an entry the oracle fails to translate keeps its original text instead of
failing the whole file.

Examples:
  subtran translate movie.srt --target-language spanish
  subtran translate show.vtt -l english -t japanese -o show.ja.vtt
  subtran translate movie.srt -t french --provider command --oracle-cmd llm`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Source language (detected by the oracle when omitted)")
	translateCmd.Flags().
		StringP("output", "o", "", "Output file path (default: input.<lang>.<ext>)")
	translateCmd.Flags().
		String("provider", "", "Translation oracle (command, anthropic, openai, gemini)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set ANTHROPIC_API_KEY/OPENAI_API_KEY/GEMINI_API_KEY)")
	translateCmd.Flags().
		String("model", "", "Model to use (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("oracle-cmd", "", "External oracle command (reads prompt on stdin, prints reply)")
	translateCmd.Flags().
		StringSlice("oracle-arg", nil, "Extra argument for the external oracle command (repeatable)")
	translateCmd.Flags().
		Int("chunk-size", 0, "Number of subtitle entries per oracle request")
	translateCmd.Flags().
		Int("workers", 0, "Number of parallel oracle calls (1 = sequential)")
	translateCmd.Flags().
		String("instructions", "", "Custom instruction block for the oracle prompt")
	translateCmd.Flags().
		Duration("timeout", 0, "Deadline per oracle call (0 = config default)")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	outputPath, _ := cmd.Flags().GetString("output")
	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	oracleCmd, _ := cmd.Flags().GetString("oracle-cmd")
	oracleArgs, _ := cmd.Flags().GetStringSlice("oracle-arg")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	workers, _ := cmd.Flags().GetInt("workers")
	instructions, _ := cmd.Flags().GetString("instructions")
	timeout, _ := cmd.Flags().GetDuration("timeout")

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
	if chunkSize == 0 {
		chunkSize = cfg.ChunkSize
	}
	if workers == 0 {
		workers = cfg.Workers
	}
	if instructions == "" {
		instructions = cfg.Instructions
	}
	if timeout == 0 {
		timeout, err = cfg.OracleTimeout()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	if _, err := subtitle.FormatForPath(subtitlePath); err != nil {
		return err
	}

	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	if chunkSize <= 0 {
		return fmt.Errorf("chunk-size must be positive, got %d", chunkSize)
	}
	if workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}

	if outputPath == "" {
		outputPath = subtitle.OutputPath(subtitlePath, targetLang)
	}

	logger.Infow("Starting subtitle translation",
		"input", subtitlePath,
		"output", outputPath,
		"target_language", targetLang,
		"input_language", inputLang,
		"provider", providerStr,
		"model", model,
	)

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if len(sub.Entries) == 0 {
		return fmt.Errorf("subtitle file contains no entries")
	}

	logger.Infow("Parsed subtitle file",
		"entries", len(sub.Entries),
		"format", sub.Format,
	)

	orc, err := buildOracle(ctx, cfg, providerStr, apiKey, model, oracleCmd, oracleArgs)
	if err != nil {
		return err
	}

	session, err := translate.NewSession(orc, translate.Options{
		SourceLanguage: inputLang,
		TargetLanguage: targetLang,
		Instructions:   instructions,
		ChunkSize:      chunkSize,
		Workers:        workers,
		Timeout:        timeout,
	}, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	translated, err := session.Translate(ctx, sub.Entries)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Translation complete",
		"entries", len(translated),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	out := &subtitle.Subtitle{Entries: translated, Format: sub.Format}
	if err := out.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles translated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(translated))
	fmt.Printf("  Target language: %s\n", targetLang)

	return nil
}
