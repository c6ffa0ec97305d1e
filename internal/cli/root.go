package cli

import (
	"github.com/spf13/cobra"

	"github.com/psams/subtran/internal/config"
	"github.com/psams/subtran/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subtran",
	Short: "AI-powered subtitle translator",
	Long: `Subtran translates SRT and WebVTT subtitle files to another language
through a translation oracle: an LLM provider API or any external
command-line tool that reads a prompt on stdin and prints the reply.

Timing, ordering and entry indices are preserved exactly; only the text
is translated.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/subtran/config.yaml)")
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}
