package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psams/subtran/internal/media"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Find videos that are missing subtitles",
	Long: `Walk a directory for video files with no sibling .srt or .vtt file.

With --extract, videos carrying an embedded subtitle stream get that
stream pulled out to a sibling .srt, ready to be translated.

Examples:
  subtran scan ~/videos
  subtran scan ~/videos --extract`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().
		Bool("extract", false, "Extract embedded subtitle streams to .srt files")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := args[0]
	ctx := context.Background()

	extract, _ := cmd.Flags().GetBool("extract")

	missing, err := media.ScanVideos(root)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		fmt.Println("All videos have subtitles.")
		return nil
	}

	fmt.Printf("Videos missing subtitles (%d):\n", len(missing))
	for _, path := range missing {
		fmt.Printf("  %s\n", path)
	}

	if !extract {
		return nil
	}

	extracted := 0
	for _, videoPath := range missing {
		info, err := media.Probe(ctx, videoPath)
		if err != nil {
			logger.Warnw("Probe failed", "video", videoPath, "error", err)
			continue
		}
		if len(info.SubtitleStreams) == 0 {
			logger.Debugw("No embedded subtitle stream", "video", videoPath)
			continue
		}

		stream := info.SubtitleStreams[0]
		outPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"

		logger.Infow("Extracting embedded subtitles",
			"video", videoPath,
			"stream", stream.Index,
			"codec", stream.Codec,
			"language", stream.Language,
		)

		if err := media.ExtractSubtitles(ctx, videoPath, outPath, stream.Index); err != nil {
			logger.Warnw("Extraction failed", "video", videoPath, "error", err)
			continue
		}
		extracted++
	}

	fmt.Printf("Extracted subtitles from %d of %d videos.\n", extracted, len(missing))
	return nil
}
