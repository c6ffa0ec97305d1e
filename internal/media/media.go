// Package media inventories video files and pulls embedded subtitle
// streams out of them, so a library can be scanned for material that
// still needs subtitles.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
}

// an embedded stream reported by ffprobe
type Stream struct {
	Index    int
	Type     string
	Codec    string
	Language string
}

// probed video file information
type Info struct {
	Path            string
	Duration        time.Duration
	SubtitleStreams []Stream
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		Index     int    `json:"index"`
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Tags      struct {
			Language string `json:"language"`
		} `json:"tags"`
	} `json:"streams"`
}

// inspects a video file with ffprobe
func Probe(ctx context.Context, path string) (*Info, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &Info{Path: path}

	if probe.Format.Duration != "" {
		var seconds float64
		if _, err := fmt.Sscanf(probe.Format.Duration, "%f", &seconds); err != nil {
			return nil, fmt.Errorf("failed to parse duration: %w", err)
		}
		info.Duration = time.Duration(seconds * float64(time.Second))
	}

	for _, stream := range probe.Streams {
		if stream.CodecType != "subtitle" {
			continue
		}
		info.SubtitleStreams = append(info.SubtitleStreams, Stream{
			Index:    stream.Index,
			Type:     stream.CodecType,
			Codec:    stream.CodecName,
			Language: stream.Tags.Language,
		})
	}

	return info, nil
}

// extracts one embedded subtitle stream to an SRT file
func ExtractSubtitles(ctx context.Context, videoPath, outputPath string, streamIndex int) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:%d", streamIndex),
		"c:s": "srt",
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("subtitle extraction failed: %w", err)
	}

	return nil
}

// ScanVideos walks root and returns video files that have no sibling
// subtitle file (movie.mkv with neither movie.srt nor movie.vtt).
func ScanVideos(root string) ([]string, error) {
	var missing []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !videoExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if !hasSubtitleSibling(path) {
			missing = append(missing, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(missing)
	return missing, nil
}

func hasSubtitleSibling(videoPath string) bool {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range []string{".srt", ".vtt"} {
		if _, err := os.Stat(base + ext); err == nil {
			return true
		}
	}
	return false
}
