package extractor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/subtrans/internal/logger"
	"github.com/nguyentantai21042004/subtrans/pkg/executor"
)

// Container extension per audio codec; stream copy keeps the codec, so the
// container has to match it.
var containerByCodec = map[string]string{
	"aac":    "m4a",
	"mp3":    "mp3",
	"opus":   "opus",
	"vorbis": "ogg",
	"flac":   "flac",
}

const defaultContainer = "m4a"

var videoExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mkv": true,
	".mov": true,
	".flv": true,
	".wmv": true,
}

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}

// probeCodec returns the audio codec name of the file, or "" when ffprobe
// finds no audio stream (or cannot read the file).
func (e *implExtractor) probeCodec(ctx context.Context, videoPath string) string {
	out, err := e.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=codec_name",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func (e *implExtractor) ExtractFile(ctx context.Context, videoPath, outputDir string) (string, error) {
	codec := e.probeCodec(ctx, videoPath)
	if codec == "" {
		e.logger.Info(ctx, "No audio stream found in %s, skipping...", videoPath)
		return "", nil
	}

	ext, ok := containerByCodec[codec]
	if !ok {
		ext = defaultContainer
	}

	videoName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	outputPath := filepath.Join(outputDir, videoName+"."+ext)

	// Copy the stream as-is, never transcode
	if _, err := e.executor.Execute(ctx, "ffmpeg",
		"-i", videoPath,
		"-map", "0:a",
		"-c:a", "copy",
		"-vn",
		outputPath,
	); err != nil {
		return "", fmt.Errorf("extract audio from %s: %w", videoPath, err)
	}

	e.logger.Info(ctx, "Audio extracted: %s", outputPath)
	return outputPath, nil
}

func (e *implExtractor) ExtractDirectory(ctx context.Context, inputDir, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	videos, err := findVideos(inputDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", inputDir, err)
	}

	if len(videos) == 0 {
		e.logger.Info(ctx, "No video files found in %s", inputDir)
		return nil
	}

	e.logger.Info(ctx, "Found %d video files", len(videos))
	bar := progressbar.Default(int64(len(videos)), "extracting audio")

	for _, videoPath := range videos {
		if _, err := e.ExtractFile(ctx, videoPath, outputDir); err != nil {
			e.logger.Error(ctx, "Failed to extract audio from %s: %v", videoPath, err)
		}
		_ = bar.Add(1)
	}

	return nil
}

func findVideos(root string) ([]string, error) {
	var videos []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if videoExtensions[strings.ToLower(filepath.Ext(path))] {
			videos = append(videos, path)
		}
		return nil
	})
	return videos, err
}
