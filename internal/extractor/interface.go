package extractor

import "context"

// Extractor pulls audio streams out of video files without transcoding.
type Extractor interface {
	// ExtractFile remuxes the audio stream of one video into outputDir.
	// Returns the written path, or "" when the video has no audio stream.
	ExtractFile(ctx context.Context, videoPath, outputDir string) (string, error)
	// ExtractDirectory walks inputDir recursively and extracts audio from
	// every video file found.
	ExtractDirectory(ctx context.Context, inputDir, outputDir string) error
}
