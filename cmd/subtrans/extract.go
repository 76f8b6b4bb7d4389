package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subtrans/internal/extractor"
	"github.com/nguyentantai21042004/subtrans/internal/logger"
	"github.com/nguyentantai21042004/subtrans/pkg/executor"
)

func newExtractAudioCommand() *cobra.Command {
	var (
		inputDir  string
		outputDir string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "extract-audio",
		Short: "Extract audio streams from video files by stream copy",
		Long: "Walks the input directory recursively, probes each video file's audio " +
			"codec with ffprobe and remuxes the audio stream with ffmpeg into a " +
			"container matching the codec. Requires ffmpeg and ffprobe on PATH.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logLevel)
			e := extractor.New(executor.New(), log)
			return e.ExtractDirectory(cmd.Context(), inputDir, outputDir)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", ".", "directory to scan for video files")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "audio", "directory to write extracted audio into")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
