package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	inputExtension = ".srt"
	outputSuffix   = "_cn.srt"
)

// OutputName maps an input file name to its translated counterpart,
// e.g. "episode01.srt" -> "episode01_cn.srt".
func OutputName(fileName string) string {
	return strings.TrimSuffix(fileName, inputExtension) + outputSuffix
}

// ProcessDirectory translates every .srt file in the input directory.
// Existing outputs are never overwritten, so re-runs only pick up new files.
func (p *implPipeline) ProcessDirectory(ctx context.Context) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", p.cfg.OutputDir, err)
	}

	entries, err := os.ReadDir(p.cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir %s: %w", p.cfg.InputDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), inputExtension) {
			continue
		}
		if err := p.ProcessIncoming(ctx, filepath.Join(p.cfg.InputDir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// ProcessIncoming translates a single input file, skipping it when the
// output already exists.
func (p *implPipeline) ProcessIncoming(ctx context.Context, inputPath string) error {
	outputPath := filepath.Join(p.cfg.OutputDir, OutputName(filepath.Base(inputPath)))

	if _, err := os.Stat(outputPath); err == nil {
		p.logger.Info(ctx, "Translated file already exists, skipping: %s", outputPath)
		return nil
	}

	p.logger.Info(ctx, "Processing file: %s", inputPath)
	if err := p.ProcessFile(ctx, inputPath, outputPath); err != nil {
		return fmt.Errorf("process %s: %w", inputPath, err)
	}
	p.logger.Info(ctx, "Translated file saved to: %s", outputPath)

	return nil
}
