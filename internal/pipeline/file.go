package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/subtrans/internal/export"
	"github.com/nguyentantai21042004/subtrans/internal/subtitle"
)

// ProcessFile translates one subtitle file. Every structural line is
// preserved verbatim and the output has exactly as many lines as the input.
func (p *implPipeline) ProcessFile(ctx context.Context, inputPath, outputPath string) error {
	lines, err := readLines(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	pending := subtitle.PendingLines(lines)
	chunks, err := subtitle.SplitChunks(pending, p.cfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("split %s: %w", inputPath, err)
	}

	translations := p.translateChunks(ctx, chunks)

	final := make([]string, len(lines))
	for idx, original := range lines {
		if translated, ok := translations[idx]; ok {
			final[idx] = translated
		} else {
			final[idx] = original
		}
	}

	if err := os.WriteFile(outputPath, []byte(strings.Join(final, "\n")), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if p.cfg.ExportDocx {
		if err := p.exportTranscript(ctx, outputPath, final, pending); err != nil {
			p.logger.Warn(ctx, "Failed to export transcript for %s: %v", outputPath, err)
		}
	}

	return nil
}

// translateChunks fans chunks out to a bounded set of goroutines and merges
// their results. Each chunk is one remote batch call; results come back on a
// channel and are merged by this goroutine alone, so no lock guards the map.
// A chunk that falls back to originals never stops the others.
func (p *implPipeline) translateChunks(ctx context.Context, chunks [][]subtitle.Line) map[int]string {
	sem := make(chan struct{}, p.cfg.MaxWorkers)
	results := make(chan map[int]string)

	var wg sync.WaitGroup
	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []subtitle.Line) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			texts := make([]string, len(chunk))
			for i, line := range chunk {
				texts[i] = line.Text
			}

			translated := p.translator.TranslateBatch(ctx, texts)

			entry := make(map[int]string, len(chunk))
			for i, line := range chunk {
				entry[line.Pos] = translated[i]
			}
			results <- entry
		}(chunk)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	merged := make(map[int]string)
	for entry := range results {
		for pos, text := range entry {
			merged[pos] = text
		}
		p.logger.Info(ctx, "Processed chunk with %d translations", len(entry))
	}
	return merged
}

func (p *implPipeline) exportTranscript(ctx context.Context, outputPath string, final []string, pending []subtitle.Line) error {
	dialogue := make([]string, 0, len(pending))
	for _, line := range pending {
		dialogue = append(dialogue, final[line.Pos])
	}

	docxPath := strings.TrimSuffix(outputPath, ".srt") + ".docx"
	title := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(outputPath), ".srt"), "_cn")

	if err := export.WriteTranscript(title, dialogue, docxPath); err != nil {
		return err
	}
	p.logger.Info(ctx, "Transcript exported: %s", docxPath)
	return nil
}

// readLines splits a file into lines the way a line iterator would: the
// final trailing newline does not produce an extra empty line.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSuffix(string(data), "\n")
	return strings.Split(content, "\n"), nil
}
