// Package subtitle classifies lines of subtitle-style text files and
// groups the translatable ones into ordered chunks.
package subtitle

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reTimeRange = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3}\s-->\s\d{2}:\d{2}:\d{2},\d{3}$`)
	reIndex     = regexp.MustCompile(`^\d+$`)
	rePunctOnly = regexp.MustCompile(`^[\s.,!?;:"'-]+$`)
)

// Line is one translatable line with its zero-based position in the file.
type Line struct {
	Pos  int
	Text string
}

// IsTranslatable reports whether a line carries dialogue worth translating.
// Blank lines, sequence indices, timestamp ranges and punctuation-only lines
// are structural and preserved verbatim.
func IsTranslatable(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if reIndex.MatchString(trimmed) {
		return false
	}
	if reTimeRange.MatchString(trimmed) {
		return false
	}
	if rePunctOnly.MatchString(trimmed) {
		return false
	}
	return true
}

// PendingLines returns the translatable lines in file order, keeping positions.
func PendingLines(lines []string) []Line {
	var pending []Line
	for idx, line := range lines {
		if IsTranslatable(line) {
			pending = append(pending, Line{Pos: idx, Text: line})
		}
	}
	return pending
}

// SplitChunks partitions pending into consecutive groups of at most size
// elements. The last group may be smaller. Order is preserved and the groups
// cover the input exactly.
func SplitChunks(pending []Line, size int) ([][]Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be a positive integer, got %d", size)
	}

	var chunks [][]Line
	for i := 0; i < len(pending); i += size {
		end := i + size
		if end > len(pending) {
			end = len(pending)
		}
		chunks = append(chunks, pending[i:end])
	}
	return chunks, nil
}
