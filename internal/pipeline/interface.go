package pipeline

import "context"

// Pipeline drives subtitle translation over files and directories.
type Pipeline interface {
	// ProcessFile translates one subtitle file into outputPath.
	ProcessFile(ctx context.Context, inputPath, outputPath string) error
	// ProcessIncoming applies the output naming and skip-if-exists rules to
	// one input file. Used by the directory driver and the watch mode.
	ProcessIncoming(ctx context.Context, inputPath string) error
	// ProcessDirectory translates every eligible file in the input directory.
	ProcessDirectory(ctx context.Context) error
}
