package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subtrans/internal/config"
	"github.com/nguyentantai21042004/subtrans/internal/logger"
	"github.com/nguyentantai21042004/subtrans/internal/pipeline"
	"github.com/nguyentantai21042004/subtrans/internal/translator"
	"github.com/nguyentantai21042004/subtrans/internal/watcher"
)

func newTranslateCommand() *cobra.Command {
	var (
		configPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate every subtitle file in the input directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)
			ctx := cmd.Context()

			timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
			tr := translator.NewBatch(buildCompleter(cfg, timeout), cfg.Prompt, timeout, log)
			p := pipeline.New(cfg, tr, log)

			log.Info(ctx, "Translating %s -> %s (chunk size %d, %d workers, provider %s)",
				cfg.InputDir, cfg.OutputDir, cfg.ChunkSize, cfg.MaxWorkers, cfg.Provider)

			if err := p.ProcessDirectory(ctx); err != nil {
				return err
			}

			if !watch {
				return nil
			}
			return watchDirectory(ctx, cfg, p, log)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the yaml configuration file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and translate new files as they appear")

	return cmd
}

func buildCompleter(cfg *config.Config, timeout time.Duration) translator.Completer {
	if cfg.Provider == config.ProviderGemini {
		return translator.NewGemini(cfg.APIKey, cfg.Model)
	}
	return translator.NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, timeout)
}

// watchDirectory blocks, translating subtitle files as they land in the
// input directory, until a shutdown signal arrives.
func watchDirectory(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) error {
	w, err := watcher.New(cfg.InputDir, p.ProcessIncoming, log, cfg.MaxWorkers)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new subtitle files. Press Ctrl+C to stop", cfg.InputDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	log.Info(ctx, "Shutting down gracefully...")
	return nil
}
