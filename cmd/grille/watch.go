package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tsawler/grille"
	"github.com/tsawler/grille/internal/config"
)

// Editors often write a file in several steps; wait for writes to settle.
const watchDebounce = 250 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [input]",
	Short: "Re-extract zones whenever the input file changes",
	Long: `Run extract once, then again every time the input file is written,
until interrupted. Takes the same flags as extract; --output is required.

Example:
  grille watch pages.jsonl -o zones.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, extractBindings)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Input = args[0]
		}
		if cfg.Input == "" {
			return fail(logger, "watch failed", grille.ErrNoInput)
		}
		if cfg.Output == "" {
			return fail(logger, "watch failed", fmt.Errorf("watch needs --output"))
		}
		return runWatch(cmd.Context(), cfg, logger)
	},
}

func init() {
	addExtractFlags(watchCmd)
}

// runWatch extracts cfg.Input on start and after every change, until ctx
// is done. Extraction errors are logged and do not stop the watch.
func runWatch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fail(logger, "watch failed", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and exporters often replace the file
	// rather than write to it, which drops a watch on the file itself.
	target := filepath.Clean(cfg.Input)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fail(logger, "watch failed", err)
	}

	rerun := func() {
		if err := runExtract(ctx, cfg, logger, nil); err != nil && ctx.Err() == nil {
			logger.Warn("extraction failed, waiting for next change", "error", err)
		}
	}
	rerun()
	logger.Info("watching for changes", "input", target)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
