package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cassis-lang/cassis/pkg/css"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceInterval coalesces editor write bursts into one rebuild.
const debounceInterval = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch sources and recompile on change",
		Long: `Watch a directory for .csse changes and recompile changed files.

Without an argument the configured styles directory is watched. Runs
until interrupted.`,
		Example: `  # Watch the styles directory
  cassis watch

  # Watch a specific directory
  cassis watch src/styles`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			dir := cmdCtx.Cfg.StylesDir
			if len(args) > 0 {
				dir = args[0]
			}
			return runWatch(cmd.Context(), cmdCtx, dir)
		},
	}

	return cmd
}

func runWatch(ctx context.Context, cmdCtx *CommandContext, dir string) error {
	logger := cmdCtx.Logger

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.Info("watching for changes", "dir", dir)

	// Debounce timer per changed file
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New subdirectories need watching too
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				_ = watchDirRecursive(watcher, event.Name)
				continue
			}

			if filepath.Ext(event.Name) != SourceExt {
				continue
			}

			if t, ok := timers[event.Name]; ok {
				t.Stop()
			}
			src := event.Name
			timers[src] = time.AfterFunc(debounceInterval, func() {
				rebuild(cmdCtx, src)
			})

		case err := <-watcher.Errors:
			logger.Error("watcher error", "error", err)
		}
	}
}

// rebuild compiles one source file and writes its output.
func rebuild(cmdCtx *CommandContext, src string) {
	logger := cmdCtx.Logger

	text, err := css.CompileFile(src)
	if err != nil {
		logger.Error("compile failed", "source", src, "error", err)
		return
	}

	dst := outputPathFor(src, cmdCtx.Cfg.OutDir)
	if cmdCtx.Cfg.OutDir != "" {
		if err := os.MkdirAll(cmdCtx.Cfg.OutDir, 0o750); err != nil {
			logger.Error("failed to create output directory", "error", err)
			return
		}
	}
	if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
		logger.Error("failed to write output", "output", dst, "error", err)
		return
	}
	logger.Info("compiled", "source", src, "output", dst)
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
