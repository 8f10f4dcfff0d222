package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// defaultDebounce absorbs the burst of events a single editor save produces.
const defaultDebounce = 200 * time.Millisecond

// watchInput calls convert once, then again after every change to path,
// until ctx is cancelled. The parent directory is watched because editors
// often save by writing a new file and renaming it over the old one.
func watchInput(ctx context.Context, path string, debounce time.Duration, convert func(context.Context), logger *slog.Logger) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", cv2pdf.ErrInputNotFound, path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	convert(ctx)
	logger.Info("watching for changes", "path", target)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("input changed", "op", event.Op.String())
				timer.Reset(debounce)
			} else if event.Has(fsnotify.Remove) {
				logger.Warn("input removed", "path", target)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)

		case <-timer.C:
			if fileutil.FileExists(target) {
				convert(ctx)
			}
		}
	}
}
