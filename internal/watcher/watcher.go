// Package watcher monitors the content directory and re-validates records
// on change. It is an authoring aid only: request paths always re-read the
// store, so there is no index to keep fresh.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/content"
)

// debounceDelay collects bursts of editor writes before revalidating.
const debounceDelay = 2 * time.Second

// Watch blocks until ctx is done, re-running store.Validate whenever a
// markdown file under the content directory changes and logging the
// resulting warnings.
func Watch(ctx context.Context, store *content.Store, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := walkDirs(store.Dir())
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			log.Warn("could not watch directory", zap.String("dir", d), zap.Error(err))
		}
	}
	log.Info("watching content", zap.String("dir", store.Dir()), zap.Int("dirs", len(dirs)))

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	revalidate := func() {
		warnings := store.Validate()
		if len(warnings) == 0 {
			log.Info("content ok")
			return
		}
		for _, msg := range warnings {
			log.Warn("content warning", zap.String("detail", msg))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(event.Name, ".md") {
				// Watch newly created subdirectories.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := w.Add(event.Name); err != nil {
							log.Warn("could not watch directory", zap.String("dir", event.Name), zap.Error(err))
						}
					}
				}
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDelay, revalidate)
				mu.Unlock()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}

func walkDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}
