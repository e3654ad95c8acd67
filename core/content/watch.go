// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor save bursts into a single reload.
const watchDebounce = 500 * time.Millisecond

// Watch reloads the store whenever markdown under dir changes. It blocks
// until ctx is cancelled and is only used in development; production embeds
// its content.
//
// A reload that fails keeps the previous corpus and logs the error, so a
// half-saved file does not take the dev server down.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("could not watch %q: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if err := watcher.Add(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("could not watch %q: %w", entry.Name(), err)
		}
	}

	s.logger.Info().Str("dir", dir).Msg("Watching content for changes")

	var timer *time.Timer

	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(watchDebounce)
			}

		case <-reload:
			timer = nil

			parent := filepath.Dir(dir)
			if err := s.Load(os.DirFS(parent), filepath.Base(dir)); err != nil {
				s.logger.Error().Err(err).Msg("Content reload failed, keeping previous corpus")

				continue
			}

			s.logger.Info().Msg("Content reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.logger.Error().Err(err).Msg("File watcher error")
		}
	}
}
