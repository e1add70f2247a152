// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ErrNoConfigFile is returned when a watcher is requested but no config file was loaded.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watcher reloads the manager when its config file changes on disk.
// Writes are debounced so an editor's save sequence triggers one reload.
type Watcher struct {
	manager       *Manager
	path          string
	onChange      func(Config)
	watcher       *fsnotify.Watcher
	debounceDelay time.Duration
	logger        zerolog.Logger

	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for the manager's config file. onChange is
// called with the new configuration after every successful reload.
func NewWatcher(manager *Manager, onChange func(Config), logger zerolog.Logger) (*Watcher, error) {
	path := manager.FilePath()
	if path == "" {
		return nil, ErrNoConfigFile
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		manager:       manager,
		path:          path,
		onChange:      onChange,
		watcher:       fw,
		debounceDelay: 100 * time.Millisecond,
		logger:        logger.With().Str("component", "config.watcher").Logger(),
	}, nil
}

// Start watches the config file until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	// fsnotify tracks directories more reliably than files replaced by rename.
	dir := filepath.Dir(w.path)
	name := filepath.Base(w.path)

	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("Failed to watch config directory")
		return err
	}

	w.logger.Info().Str("file", w.path).Dur("debounce", w.debounceDelay).Msg("Watching config file")

	defer func() {
		w.stopTimer()
		if err := w.watcher.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("Error closing watcher")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.logger.Debug().Str("op", event.Op.String()).Msg("Config file changed")
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		if err := w.manager.Reload(); err != nil {
			w.logger.Error().Err(err).Msg("Failed to reload config")
			return
		}
		w.logger.Info().Msg("Config reloaded")
		if w.onChange != nil {
			w.onChange(w.manager.Get())
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}
