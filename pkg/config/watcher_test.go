package config

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_NoConfigFile(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.Load(nil, ""))

	_, err := NewWatcher(manager, nil, zerolog.Nop())
	require.ErrorIs(t, err, ErrNoConfigFile)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: warn\n")

	manager := NewManager()
	require.NoError(t, manager.Load(nil, path))

	var lastLevel atomic.Value
	w, err := NewWatcher(manager, func(cfg Config) {
		lastLevel.Store(cfg.Log.Level)
	}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give fsnotify time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))

	require.Eventually(t, func() bool {
		v, _ := lastLevel.Load().(string)
		return v == "error"
	}, 3*time.Second, 20*time.Millisecond)
	require.Equal(t, "error", manager.Get().Log.Level)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
