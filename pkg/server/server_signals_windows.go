// pkg/server/server_signals_windows.go
//go:build windows

package server

import "context"

// NotifyReload is a no-op on Windows, which has no SIGHUP.
func NotifyReload(_ context.Context, _ func()) {}
