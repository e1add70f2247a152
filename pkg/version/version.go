// pkg/version/version.go
// Package version provides version metadata for the application.
package version

import (
	"fmt"
	"runtime"
)

// These variables are typically injected at build time using -ldflags
var (
	// Version holds the current version of wifiscan.
	Version = "dev"
	// Commit holds the current version commit of wifiscan.
	Commit = "none"
	// BuildDate holds the build date of wifiscan.
	BuildDate = "unknown"
)

// Struct returns version information in a structured format.
type Struct struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("wifiscan %s (commit: %s, date: %s)", Version, Commit, BuildDate)
}

// Get returns version information as a Struct.
func Get() Struct {
	return Struct{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
