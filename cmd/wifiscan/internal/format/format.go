// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/vulntor/wifiscan/pkg/wifi"
)

// OutputMode defines the output format for CLI commands
type OutputMode string

const (
	// ModeJSON outputs data as JSON
	ModeJSON OutputMode = "json"
	// ModeTable outputs data as ASCII table
	ModeTable OutputMode = "table"
)

// Formatter provides consistent output formatting across CLI commands
type Formatter interface {
	// PrintJSON outputs data as JSON to stdout
	PrintJSON(data any) error

	// PrintNetworks outputs scan results as a table or JSON array
	PrintNetworks(networks []wifi.Network) error

	// PrintSummary outputs a summary message to stdout (unless quiet mode)
	PrintSummary(message string) error

	// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
	PrintError(err error) error

	// PrintTotalFailureSummary prints a failed operation with suggestions
	PrintTotalFailureSummary(operation string, err error, errorCode string, hints ...string) error

	// IsJSON reports whether JSON output mode is active
	IsJSON() bool
}

// formatter implements the Formatter interface
type formatter struct {
	stdout io.Writer
	stderr io.Writer
	mode   OutputMode
	quiet  bool
	color  bool
}

// New creates a new Formatter
func New(stdout, stderr io.Writer, mode OutputMode, quiet, color bool) Formatter {
	return &formatter{
		stdout: stdout,
		stderr: stderr,
		mode:   mode,
		quiet:  quiet,
		color:  color,
	}
}

func (f *formatter) IsJSON() bool {
	return f.mode == ModeJSON
}

// PrintJSON outputs data as JSON to stdout
func (f *formatter) PrintJSON(data any) error {
	enc := json.NewEncoder(f.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// PrintSummary outputs a summary message to stdout (unless quiet mode)
func (f *formatter) PrintSummary(message string) error {
	if f.quiet {
		return nil
	}

	if f.mode == ModeJSON {
		// In JSON mode, summary goes to stderr (not stdout)
		_, err := fmt.Fprintln(f.stderr, message)
		return err
	}

	if f.color {
		message = footerStyle.Render(message)
	}

	_, err := fmt.Fprintln(f.stdout, message)
	return err
}

// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
func (f *formatter) PrintError(err error) error {
	if err == nil {
		return nil
	}

	if f.mode == ModeJSON {
		return f.PrintJSON(errorPayload(err))
	}

	var writeErr error
	if f.color {
		_, writeErr = color.New(color.FgRed).Fprintf(f.stderr, "Error: %v\n", err)
	} else {
		_, writeErr = fmt.Fprintf(f.stderr, "Error: %v\n", err)
	}

	return writeErr
}

func errorPayload(err error) map[string]any {
	return map[string]any{
		"success": false,
		"error":   err.Error(),
	}
}

// ValidateMode checks if the output mode is valid
func ValidateMode(mode string) error {
	switch OutputMode(strings.ToLower(mode)) {
	case ModeJSON, ModeTable:
		return nil
	default:
		return fmt.Errorf("invalid output mode: %s (must be 'json' or 'table')", mode)
	}
}

// ParseMode converts a string to OutputMode
func ParseMode(mode string) OutputMode {
	switch strings.ToLower(mode) {
	case "json":
		return ModeJSON
	default:
		return ModeTable
	}
}
