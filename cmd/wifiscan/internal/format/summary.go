// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// PrintTotalFailureSummary prints total failure with error and suggestions
// Example output:
//
//	✗ Failed to start server: invalid port 0: must be between 1 and 65535
//
//	💡 Suggestions:
//	  → Use a port between 1 and 65535
//	  → Example:                 wifiscan server start --port 8080
//
// Hints are appended to the built-in suggestions for errorCode. The returned
// error wraps err and is marked as reported, so main only maps it to an exit
// code instead of printing it again.
func (f *formatter) PrintTotalFailureSummary(operation string, err error, errorCode string, hints ...string) error {
	if err == nil {
		return nil
	}
	if f.mode == ModeJSON {
		payload := errorPayload(err)
		payload["operation"] = operation
		payload["error_code"] = errorCode
		if printErr := f.PrintJSON(payload); printErr != nil {
			return printErr
		}
		return &reportedError{err: err}
	}

	// Quiet mode drops the suggestions but still reports the failure.
	if f.quiet {
		if printErr := f.PrintError(err); printErr != nil {
			return printErr
		}
		return &reportedError{err: err}
	}

	var sb strings.Builder

	errorMsg := fmt.Sprintf("✗ Failed to %s: %v", operation, err)
	if f.color {
		sb.WriteString(color.RedString("%s\n", errorMsg))
	} else {
		sb.WriteString(errorMsg + "\n")
	}

	suggestions := append(GetSuggestions(errorCode), hints...)
	if len(suggestions) > 0 {
		sb.WriteString("\n💡 Suggestions:\n")
		for _, s := range suggestions {
			sb.WriteString(fmt.Sprintf("  → %s\n", s))
		}
	}

	if _, writeErr := f.stderr.Write([]byte(sb.String())); writeErr != nil {
		return writeErr
	}
	return &reportedError{err: err}
}

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a failure summary.
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

var builtinSuggestions = map[string][]string{
	"INVALID_OUTPUT_MODE": {
		"Valid output modes: table, json",
		"Example:                 wifiscan scan -o json",
	},
	"SCAN_FAILED": {
		"Retry with debug logging: wifiscan scan --debug",
	},
}

// GetSuggestions returns actionable hints based on error code.
func GetSuggestions(errorCode string) []string {
	hints := builtinSuggestions[errorCode]
	if len(hints) == 0 {
		return nil
	}
	out := make([]string, len(hints))
	copy(out, hints)
	return out
}
