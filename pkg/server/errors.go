package server

import (
	"errors"
	"fmt"
)

const (
	errorCodeInvalidPort       = "SERVER_INVALID_PORT"
	errorCodeFeaturesDisabled  = "SERVER_FEATURES_DISABLED"
	errorCodeConfigUnavailable = "SERVER_CONFIG_UNAVAILABLE"
	errorCodeInvalidConfig     = "SERVER_INVALID_CONFIG"
	errorCodeUIInitFailed      = "SERVER_UI_INIT_FAILED"
	errorCodeAppInitFailed     = "SERVER_INIT_FAILED"
	errorCodeRuntimeFailed     = "SERVER_RUNTIME_FAILED"
)

var (
	// ErrInvalidPort indicates an invalid port flag value.
	ErrInvalidPort = errors.New("invalid port")
	// ErrFeaturesDisabled indicates UI and API were both disabled.
	ErrFeaturesDisabled = errors.New("ui and api disabled")
	// ErrConfigUnavailable indicates the CLI context lacked a config manager.
	ErrConfigUnavailable = errors.New("config manager unavailable")
)

type errorCoder interface {
	error
	Code() string
}

type withCodeError struct {
	error
	code string
}

func (e *withCodeError) Code() string {
	return e.code
}

func (e *withCodeError) Unwrap() error {
	return e.error
}

// WithErrorCode annotates err with a server error code.
func WithErrorCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &withCodeError{error: err, code: code}
}

// NewInvalidPortError formats an invalid port error with context.
func NewInvalidPortError(port int) error {
	return WithErrorCode(fmt.Errorf("%w: invalid port %d: must be between 1 and 65535", ErrInvalidPort, port), errorCodeInvalidPort)
}

// NewFeaturesDisabledError reports mutually-disabled UI/API flags.
func NewFeaturesDisabledError() error {
	return WithErrorCode(fmt.Errorf("%w: cannot disable both UI and API: at least one must be enabled", ErrFeaturesDisabled), errorCodeFeaturesDisabled)
}

// WrapInvalidConfig annotates server config validation errors.
func WrapInvalidConfig(err error) error {
	if err == nil {
		return nil
	}
	return WithErrorCode(fmt.Errorf("invalid server configuration: %w", err), errorCodeInvalidConfig)
}

// WrapUIInit annotates static asset handler failures.
func WrapUIInit(err error) error {
	if err == nil {
		return nil
	}
	return WithErrorCode(err, errorCodeUIInitFailed)
}

// WrapAppInit annotates server app creation failures. Errors that already
// carry a code keep it.
func WrapAppInit(err error) error {
	if err == nil {
		return nil
	}
	var coded errorCoder
	if errors.As(err, &coded) {
		return err
	}
	return WithErrorCode(err, errorCodeAppInitFailed)
}

// WrapRuntime annotates server runtime failures.
func WrapRuntime(err error) error {
	if err == nil {
		return nil
	}
	return WithErrorCode(err, errorCodeRuntimeFailed)
}

// ErrorCode resolves a server error to its error code.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var coded errorCoder
	if errors.As(err, &coded) {
		if code := coded.Code(); code != "" {
			return code
		}
	}

	switch {
	case errors.Is(err, ErrInvalidPort):
		return errorCodeInvalidPort
	case errors.Is(err, ErrFeaturesDisabled):
		return errorCodeFeaturesDisabled
	case errors.Is(err, ErrConfigUnavailable):
		return errorCodeConfigUnavailable
	default:
		return errorCodeRuntimeFailed
	}
}

// ExitCode maps server errors to CLI exit codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrInvalidPort),
		errors.Is(err, ErrFeaturesDisabled),
		ErrorCode(err) == errorCodeInvalidConfig:
		return 2
	case ErrorCode(err) == errorCodeUIInitFailed,
		ErrorCode(err) == errorCodeAppInitFailed:
		return 7
	default:
		return 1
	}
}

// Suggestions provides CLI hints for server errors.
func Suggestions(err error) []string {
	if err == nil {
		return nil
	}

	switch ErrorCode(err) {
	case errorCodeInvalidPort:
		return []string{
			"Use a port between 1 and 65535",
			"Example:                 wifiscan server start --port 8080",
		}
	case errorCodeFeaturesDisabled:
		return []string{
			"Enable either the UI or the API",
			"Remove one of --no-ui / --no-api",
		}
	case errorCodeConfigUnavailable:
		return []string{
			"Run via the wifiscan CLI so configuration is loaded",
		}
	case errorCodeInvalidConfig:
		return []string{
			"Check configuration values in the config file and WIFISCAN_* variables",
			"Inspect the effective config: wifiscan config show",
		}
	case errorCodeUIInitFailed:
		return []string{
			"Check that --ui-assets-path points to a readable directory",
			"Omit --ui-assets-path to serve the embedded page",
		}
	case errorCodeAppInitFailed:
		return []string{
			"Retry with debug logging: wifiscan server start --debug",
		}
	case errorCodeRuntimeFailed:
		return []string{
			"Check server logs for runtime errors",
			"Ensure no other process is using the selected port",
		}
	default:
		return nil
	}
}
