package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/csvtrim/csvtrim/internal/engine"
	"github.com/csvtrim/csvtrim/internal/table"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapFileError wraps data-file access errors with user-friendly context
func WrapFileError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to read %s", path),
		Reason:  extractFileReason(err),
		Hint:    "Input files are read as CSV unless they end in .xlsx",
		Try:     "csvtrim run",
		Err:     err,
	}
}

// WrapApplyError wraps profile application errors with user-friendly context
func WrapApplyError(err error, profileName, input string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Profile %q could not be applied to %s", profileName, input),
		Reason:  extractApplyReason(err),
		Hint:    "The file was left untouched and no output was written",
		Try:     fmt.Sprintf("csvtrim profiles show %s", profileName),
		Err:     err,
	}
}

// WrapProfileError wraps profile lookup errors with user-friendly context
func WrapProfileError(err error, profileName string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("No trimming profile named %q", profileName),
		Reason:  err.Error(),
		Hint:    "Profile names are matched exactly, including case",
		Try:     "csvtrim profiles list",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "The config is YAML; csvtrim writes a default file on first run",
		Try:     fmt.Sprintf("csvtrim run --config %s", configPath),
		Err:     err,
	}
}

// WrapStoreError wraps profile store load/save errors with user-friendly context
func WrapStoreError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Profile store %s could not be used", path),
		Reason:  extractFileReason(err),
		Hint:    "The store is a JSON object mapping profile names to profiles",
		Try:     "csvtrim profiles list",
		Err:     err,
	}
}

func extractFileReason(err error) string {
	if stderrors.Is(err, os.ErrNotExist) {
		return "The file does not exist"
	}
	if stderrors.Is(err, os.ErrPermission) {
		return "Permission denied"
	}

	errStr := err.Error()
	if strings.Contains(errStr, "is a directory") {
		return "The path is a directory, not a file"
	}
	if strings.Contains(errStr, "wrong number of fields") || strings.Contains(errStr, "bare \" in") {
		return "The file is not well-formed CSV"
	}

	return "The file could not be read"
}

func extractApplyReason(err error) string {
	var rangeErr table.OutOfRangeError
	if stderrors.As(err, &rangeErr) {
		return fmt.Sprintf("Column index %d does not exist: the table has %d columns at that point in the pipeline",
			rangeErr.Index, rangeErr.Columns)
	}

	var parseErr engine.ParseError
	if stderrors.As(err, &parseErr) {
		return fmt.Sprintf("Row %d holds %q, which is not a recognizable date-time", parseErr.Row, parseErr.Value)
	}

	var cfgErr engine.ConfigError
	if stderrors.As(err, &cfgErr) {
		return fmt.Sprintf("Step %s cannot run on this table: %s", cfgErr.Step, cfgErr.Reason)
	}

	return "A trimming step failed"
}
