// Package errors defines the error kinds surfaced by lifetrack and the
// helpers the CLI uses to print them.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/lifetrack/internal/logger"
)

var (
	// ErrValidation marks input that was rejected before any write happened.
	ErrValidation = stderrors.New("validation failed")

	// ErrStorage marks a failed read or write against the underlying database.
	ErrStorage = stderrors.New("storage failure")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = stderrors.New("record not found")

	// ErrReferentialIntegrity marks a cascade that could not complete.
	// The surrounding transaction is rolled back, so no orphans remain.
	ErrReferentialIntegrity = stderrors.New("referential integrity violation")

	// ErrCacheRefresh marks a failed daily completion refresh that followed a
	// successful primary write. The primary record stays saved.
	ErrCacheRefresh = stderrors.New("daily completion refresh failed")
)

// Validationf returns an ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Storage wraps a database failure for the named operation.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// NotFoundf returns an ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// IsWarning reports whether err only describes a secondary failure after a
// committed write.
func IsWarning(err error) bool {
	return err != nil && stderrors.Is(err, ErrCacheRefresh)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
