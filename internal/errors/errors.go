// Package errors turns command failures into the message printed on exit.
package errors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/storage"
)

var hints = []struct {
	target error
	hint   string
}{
	{storage.ErrNotInitialized, "Run 'sanctum init', or point --data (SANCTUM_DATA) at an existing data directory."},
	{storage.ErrLocked, "Close the other sanctum session and retry. A lock left by a crashed process clears itself."},
	{quest.ErrQuestActive, "Finish the current quest or run 'sanctum quest abandon' first."},
	{quest.ErrNoActiveQuest, "Start one with 'sanctum quest start'."},
	{quest.ErrDateOutOfRange, "Quest days can be logged from the start date up to today."},
}

// Hint suggests a next step for well-known failures, or "" when there is none
func Hint(err error) string {
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
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

// Report writes the formatted error and its hint to w
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// Fatal logs err, reports it on stderr and exits with code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		Report(os.Stderr, err)
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
