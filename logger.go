package book

import (
	"fmt"
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger replaces the package-level logger used by the Matcher.
// The Order Book's own Add/Cancel never log: matching is a total function
// over a valid book state and has nothing to report.
func SetLogger(l *slog.Logger) {
	logger = l
}

// NewFileLogger opens filename for append and returns a JSON slog.Logger
// writing to it. This is the one fallible setup path a collaborator has
// (§7's LoggerError): callers are expected to treat a non-nil error as
// fatal at startup.
func NewFileLogger(filename string) (*slog.Logger, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", filename, err)
	}
	return slog.New(slog.NewJSONHandler(f, nil)), nil
}
