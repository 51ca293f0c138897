// Package diag is the diagnostics sink for structural problems found while
// converting: conflicting pitch mappings, unmatched note offs and the like.
// Conversions take an injected Sink so tests can assert on warnings without
// capturing output streams.
package diag

import (
	"fmt"
	"log/slog"
	"os"
)

type Sink interface {
	Warnf(format string, args ...any)
}

type logSink struct {
	logger *slog.Logger
}

// NewLogSink returns a Sink that writes to stdout via slog.
func NewLogSink() Sink {
	h := slog.NewTextHandler(os.Stdout, nil)
	return &logSink{logger: slog.New(h)}
}

func (s *logSink) Warnf(format string, args ...any) {
	s.logger.Warn(fmt.Sprintf(format, args...))
}

// Collector records warnings instead of printing them.
type Collector struct {
	Warnings []string
}

func (c *Collector) Warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
