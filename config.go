package smtpcmd

import (
	"log/slog"
)

const (
	// DefaultMaxLineLength is the RFC 5321 Section 4.5.3.1.4 command line
	// limit, CRLF included.
	DefaultMaxLineLength = 512

	// DefaultMaxAuthLineLength is the RFC 4954 Section 4 limit for AUTH
	// command and response lines, CRLF included.
	DefaultMaxAuthLineLength = 12288
)

// WriterConfig holds configuration for a Writer.
type WriterConfig struct {
	// Logger receives one Debug record per command written.
	// AUTH payloads are redacted. Default: slog.Default().
	Logger *slog.Logger

	// MaxLineLength limits every non-AUTH command line.
	// Default: DefaultMaxLineLength. Negative disables the check.
	MaxLineLength int

	// MaxAuthLineLength limits AUTH commands and continuation lines.
	// Default: DefaultMaxAuthLineLength. Negative disables the check.
	MaxAuthLineLength int
}

// DefaultWriterConfig returns a WriterConfig with sensible defaults.
func DefaultWriterConfig() *WriterConfig {
	return &WriterConfig{
		Logger:            slog.Default(),
		MaxLineLength:     DefaultMaxLineLength,
		MaxAuthLineLength: DefaultMaxAuthLineLength,
	}
}

func (c WriterConfig) withDefaults() WriterConfig {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MaxLineLength == 0 {
		c.MaxLineLength = DefaultMaxLineLength
	}
	if c.MaxAuthLineLength == 0 {
		c.MaxAuthLineLength = DefaultMaxAuthLineLength
	}
	return c
}
