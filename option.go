package stencil

import (
	"io"
	"os"
	"strings"
)

// Config holds the global configuration for a processing pass.
type Config struct {
	// GeneratedExtension is the extension (without the leading dot) given to
	// output files. Defaults to "go".
	GeneratedExtension string

	// ForceRebuild regenerates every discovered input regardless of
	// modification times.
	ForceRebuild bool

	// Out receives diagnostics and, in verbose mode, per-file decisions.
	// Defaults to os.Stdout. A clean pass writes nothing.
	Out io.Writer

	// Color enables ANSI color in rendered diagnostics.
	Color bool

	// Verbose prints a line per discovered file with the decision taken.
	Verbose bool
}

// Option configures a processing pass.
type Option func(*Config) error

// WithForceRebuild regenerates every output unconditionally, ignoring
// modification times.
func WithForceRebuild() Option {
	return func(c *Config) error {
		c.ForceRebuild = true
		return nil
	}
}

// WithGeneratedExtension sets the extension given to output files.
// The extension is taken without a leading dot; "go" and ".go" are equivalent.
func WithGeneratedExtension(ext string) Option {
	return func(c *Config) error {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			return NewConfigError("GeneratedExtension", ext, "extension cannot be empty")
		}
		c.GeneratedExtension = ext
		return nil
	}
}

// WithReportWriter sets the writer that receives diagnostics.
func WithReportWriter(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return NewConfigError("ReportWriter", nil, "writer cannot be nil")
		}
		c.Out = w
		return nil
	}
}

// WithColor enables or disables ANSI color in rendered diagnostics.
func WithColor(enabled bool) Option {
	return func(c *Config) error {
		c.Color = enabled
		return nil
	}
}

// WithVerbose prints one line per discovered file with the decision taken.
func WithVerbose() Option {
	return func(c *Config) error {
		c.Verbose = true
		return nil
	}
}

// NewConfig builds a Config from the default values and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		GeneratedExtension: "go",
		Out:                os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
