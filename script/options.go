package script

import (
	"io"
	"log/slog"
)

// options holds the configuration of a Host.
type options struct {
	engine Engine
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option defines a functional option for configuring a Host.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		engine: NewYaegi(),
		logger: slog.Default(),
		stdout: io.Discard,
		stderr: io.Discard,
	}
}

// WithEngine replaces the yaegi engine.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithLogger sets the logger for the host.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStdout sets where scripts print.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr sets where the interpreter reports.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}
