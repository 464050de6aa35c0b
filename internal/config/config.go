// Package config loads the svgscript command line configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".svgscript.yaml"

// ErrConfiguration indicates an invalid configuration.
var ErrConfiguration = errors.New("configuration error")

// Config holds the settings of the svgscript command.
type Config struct {
	// OutputSuffix is inserted before the extension of written files.
	// Empty means the input file is overwritten.
	OutputSuffix string `yaml:"output_suffix"`

	// Indent reformats written documents with this many spaces per level.
	// Zero keeps the layout of the input.
	Indent int `yaml:"indent"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// DryRun runs the scripts without writing anything.
	DryRun bool `yaml:"dry_run"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads the configuration at path. An empty path means FileName in
// the working directory; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return c, nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	var problems []string
	if c.Indent < 0 {
		problems = append(problems, fmt.Sprintf("indent must not be negative, got %d", c.Indent))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err.Error())
	}
	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		problems = append(problems, fmt.Sprintf("output_suffix must not contain a path separator, got %q", c.OutputSuffix))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
}

// OutputPath returns where a document read from input is written.
func (c *Config) OutputPath(input string) string {
	if c.OutputSuffix == "" {
		return input
	}
	dot := strings.LastIndex(input, ".")
	if dot <= strings.LastIndexAny(input, `/\`) {
		return input + c.OutputSuffix
	}
	return input[:dot] + c.OutputSuffix + input[dot:]
}
