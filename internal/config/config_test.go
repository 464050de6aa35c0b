package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "output_suffix: .out\nindent: 2\nlog_level: debug\ndry_run: true\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{OutputSuffix: ".out", Indent: 2, LogLevel: "debug", DryRun: true}, c)

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 0, c.Indent)
	assert.False(t, c.DryRun)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative indent", "indent: -1\n"},
		{"unknown level", "log_level: loud\n"},
		{"separator in suffix", "output_suffix: out/x\n"},
		{"not yaml", "indent: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), err.Error())
		})
	}
}

func TestOutputPath(t *testing.T) {
	c := Default()
	assert.Equal(t, "dir/a.svg", c.OutputPath("dir/a.svg"))

	c.OutputSuffix = ".out"
	assert.Equal(t, "dir/a.out.svg", c.OutputPath("dir/a.svg"))
	assert.Equal(t, "dir.v2/a.out", c.OutputPath("dir.v2/a"))
}
