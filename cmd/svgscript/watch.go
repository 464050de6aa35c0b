package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchOut string

// editors often save with several writes in a row
const settle = 100 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Rerun the scripts of a file whenever it changes",
	Long: `Watch runs the scripts of a file, writes the result to --out, and does so
again on every change of the file until interrupted. The output must differ from
the input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := filepath.Clean(args[0])
		out := watchOut
		if out == "" {
			out = cfg.OutputPath(input)
		}
		if filepath.Clean(out) == input {
			return errors.New("watch needs --out or output_suffix so the input is not overwritten")
		}
		return watch(cmd.Context(), input, out, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func watch(ctx context.Context, input, out string, stdout, stderr io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// the directory is watched since saving may replace the file
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", input, err)
	}

	rebuild := func() {
		doc, h, err := open(input, stdout, stderr)
		if err != nil {
			slog.Error("cannot load", "file", input, "error", err)
			return
		}
		ok, results := h.ExecuteAll(ctx)
		if !ok {
			report(stderr, input, results)
			return
		}
		if err := save(doc, out); err != nil {
			slog.Error("cannot write", "file", out, "error", err)
			return
		}
		slog.Info("rebuilt", "file", input, "out", out)
	}
	rebuild()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("change", "file", input, "op", event.Op.String())
				timer.Reset(settle)
			}
		case <-timer.C:
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("fsnotify error", "error", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output file (default from output_suffix)")
}
