package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <pattern>...",
	Short: "Run the scripts of SVG files",
	Long: `Run compiles every script of each matching file, runs them with the main
script last and writes the file when all succeed. Patterns may use **.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expand(args)
		if err != nil {
			return err
		}
		failed := 0
		for _, file := range files {
			ok, err := runFile(cmd.Context(), file, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
			}
			if !ok || err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(files))
		}
		return nil
	},
}

// runFile executes the scripts of one file and writes the result to
// its output path. Script failures are reported on stderr and leave the
// file alone.
func runFile(ctx context.Context, file string, stdout, stderr io.Writer) (bool, error) {
	doc, h, err := open(file, stdout, stderr)
	if err != nil {
		return false, err
	}
	ok, results := h.ExecuteAll(ctx)
	if !ok {
		report(stderr, file, results)
		return false, nil
	}
	slog.Debug("scripts ran", "file", file, "count", len(results))
	return true, save(doc, cfg.OutputPath(file))
}

func init() {
	rootCmd.AddCommand(runCmd)
}
