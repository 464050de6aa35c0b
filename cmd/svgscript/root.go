package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vasalvit/svgscript/internal/config"
)

var (
	verbose    bool
	dryRun     bool
	configPath string
	cfg        = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svgscript",
	Short: "Run Go scripts stored inside SVG documents",
	Long: `svgscript keeps Go snippets in <script type="text/x-go"> nodes of an SVG file
and runs them against the document. Scripts build and edit paths through the svg
package; when any of them fails the document is left untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		if dryRun {
			cfg.DryRun = true
		}

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Run scripts without writing files")
}
