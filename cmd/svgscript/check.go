package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>...",
	Short: "Check the syntax of the scripts of SVG files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expand(args)
		if err != nil {
			return err
		}
		failed := 0
		for _, file := range files {
			n, err := checkFile(file, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
				n++
			}
			failed += n
		}
		if failed > 0 {
			return fmt.Errorf("%d scripts failed to compile", failed)
		}
		return nil
	},
}

// checkFile compiles the scripts of file and returns the number of failures.
func checkFile(file string, stderr io.Writer) (int, error) {
	_, h, err := open(file, io.Discard, stderr)
	if err != nil {
		return 0, err
	}
	_, results := h.CompileAll()
	return report(stderr, file, results), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
