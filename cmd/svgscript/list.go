package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the scripts of an SVG file",
	Long:  `List prints one line per script: label, id and a * for the main script, which runs last.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, h, err := open(args[0], io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		for _, s := range h.Scripts() {
			mark := ""
			if s.IsMain() {
				mark = " *"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\n", s.Label(), s.ID, mark)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
