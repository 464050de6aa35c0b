package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file> <script>",
	Short: "Print the source of a script",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, h, err := open(args[0], io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		s, err := h.Script(args[1])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s.Source())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
