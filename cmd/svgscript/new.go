package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var newFrom string

var newCmd = &cobra.Command{
	Use:   "new <file> [name]",
	Short: "Add a script to an SVG file",
	Long: `New creates a script node with placeholder source, or with the source read
from --from, and saves the file. Without a name one is generated. An existing
script of the same name is kept.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, h, err := open(args[0], io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		name := "script-" + uuid.NewString()[:8]
		if len(args) == 2 {
			name = args[1]
		}
		s := h.CreateScript(name)
		if newFrom != "" {
			src, err := readSource(newFrom, cmd.InOrStdin())
			if err != nil {
				return err
			}
			s.SetSource(src)
		}
		if err := save(doc, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newFrom, "from", "", "File holding the source, - for stdin")
}
