package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vasalvit/svgscript/script"
)

var setFrom string

var setCmd = &cobra.Command{
	Use:   "set <file> <script>",
	Short: "Replace the source of a script",
	Long: `Set reads new source for an existing script from --from, or from stdin when
--from is - or omitted, checks its syntax and saves the file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, h, err := open(args[0], io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		s, err := h.Script(args[1])
		if err != nil {
			return err
		}
		src, err := readSource(setFrom, cmd.InOrStdin())
		if err != nil {
			return err
		}
		s.SetSource(src)
		if r := s.Compile(script.NewYaegi()); !r.OK() {
			return r.Err
		}
		return save(doc, args[0])
	},
}

// readSource reads a script from path, or from stdin when path is - or empty.
func readSource(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("error reading source: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&setFrom, "from", "-", "File holding the new source, - for stdin")
}
