package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsekit/json"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON file and print the reformatted document",
		Long: `Parse a JSON file (or standard input when no file is given) and print
the document reformatted. Parsing uses this module's own grammar, so the
command doubles as a validator: a malformed document prints a positional
diagnostic and exits non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read json file: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			value, err := json.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse json: %w", err)
			}

			encoder := json.NewEncoder(os.Stdout)
			if !compact {
				encoder.SetIndent("  ")
			}
			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact single-line output")

	return cmd
}
