package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dhamidi/parsekit/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "calc [expression]",
		Short: "Evaluate an arithmetic expression, or start a REPL",
		Long: `Evaluate an arithmetic expression over + - * / with unary minus and
parentheses.

With an expression argument the result is printed and the command exits;
a parse failure exits non-zero. Without arguments an interactive loop reads
expressions line by line until EOF or a line equal to exit, quit or q.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				result, err := calc.Evaluate(args[0])
				if err != nil {
					return fmt.Errorf("evaluate: %w", err)
				}
				fmt.Println(formatResult(result))
				return nil
			}
			return runREPL(os.Stdin, os.Stdout, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable colored error output")

	return cmd
}

func runREPL(in io.Reader, out io.Writer, plain bool) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			return nil
		}
		result, err := calc.Evaluate(line)
		if err != nil {
			fmt.Fprintln(out, renderError(err, plain))
			continue
		}
		fmt.Fprintln(out, formatResult(result))
	}
}

func formatResult(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
