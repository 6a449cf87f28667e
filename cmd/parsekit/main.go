package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsekit",
		Short: "Parser combinators with a JSON parser and a calculator on top",
	}

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
