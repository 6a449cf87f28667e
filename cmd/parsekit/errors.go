package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/parsekit/parser"
	"github.com/pterm/pterm"
)

// renderError formats a parse failure for the terminal: the composed message
// in red with the failure position below it. Plain output keeps the single
// rendered diagnostic line for logs and non-terminal consumers.
func renderError(err error, plain bool) string {
	if plain {
		return err.Error()
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return pterm.Red(err.Error())
	}
	found := "end of input"
	if perr.Found != "" {
		found = fmt.Sprintf("'%s'", perr.Found)
	}
	return pterm.Red(perr.Message) + "\n  " + pterm.Gray(fmt.Sprintf("at offset %d, found %s", perr.Offset, found))
}
