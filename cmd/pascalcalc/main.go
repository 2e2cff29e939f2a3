// Command pascalcalc prints a row of Pascal's triangle, evaluates the
// polynomial it defines, times the generation of a larger row and appends
// the measurement to a log file.
package main

import (
	"os"

	"github.com/agbru/pascalcalc/internal/app"
	apperrors "github.com/agbru/pascalcalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		// The flag set has already written the usage or the error to stderr.
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(os.Stdout))
}
