package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/futils/internal/cli"
	"github.com/arthur-debert/futils/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if stderrors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
