// Package main provides the themepal CLI entry point.
// themepal normalizes or semantically remaps the colors of a YAML theme against a markdown palette.
package main

import (
	"os"

	"themepal/internal/cli"
	"themepal/internal/output"
)

func main() {
	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()

	if err := rootCmd.Execute(); err != nil {
		output.NewPrinter(output.WithWriter(os.Stderr), output.PlainText()).Error(err.Error())
		os.Exit(1)
	}
}
