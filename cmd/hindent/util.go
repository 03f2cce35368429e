package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func red(s string) string {
	return color.New(color.FgRed).Sprint(s)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func disableColor() {
	color.NoColor = true
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

// Determine where the syntax tree comes from. There are two possibilities:
// 1. --stdin (read the JSON document from stdin)
// 2. path as args[0]
func getInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && stdinFlagSet {
		return nil, "", errors.New("multiple input sources specified")
	}
	if stdinFlagSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", err
		}
		return data, "", nil
	}
	if pathSupplied {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", err
		}
		return data, args[0], nil
	}
	return nil, "", errors.New("no input provided")
}
