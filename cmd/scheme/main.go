// Command scheme is the process entry point: it either evaluates a file
// argument or drops into a line-oriented REPL, printing each result
// interp.Run produces or reporting the error kind to stderr.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/belskiyanton/Scheme-Object-Interpreter/interp"
	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
)

func main() {
	root := NewCommand(
		"scheme [file]",
		"Evaluate a Scheme-dialect source file, or start a REPL with no arguments",
		"  scheme program.scm\n  scheme",
		runRoot,
	)
	root.Flags().String("log-file", "", "directory to write rotating JSON logs into")
	root.Flags().BoolP("verbose", "v", false, "raise log level to debug")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(c *Command, args []string) error {
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	interp.SetVerbose(verbose)

	logFile, err := c.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	if logFile != "" {
		if err := interp.EnableFileLogging(logFile, "scheme"); err != nil {
			return err
		}
	}

	if len(args) > 0 {
		return runFile(args[0])
	}
	return runREPL()
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, err := interp.Run(string(source))
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
	fmt.Println(out)
	return nil
}

func runREPL() error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Print("> ")
			continue
		}

		out, err := interp.Run(line)
		if err != nil {
			reportError(err)
		} else {
			fmt.Println(out)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return scanner.Err()
}

func reportError(err error) {
	switch {
	case scmerr.IsSyntax(err):
		fmt.Fprintf(os.Stderr, "syntax-error: %v\n", err)
	case scmerr.IsName(err):
		fmt.Fprintf(os.Stderr, "name-error: %v\n", err)
	case scmerr.IsRuntime(err):
		fmt.Fprintf(os.Stderr, "runtime-error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
