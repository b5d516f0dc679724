// Command felcert certifies Guatemalan FEL electronic tax invoices
// against the SAT business rulebook.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK         = 0 // document is valid
	exitViolations = 1 // document is not valid (has validation errors)
	exitError      = 2 // error occurred (file not found, parse error, etc.)
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return exitError
	}

	switch os.Args[1] {
	case "validate":
		return runValidate(os.Args[2:])
	case "anular":
		return runAnular(os.Args[2:])
	case "info":
		return runInfo(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		return exitError
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: felcert <command> [options]

Commands:
  validate    Validate a DTE against the FEL business rulebook
  anular      Validate a DTE cancellation (anulación)
  info        Show structural information about a DTE

Use "felcert <command> --help" for more information about a command.
`)
}
