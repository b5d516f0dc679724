package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/term"

	felcert "github.com/rkingkong/validor-fel-sat-gt"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/schema"
)

// Result is the CLI-facing shape of a validation run.
type Result struct {
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Document *DocumentRef      `json:"document,omitempty"`
	Errors   []felcert.Finding `json:"errors,omitempty"`
	Warnings []felcert.Finding `json:"warnings,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// DocumentRef is basic metadata about the validated document.
type DocumentRef struct {
	Type   string `json:"type"`
	Serie  string `json:"serie,omitempty"`
	Numero uint64 `json:"numero,omitempty"`
}

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var format string
	var schemaCacheDir string
	fs.StringVar(&format, "format", "text", "Output format: text, json")
	fs.StringVar(&schemaCacheDir, "schema-cache", "", "Override schema cache directory")
	fs.Usage = validateUsage
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		validateUsage()
		return exitError
	}
	filename := fs.Arg(0)

	result := validateFile(filename, schemaCacheDir)

	switch format {
	case "json":
		outputJSON(result)
	case "text":
		outputText(result)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use 'text' or 'json')\n", format)
		return exitError
	}

	if result.Error != "" {
		return exitError
	}
	if !result.Valid {
		return exitViolations
	}
	return exitOK
}

func validateFile(filename, schemaCacheDir string) Result {
	result := Result{File: filename}

	xmlBytes, err := os.ReadFile(filename)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	cfg := config.Load()
	if schemaCacheDir != "" {
		cfg.SchemaCacheDir = schemaCacheDir
	}

	cache := schema.NewCache(cfg.SchemaCacheDir, cfg.SchemaBaseURL, cfg.SchemaRefreshPeriod(), nil)
	resolver := schema.NewResolver(cache)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout())
	defer cancel()

	verdict, err := felcert.Validate(ctx, xmlBytes,
		felcert.WithOptions(cfg),
		felcert.WithSchemaResolver(resolver),
	)
	if err != nil {
		result.Error = fmt.Sprintf("validation failed: %v", err)
		return result
	}

	result.Valid = verdict.IsValid
	result.Errors = verdict.Errors
	result.Warnings = verdict.Warnings
	result.Document = &DocumentRef{Type: verdict.DocumentType}

	return result
}

// detectTerminalWidth reports the width to wrap finding messages at: the
// real terminal width when stdout is a tty, $COLUMNS, or a fixed default.
func detectTerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}
	return 80
}

// wrapMessage indents continuation lines of a finding message so it stays
// within width columns instead of running off a narrow terminal.
func wrapMessage(prefix, message string, width int) string {
	budget := width - len(prefix)
	if budget < 20 || len(message) <= budget {
		return prefix + message
	}
	var b strings.Builder
	b.WriteString(prefix)
	line := 0
	indent := strings.Repeat(" ", len(prefix))
	for i, word := range strings.Fields(message) {
		if i > 0 {
			if line+1+len(word) > budget {
				b.WriteString("\n")
				b.WriteString(indent)
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}

func outputText(result Result) {
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
		return
	}

	width := detectTerminalWidth()

	if result.Valid {
		fmt.Printf("✓ %s is valid\n", result.File)
	} else {
		fmt.Printf("✗ %s has %d error(s)\n", result.File, len(result.Errors))
		for _, f := range result.Errors {
			fmt.Println(wrapMessage(fmt.Sprintf("  - %s: ", f.Code), f.Message, width))
		}
	}
	for _, f := range result.Warnings {
		fmt.Println(wrapMessage(fmt.Sprintf("  ! %s: ", f.Code), f.Message, width))
	}
}

func outputJSON(result Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

func validateUsage() {
	fmt.Fprintf(os.Stderr, `Usage: felcert validate [options] <file>

Validates a DTE XML document against the FEL business rulebook.

Options:
  --format string         Output format: text, json (default "text")
  --schema-cache string   Override the on-disk schema cache directory
  --help                  Show this help message

Exit codes:
  0  document is valid
  1  document is not valid (has validation errors)
  2  error occurred (file not found, parse error, etc.)

Examples:
  felcert validate dte.xml
  felcert validate --format json dte.xml
`)
}
