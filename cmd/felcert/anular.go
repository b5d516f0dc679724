package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	felcert "github.com/rkingkong/validor-fel-sat-gt"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/schema"
)

// runAnular validates a cancellation (anulación) document: the same
// pipeline as validate, but against the cancellation schema variant
// (felcert.WithCancellation) per spec.md §2.
func runAnular(args []string) int {
	fs := flag.NewFlagSet("anular", flag.ExitOnError)
	var format string
	var schemaCacheDir string
	fs.StringVar(&format, "format", "text", "Output format: text, json")
	fs.StringVar(&schemaCacheDir, "schema-cache", "", "Override schema cache directory")
	fs.Usage = anularUsage
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		anularUsage()
		return exitError
	}
	filename := fs.Arg(0)

	result := anularFile(filename, schemaCacheDir)

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

func anularFile(filename, schemaCacheDir string) Result {
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
		felcert.WithCancellation(),
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

func anularUsage() {
	fmt.Fprintf(os.Stderr, `Usage: felcert anular [options] <file>

Validates a DTE cancellation (anulación) against the FEL cancellation
schema and the same business rule groups that validate runs.

Options:
  --format string         Output format: text, json (default "text")
  --schema-cache string   Override the on-disk schema cache directory
  --help                  Show this help message

Exit codes:
  0  document is valid
  1  document is not valid (has validation errors)
  2  error occurred (file not found, parse error, etc.)

Examples:
  felcert anular anulacion.xml
  felcert anular --format json anulacion.xml
`)
}
