package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	felcert "github.com/rkingkong/validor-fel-sat-gt"
)

// InfoResult is the CLI-facing shape of a structural document summary.
type InfoResult struct {
	File     string   `json:"file"`
	Document *DocInfo `json:"document,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// DocInfo mirrors the fields a certifier operator cares about at a
// glance, without running the business-rule groups.
type DocInfo struct {
	Type          string `json:"type"`
	Serie         string `json:"serie,omitempty"`
	Numero        uint64 `json:"numero,omitempty"`
	EmisorNIT     string `json:"emisor_nit,omitempty"`
	ReceptorID    string `json:"receptor_id,omitempty"`
	Currency      string `json:"currency,omitempty"`
	GrandTotal    string `json:"grand_total"`
	ItemCount     int    `json:"item_count"`
	Emission      string `json:"emission,omitempty"`
	Authorization string `json:"authorization,omitempty"`
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "text", "Output format: text, json")
	fs.Usage = infoUsage
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		infoUsage()
		return exitError
	}
	filename := fs.Arg(0)

	result := infoFile(filename)

	switch format {
	case "json":
		outputInfoJSON(result)
	case "text":
		outputInfoText(result)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use 'text' or 'json')\n", format)
		return exitError
	}

	if result.Error != "" {
		return exitError
	}
	return exitOK
}

// infoFile projects a document without running the business-rule groups,
// for quick inspection of a DTE's shape ahead of a full validate/anular
// run (spec.md §2).
func infoFile(filename string) InfoResult {
	result := InfoResult{File: filename}

	xmlBytes, err := os.ReadFile(filename)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	doc, err := felcert.ProjectDocument(xmlBytes)
	if err != nil {
		result.Error = fmt.Sprintf("failed to parse document: %v", err)
		return result
	}

	info := &DocInfo{
		Type:       string(doc.Type),
		Serie:      doc.Serie,
		Numero:     doc.Numero,
		EmisorNIT:  doc.EmisorNIT,
		ReceptorID: doc.ReceptorID,
		Currency:   doc.Currency,
		GrandTotal: doc.GrandTotal.StringFixed(2),
		ItemCount:  len(doc.Items),
	}
	if !doc.EmissionTimestamp.IsZero() {
		info.Emission = doc.EmissionTimestamp.Format("2006-01-02T15:04:05Z07:00")
	}
	if doc.AuthorizationID != nil {
		info.Authorization = doc.AuthorizationID.String()
	}
	result.Document = info

	return result
}

func outputInfoText(result InfoResult) {
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
		return
	}
	d := result.Document
	fmt.Printf("File:          %s\n", result.File)
	fmt.Printf("Type:          %s\n", d.Type)
	if d.Serie != "" {
		fmt.Printf("Serie/Numero:  %s-%d\n", d.Serie, d.Numero)
	}
	fmt.Printf("Emisor NIT:    %s\n", d.EmisorNIT)
	fmt.Printf("Receptor ID:   %s\n", d.ReceptorID)
	fmt.Printf("Currency:      %s\n", d.Currency)
	fmt.Printf("Grand total:   %s\n", d.GrandTotal)
	fmt.Printf("Items:         %d\n", d.ItemCount)
	if d.Emission != "" {
		fmt.Printf("Emission:      %s\n", d.Emission)
	}
	if d.Authorization != "" {
		fmt.Printf("Authorization: %s\n", d.Authorization)
	}
}

func outputInfoJSON(result InfoResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

func infoUsage() {
	fmt.Fprintf(os.Stderr, `Usage: felcert info [options] <file>

Shows structural information about a DTE without running the business
rule groups: type, serie/numero, parties, totals, item count.

Options:
  --format string   Output format: text, json (default "text")
  --help            Show this help message

Exit codes:
  0  success
  2  error occurred (file not found, parse error, etc.)

Examples:
  felcert info dte.xml
  felcert info --format json dte.xml
`)
}
