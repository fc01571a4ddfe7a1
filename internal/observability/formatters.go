// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/advert-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLines is how many advert lines PrintResult shows
	previewLines = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to the inner box width.
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// PrintJobForm outputs the normalized form input about to be submitted.
func (p *Printer) PrintJobForm(input types.JobFormInput) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:      %s\n", input.JobTitle))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", input.Location))
	if input.Location.OffersRelocation() {
		sb.WriteString(fmt.Sprintf("Relocation: %s\n", input.RelocationFlag()))
	}

	notes := strings.Split(strings.TrimSpace(input.RawNotes), "\n")
	sb.WriteString(fmt.Sprintf("Notes:      %d line(s)\n", len(notes)))
	sb.WriteString(fmt.Sprintf("  %s", notes[0]))

	p.printBox("JOB FORM", sb.String())
}

// PrintResult outputs the outcome of a generation with a short preview.
func (p *Printer) PrintResult(result types.GenerationResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	if result.ID != "" {
		sb.WriteString(fmt.Sprintf("ID:     %s\n", result.ID))
	}

	switch result.Status {
	case types.StatusFailed:
		sb.WriteString(fmt.Sprintf("\n%s\n", result.ErrorMessage))
	case types.StatusSuccess:
		lines := strings.Split(strings.TrimSpace(result.Content), "\n")
		sb.WriteString(fmt.Sprintf("Lines:  %d\n\n", len(lines)))
		count := min(len(lines), previewLines)
		for _, line := range lines[:count] {
			sb.WriteString(line + "\n")
		}
		if len(lines) > previewLines {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(lines)-previewLines))
		}
	}

	p.printBox("GENERATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
