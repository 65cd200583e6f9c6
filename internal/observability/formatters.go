// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of one resume document.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ID:        %s\n", r.ID))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", r.Template))
	sb.WriteString(fmt.Sprintf("Owner:     %s\n", r.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Updated:   %s\n", r.UpdatedAt))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experiences:  %d\n", len(r.Experiences)))
	sb.WriteString(fmt.Sprintf("Education:    %d\n", len(r.Education)))
	sb.WriteString(fmt.Sprintf("Skills:       %d\n", len(r.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:     %d\n", len(r.Projects)))
	sb.WriteString(fmt.Sprintf("Certificates: %d\n", len(r.Certificates)))
	sb.WriteString(fmt.Sprintf("Languages:    %d\n", len(r.Languages)))

	visible := make([]string, 0, len(r.Sections))
	for _, sec := range r.Sections {
		if sec.Visible {
			visible = append(visible, string(sec.Type))
		}
	}
	if len(visible) > 0 {
		sb.WriteString("\nVisible sections:\n")
		count := min(len(visible), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", visible[i]))
		}
		if len(visible) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(visible)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("Resume: %s", r.Name), strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeList outputs the resume collection with the active one marked.
func (p *Printer) PrintResumeList(resumes []*types.Resume, activeID string) {
	var sb strings.Builder

	for _, r := range resumes {
		marker := " "
		if r.ID == activeID {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n", marker, r.ID, r.Name))
	}
	if len(resumes) == 0 {
		sb.WriteString("(no resumes)\n")
	}

	p.printBox(fmt.Sprintf("Resumes (%d)", len(resumes)), strings.TrimRight(sb.String(), "\n"))
}

// PrintExportResult outputs the outcome of an export job.
func (p *Printer) PrintExportResult(filename string, err error) {
	var sb strings.Builder
	if err != nil {
		sb.WriteString("Status: failed\n")
		sb.WriteString(fmt.Sprintf("Reason: %v", err))
	} else {
		sb.WriteString("Status: succeeded\n")
		sb.WriteString(fmt.Sprintf("Output: %s", filename))
	}
	p.printBox("PDF Export", sb.String())
}
