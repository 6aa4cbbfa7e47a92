// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobtracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// noMatches is shown when a query filters out every job
	noMatches = "No jobs match your criteria"
)

// Printer handles formatted output for the CLI commands
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintJobs outputs one card per job in the view, or the empty-state message.
func (p *Printer) PrintJobs(view types.DerivedView) {
	var sb strings.Builder

	if view.Applied {
		sb.WriteString(fmt.Sprintf("%s\n\n", describeQuery(view.Query)))
	}

	if len(view.Jobs) == 0 {
		sb.WriteString(noMatches)
		p.printBox("JOB ANALYTICS", sb.String())
		return
	}

	for i, job := range view.Jobs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", job.ID, job.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", job.Company))
		sb.WriteString(fmt.Sprintf("    [%s] [%s]\n", job.Location, job.Type))
		sb.WriteString(fmt.Sprintf("    %s", job.Salary))
		if i < len(view.Jobs)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox(fmt.Sprintf("JOB ANALYTICS (%d)", view.Count), sb.String())
}

func describeQuery(q types.Query) string {
	parts := make([]string, 0, 3)
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", q.Search))
	}
	if q.Location != "" {
		parts = append(parts, fmt.Sprintf("location=%q", q.Location))
	}
	if k := types.ParseSortKey(string(q.Sort)); k != types.SortNone {
		parts = append(parts, "sort="+string(k))
	}
	return "Filters: " + strings.Join(parts, " ")
}

// PrintResumeForm outputs the parsed resume fields.
func (p *Printer) PrintResumeForm(file types.UploadedFile, form types.ResumeForm) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s (%d bytes)\n\n", file.Name, file.Size))

	for i, name := range types.ResumeFields {
		value, _ := form.Field(name)
		sb.WriteString(fmt.Sprintf("%-11s %s", types.FieldLabel(name)+":", value))
		if i < len(types.ResumeFields)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PARSED INFORMATION", sb.String())
}

// PrintLoginResult outputs the validation outcome of a login form.
func (p *Printer) PrintLoginResult(result types.LoginResult) {
	if result.Valid {
		p.printBox("LOGIN", "Login successful!")
		return
	}

	var lines []string
	if result.EmailError != nil {
		lines = append(lines, "Email:    "+*result.EmailError)
	}
	if result.PasswordError != nil {
		lines = append(lines, "Password: "+*result.PasswordError)
	}
	p.printBox("LOGIN FAILED", strings.Join(lines, "\n"))
}

// PrintNotice outputs a one-line status message.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotice(message string) {
	fmt.Fprintf(p.out, "» %s\n", message)
}
