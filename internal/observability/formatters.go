// Package observability provides logging setup and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/ply/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxStagesToShow is the number of most recent stages displayed
	maxStagesToShow = 8

	timeLayout = "2006-01-02 15:04"
)

// Printer handles formatted output of jobs and applications.
type Printer struct {
	out io.Writer
	now func() time.Time
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, now: time.Now}
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

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func writeJob(sb *strings.Builder, job types.Job) {
	fmt.Fprintf(sb, "Company:  %s\n", job.Company)
	fmt.Fprintf(sb, "Title:    %s\n", job.Title)
	if job.Team != "" {
		fmt.Fprintf(sb, "Team:     %s\n", job.Team)
	}
	if job.SalaryRange != nil {
		fmt.Fprintf(sb, "Salary:   %s\n", job.SalaryRange)
	}
	if job.ListingURL != "" {
		fmt.Fprintf(sb, "Listing:  %s\n", job.ListingURL)
	}
}

// PrintJob outputs a human-readable summary of an extracted job.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	writeJob(&sb, *job)
	p.printBox("EXTRACTED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplication outputs an application with its status and stage history. ghostAfter
// is how long an active stage may last before the application counts as ghosted.
func (p *Printer) PrintApplication(app *types.Application, ghostAfter time.Duration) {
	if app == nil {
		return
	}

	var sb strings.Builder
	writeJob(&sb, app.Job)
	if app.Cycle != "" {
		fmt.Fprintf(&sb, "Cycle:    %s\n", app.Cycle)
	}
	fmt.Fprintf(&sb, "Applied:  %s\n", app.AppliedAt.Local().Format(timeLayout))
	fmt.Fprintf(&sb, "Status:   %s\n", Status(*app, p.now(), ghostAfter))

	stages := app.Canonical().Stages
	if len(stages) > 0 {
		sb.WriteString("\nStages:\n")
		if len(stages) > maxStagesToShow {
			fmt.Fprintf(&sb, "  ... %d earlier\n", len(stages)-maxStagesToShow)
			stages = stages[len(stages)-maxStagesToShow:]
		}
		for _, s := range stages {
			fmt.Fprintf(&sb, "  • %s  %s", s.StartTime.Local().Format(timeLayout), s.StageType)
			if s.Name != "" {
				fmt.Fprintf(&sb, " (%s)", s.Name)
			}
			if s.Deadline != nil {
				fmt.Fprintf(&sb, " due %s", s.Deadline.Local().Format(timeLayout))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("APPLICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// Status describes where an application stands: its terminal outcome, or whether it is
// ghosted, interviewing or waiting.
func Status(app types.Application, now time.Time, ghostAfter time.Duration) string {
	current, ok := app.CurrentStage()
	switch {
	case !ok:
		return "no stages"
	case current.StageType.IsTerminal():
		return current.StageType.String()
	case ghostAfter > 0 && app.IsGhosted(now, ghostAfter):
		return "ghosted"
	case app.IsInterviewing():
		return "interviewing"
	default:
		return "waiting"
	}
}
