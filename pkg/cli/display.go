package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/octolist/pkg/domain/interfaces"
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

const timeDisplayFormat = "January 02, 2006 at 03:04 PM"

// ConsoleDisplay writes the workflow report to out and non-fatal warnings
// (unparseable timestamps) to errW.
type ConsoleDisplay struct {
	out  io.Writer
	errW io.Writer
}

func NewConsoleDisplay() interfaces.Display {
	return &ConsoleDisplay{
		out:  color.Output,
		errW: os.Stderr,
	}
}

// NewConsoleDisplayWithWriters is used by tests to capture output.
func NewConsoleDisplayWithWriters(out, errW io.Writer) interfaces.Display {
	return &ConsoleDisplay{
		out:  out,
		errW: errW,
	}
}

func (d *ConsoleDisplay) ShowFetching(repo model.Repository) {
	fmt.Fprintf(d.out, "🔍 Fetching workflows for %s...\n\n", repo.FullName())
}

func (d *ConsoleDisplay) ShowHeader(totalCount int) {
	fmt.Fprintln(d.out, "🔧 GitHub Workflows Summary")
	fmt.Fprintln(d.out, "═══════════════════════════")
	fmt.Fprintf(d.out, "📊 Total workflows: %d\n\n", totalCount)
}

func (d *ConsoleDisplay) ShowWorkflow(index int, report *model.WorkflowReport) {
	wf := report.Workflow

	fmt.Fprintf(d.out, "🚀 Workflow #%d\n", index)
	fmt.Fprintf(d.out, "📝 Name: %s\n", wf.Name)
	fmt.Fprintf(d.out, "%s State: %s\n", stateIcon(wf.State), wf.State)
	fmt.Fprintf(d.out, "🔄 Is Active: %s\n", activeText(wf.IsActive()))
	fmt.Fprintf(d.out, "🎂 Created: %s\n", d.formatInstant(report.CreatedAt))
	fmt.Fprintf(d.out, "📅 Last Updated: %s\n", d.formatInstant(report.UpdatedAt))
	fmt.Fprintf(d.out, "🏃 Last Run: %s\n", d.lastRunText(report.LastRun))
	fmt.Fprintf(d.out, "%s\n\n", strings.Repeat("━", 52))
}

func stateIcon(state model.WorkflowState) string {
	switch state {
	case model.WorkflowStateActive:
		return "✅"
	case model.WorkflowStateDisabled:
		return "❌"
	default:
		return "❓"
	}
}

func activeText(active bool) string {
	if active {
		return color.New(color.FgGreen).Sprint("Yes ✅")
	}
	return color.New(color.FgRed).Sprint("No ❌")
}

// formatInstant renders a parsed instant in the local timezone, or falls
// back to the raw text with a warning on the error writer.
func (d *ConsoleDisplay) formatInstant(in model.Instant) string {
	if !in.Parsed() {
		d.warnUnparsed(in.Raw())
		return in.Raw()
	}
	return in.Time().Local().Format(timeDisplayFormat)
}

func (d *ConsoleDisplay) lastRunText(lastRun model.LastRun) string {
	switch lastRun.Result {
	case model.RunNever:
		return "Never run ⏸️"
	case model.RunFetchError:
		return fmt.Sprintf("Error fetching run data: %v ❌", lastRun.Err)
	}

	var text string
	if lastRun.At.Parsed() {
		text = lastRun.At.Time().Local().Format(timeDisplayFormat)
	} else {
		d.warnUnparsed(lastRun.At.Raw())
		text = lastRun.At.Raw() + " (raw format)"
	}

	if lastRun.Status != "" {
		if lastRun.Conclusion != "" {
			text += fmt.Sprintf(" [%s/%s]", lastRun.Status, lastRun.Conclusion)
		} else {
			text += fmt.Sprintf(" [%s]", lastRun.Status)
		}
	}

	return text
}

func (d *ConsoleDisplay) warnUnparsed(raw string) {
	fmt.Fprintf(d.errW, "⚠️  Could not parse date format: %s\n", raw)
}
