package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolist/pkg/cli"
	"github.com/m-mizutani/octolist/pkg/domain"
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

func newTestDisplay() (*bytes.Buffer, *bytes.Buffer, func(int, *model.WorkflowReport)) {
	color.NoColor = true
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	display := cli.NewConsoleDisplayWithWriters(out, errW)
	return out, errW, display.ShowWorkflow
}

func TestShowWorkflowParsedTimes(t *testing.T) {
	out, errW, show := newTestDisplay()

	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	lastRun := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	show(1, &model.WorkflowReport{
		Workflow: model.Workflow{
			ID: 10, Name: "CI", State: model.WorkflowStateActive,
			CreatedAt: "2024-01-15T10:30:00Z", UpdatedAt: "2024-02-01T08:00:00Z",
		},
		CreatedAt: model.ParsedInstant(created),
		UpdatedAt: model.ParsedInstant(updated),
		LastRun: model.LastRun{
			Result:     model.RunFetched,
			At:         model.ParsedInstant(lastRun),
			Status:     "completed",
			Conclusion: "success",
		},
	})

	text := out.String()
	gt.True(t, strings.Contains(text, "🚀 Workflow #1"))
	gt.True(t, strings.Contains(text, "📝 Name: CI"))
	gt.True(t, strings.Contains(text, "✅ State: active"))
	gt.True(t, strings.Contains(text, "🔄 Is Active: Yes ✅"))
	gt.True(t, strings.Contains(text, "🎂 Created: "+created.Local().Format(cli.TimeDisplayFormat)))
	gt.True(t, strings.Contains(text, "📅 Last Updated: "+updated.Local().Format(cli.TimeDisplayFormat)))
	gt.True(t, strings.Contains(text, "🏃 Last Run: "+lastRun.Local().Format(cli.TimeDisplayFormat)))
	gt.True(t, strings.Contains(text, "[completed/success]"))

	// Parsed timestamps must not warn.
	gt.Equal(t, errW.String(), "")
}

func TestShowWorkflowUnrecognizedState(t *testing.T) {
	out, _, show := newTestDisplay()

	show(1, &model.WorkflowReport{
		Workflow: model.Workflow{ID: 10, Name: "Old", State: "archived"},
		CreatedAt: model.RawInstant("2024-01-15T10:30:00Z"),
		UpdatedAt: model.RawInstant("2024-01-15T10:30:00Z"),
		LastRun:   model.LastRun{Result: model.RunNever},
	})

	text := out.String()
	gt.True(t, strings.Contains(text, "❓ State: archived"))
	gt.True(t, strings.Contains(text, "🔄 Is Active: No ❌"))
}

func TestShowWorkflowDisabledState(t *testing.T) {
	out, _, show := newTestDisplay()

	show(2, &model.WorkflowReport{
		Workflow: model.Workflow{ID: 20, Name: "Release", State: model.WorkflowStateDisabled},
		CreatedAt: model.ParsedInstant(time.Now()),
		UpdatedAt: model.ParsedInstant(time.Now()),
		LastRun:   model.LastRun{Result: model.RunNever},
	})

	text := out.String()
	gt.True(t, strings.Contains(text, "🚀 Workflow #2"))
	gt.True(t, strings.Contains(text, "❌ State: disabled"))
	gt.True(t, strings.Contains(text, "🏃 Last Run: Never run ⏸️"))
}

func TestShowWorkflowRawTimestampWarns(t *testing.T) {
	out, errW, show := newTestDisplay()

	show(1, &model.WorkflowReport{
		Workflow:  model.Workflow{ID: 10, Name: "CI", State: model.WorkflowStateActive},
		CreatedAt: model.RawInstant("last tuesday"),
		UpdatedAt: model.ParsedInstant(time.Now()),
		LastRun: model.LastRun{
			Result: model.RunFetched,
			At:     model.RawInstant("not a date"),
			Status: "completed",
		},
	})

	text := out.String()
	gt.True(t, strings.Contains(text, "🎂 Created: last tuesday"))
	gt.True(t, strings.Contains(text, "🏃 Last Run: not a date (raw format) [completed]"))

	warnings := errW.String()
	gt.True(t, strings.Contains(warnings, "Could not parse date format: last tuesday"))
	gt.True(t, strings.Contains(warnings, "Could not parse date format: not a date"))
}

func TestShowWorkflowRunFetchError(t *testing.T) {
	out, _, show := newTestDisplay()

	show(1, &model.WorkflowReport{
		Workflow:  model.Workflow{ID: 10, Name: "CI", State: model.WorkflowStateActive},
		CreatedAt: model.ParsedInstant(time.Now()),
		UpdatedAt: model.ParsedInstant(time.Now()),
		LastRun: model.LastRun{
			Result: model.RunFetchError,
			Err:    domain.ErrAPIRequest.Wrap(goerr.New("connection refused")),
		},
	})

	text := out.String()
	gt.True(t, strings.Contains(text, "🏃 Last Run: Error fetching run data: "))
	gt.True(t, strings.Contains(text, "❌"))
}

func TestShowHeaderAndFetching(t *testing.T) {
	color.NoColor = true
	out := &bytes.Buffer{}
	display := cli.NewConsoleDisplayWithWriters(out, &bytes.Buffer{})

	display.ShowFetching(model.Repository{Owner: "m-mizutani", Name: "octolist"})
	display.ShowHeader(2)

	text := out.String()
	gt.True(t, strings.Contains(text, "🔍 Fetching workflows for m-mizutani/octolist..."))
	gt.True(t, strings.Contains(text, "🔧 GitHub Workflows Summary"))
	gt.True(t, strings.Contains(text, "📊 Total workflows: 2"))
}
