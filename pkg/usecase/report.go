package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/octolist/pkg/domain/interfaces"
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

type ReportUseCase struct {
	github  interfaces.GitHubService
	display interfaces.Display
	repo    model.Repository
}

type ReportUseCaseOptions struct {
	GitHub  interfaces.GitHubService
	Display interfaces.Display
	Repo    model.Repository
}

func NewReportUseCase(opts ReportUseCaseOptions) *ReportUseCase {
	return &ReportUseCase{
		github:  opts.GitHub,
		display: opts.Display,
		repo:    opts.Repo,
	}
}

// Execute fetches the workflow list and renders one block per workflow, in
// the order the API delivered them. A failed list fetch aborts the whole
// report; per-workflow failures are converted into display values so one
// broken workflow cannot hide the rest.
func (u *ReportUseCase) Execute(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	u.display.ShowFetching(u.repo)

	list, err := u.github.ListWorkflows(ctx, u.repo)
	if err != nil {
		return err
	}

	u.display.ShowHeader(list.TotalCount)

	for i, wf := range list.Workflows {
		report := &model.WorkflowReport{
			Workflow:  wf,
			CreatedAt: parseInstant(wf.CreatedAt),
			UpdatedAt: parseInstant(wf.UpdatedAt),
			LastRun:   u.fetchLastRun(ctx, wf),
		}
		u.display.ShowWorkflow(i+1, report)
	}

	logger.Debug("report complete",
		slog.String("repo", u.repo.FullName()),
		slog.Int("workflows", len(list.Workflows)),
	)

	return nil
}

func (u *ReportUseCase) fetchLastRun(ctx context.Context, wf model.Workflow) model.LastRun {
	run, err := u.github.GetLastRun(ctx, u.repo, wf.ID)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to fetch run data",
			slog.Int64("workflow_id", wf.ID),
			slog.String("workflow", wf.Name),
			slog.String("error", err.Error()),
		)
		return model.LastRun{Result: model.RunFetchError, Err: err}
	}
	if run == nil {
		return model.LastRun{Result: model.RunNever}
	}

	lastRun := model.LastRun{
		Result: model.RunFetched,
		At:     parseInstant(run.CreatedAt),
		Status: run.Status,
	}
	if run.Conclusion != nil {
		lastRun.Conclusion = *run.Conclusion
	}
	return lastRun
}

func parseInstant(raw string) model.Instant {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return model.RawInstant(raw)
	}
	return model.ParsedInstant(t)
}
