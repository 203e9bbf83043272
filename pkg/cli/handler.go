package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/octolist/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func RunReport(ctx context.Context, cmd *cli.Command) error {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	ctx = ctxlog.With(ctx, logger)

	config := &Config{
		Owner: cmd.String("owner"),
		Repo:  cmd.String("repo"),
	}

	repo, err := config.Repository()
	if err != nil {
		return err
	}

	report := usecase.NewReportUseCase(usecase.ReportUseCaseOptions{
		GitHub:  usecase.NewGitHubService(),
		Display: NewConsoleDisplay(),
		Repo:    repo,
	})

	return report.Execute(ctx)
}
