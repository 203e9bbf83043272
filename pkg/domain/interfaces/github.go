package interfaces

import (
	"context"

	"github.com/m-mizutani/octolist/pkg/domain/model"
)

type GitHubService interface {
	ListWorkflows(ctx context.Context, repo model.Repository) (*model.WorkflowList, error)
	// GetLastRun returns (nil, nil) when the workflow has never run.
	GetLastRun(ctx context.Context, repo model.Repository, workflowID int64) (*model.WorkflowRun, error)
}
