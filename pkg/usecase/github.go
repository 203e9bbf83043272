package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolist/pkg/domain"
	"github.com/m-mizutani/octolist/pkg/domain/interfaces"
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

// The API rejects requests without an identifying User-Agent, so every
// request carries this one.
const userAgent = "octolist/0.1.0"

type GitHubService struct {
	client *github.Client
}

type GitHubOption func(*GitHubService)

// WithBaseURL points the client at a different API root, mainly for tests.
func WithBaseURL(raw string) GitHubOption {
	return func(s *GitHubService) {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		if u, err := url.Parse(raw); err == nil {
			s.client.BaseURL = u
		}
	}
}

// NewGitHubService builds an anonymous API client. The go-github request
// plumbing is used as-is, but responses are decoded into our own structs
// so timestamp strings survive untouched.
func NewGitHubService(opts ...GitHubOption) interfaces.GitHubService {
	s := &GitHubService{
		client: github.NewClient(nil),
	}
	s.client.UserAgent = userAgent

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GitHubService) ListWorkflows(ctx context.Context, repo model.Repository) (*model.WorkflowList, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/workflows", repo.Owner, repo.Name)

	var list model.WorkflowList
	if err := s.fetchJSON(ctx, path, &list); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("fetched workflow list",
		slog.String("repo", repo.FullName()),
		slog.Int("total", list.TotalCount),
	)

	return &list, nil
}

// GetLastRun fetches only the most recent run of a workflow. A workflow
// that never ran yields (nil, nil). A non-success status degrades to the
// same never-run result with a warning, so one inaccessible run history
// does not abort the report.
func (s *GitHubService) GetLastRun(ctx context.Context, repo model.Repository, workflowID int64) (*model.WorkflowRun, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/workflows/%d/runs?per_page=1", repo.Owner, repo.Name, workflowID)

	var runs model.WorkflowRunList
	if err := s.fetchJSON(ctx, path, &runs); err != nil {
		if domain.ErrHTTPStatus.Is(err) {
			ctxlog.From(ctx).Warn("failed to fetch runs for workflow",
				slog.Int64("workflow_id", workflowID),
				slog.String("error", err.Error()),
			)
			return nil, nil
		}
		return nil, err
	}

	if len(runs.WorkflowRuns) == 0 {
		return nil, nil
	}

	run := runs.WorkflowRuns[0]
	return &run, nil
}

// fetchJSON issues one GET and decodes the body into out, sorting failures
// into the three error classes callers care about: non-success status,
// response shape mismatch, and everything transport-level.
func (s *GitHubService) fetchJSON(ctx context.Context, path string, out any) error {
	req, err := s.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err, goerr.V("path", path))
	}

	if _, err := s.client.Do(ctx, req, out); err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) {
			return domain.ErrHTTPStatus.Wrap(err,
				goerr.V("path", path),
				goerr.V("status", errResp.Response.StatusCode),
			)
		}

		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			return domain.ErrHTTPStatus.Wrap(err, goerr.V("path", path))
		}

		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) {
			return domain.ErrUnexpectedResponse.Wrap(err, goerr.V("path", path))
		}

		return domain.ErrAPIRequest.Wrap(err, goerr.V("path", path))
	}

	return nil
}
