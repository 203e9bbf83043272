package interfaces

import (
	"github.com/m-mizutani/octolist/pkg/domain/model"
)

type Display interface {
	ShowFetching(repo model.Repository)
	ShowHeader(totalCount int)
	ShowWorkflow(index int, report *model.WorkflowReport)
}
