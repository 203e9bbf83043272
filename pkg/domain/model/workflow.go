package model

type WorkflowState string

const (
	WorkflowStateActive   WorkflowState = "active"
	WorkflowStateDisabled WorkflowState = "disabled"
)

// Workflow is one Actions workflow definition as delivered by the API.
// Timestamps are kept as the raw strings from the response body; the
// format fallback chain needs the original text, so parsing happens at
// render time.
type Workflow struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	State     WorkflowState `json:"state"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// IsActive is an exact match against "active". Any other state, including
// values the API may add later, counts as inactive.
func (w *Workflow) IsActive() bool {
	return w.State == WorkflowStateActive
}

type WorkflowList struct {
	TotalCount int        `json:"total_count"`
	Workflows  []Workflow `json:"workflows"`
}

// WorkflowRun carries the fields consumed from the runs endpoint. A nil
// Conclusion means the run has not concluded yet.
type WorkflowRun struct {
	CreatedAt  string  `json:"created_at"`
	Status     string  `json:"status"`
	Conclusion *string `json:"conclusion"`
}

type WorkflowRunList struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}
