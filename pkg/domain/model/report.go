package model

// RunResult distinguishes the three last-run outcomes. Each renders
// differently so an operator can tell a workflow that never ran from one
// whose run history could not be fetched.
type RunResult string

const (
	RunFetched    RunResult = "fetched"
	RunNever      RunResult = "never"
	RunFetchError RunResult = "error"
)

type LastRun struct {
	Result     RunResult
	At         Instant // valid when Result is RunFetched
	Status     string
	Conclusion string
	Err        error // set when Result is RunFetchError
}

// WorkflowReport is the fully resolved view of one workflow block: the
// entity itself plus its parsed-or-raw timestamps and last-run outcome.
type WorkflowReport struct {
	Workflow  Workflow
	CreatedAt Instant
	UpdatedAt Instant
	LastRun   LastRun
}
