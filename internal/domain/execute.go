package domain

// ExecutionResult wraps details from the command executor collaborator.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}
