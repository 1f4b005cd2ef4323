package filter

import "fmt"

// CompilationError reports an expression that cannot become a filter.
// Err is the expr parser or checker error, if any.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	msg := fmt.Sprintf("filter %q: %s", e.Expression, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CompilationError) Unwrap() error { return e.Err }

// EvaluationError reports a compiled filter failing on one build
type EvaluationError struct {
	Expression string
	BuildID    uint64
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter %q on build %d: %s", e.Expression, e.BuildID, e.Reason)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
