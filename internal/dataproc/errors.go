package dataproc

import "fmt"

// PreconditionError reports an invariant broken at an API boundary, e.g.
// a generator asked to Generate without ever having its processor
// factory set, or resolved against a block of the wrong type.
type PreconditionError struct {
	Op      string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("dataproc: precondition violated in %s: %s", e.Op, e.Message)
}
