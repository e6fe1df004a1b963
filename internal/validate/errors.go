package validate

import (
	"errors"
	"fmt"
)

// DuplicatePathError reports a path used by more than one node.
type DuplicatePathError struct {
	Path   string
	First  string // Name of the node that claimed the path first
	Second string // Name of the node that reused it
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate path %q: used by %q and %q", e.Path, e.First, e.Second)
}

// PathHierarchyMismatchError reports a child whose path is not nested under
// its parent's path.
type PathHierarchyMismatchError struct {
	ParentPath string
	ChildPath  string
}

func (e *PathHierarchyMismatchError) Error() string {
	return fmt.Sprintf("path %q is not nested under parent %q", e.ChildPath, e.ParentPath)
}

// AggregateError collects every finding of a validation pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap lets errors.As reach the individual findings.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Errors returns the findings held by err if it is an AggregateError.
// Otherwise returns nil.
func Errors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
