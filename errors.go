package hierarchy

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no node matched the sought label along the
// applicable traversal and no fallback flag converted the miss into a
// degraded result. Stopped is the node at which the search terminated.
type NotFoundError struct {
	Label   string
	Stopped *TypeNode
}

func (e *NotFoundError) Error() string {
	if e.Stopped == nil {
		return fmt.Sprintf("label %q is not found in the hierarchy", e.Label)
	}
	return fmt.Sprintf("label %q is not found in the hierarchy, search stopped at %q", e.Label, e.Stopped.Name())
}

// AmbiguousHierarchyError reports that a chain operation met a node with more
// than one child where strict linearity is required. Fallback flags never
// suppress it.
type AmbiguousHierarchyError struct {
	Node     *TypeNode
	Children int
}

func (e *AmbiguousHierarchyError) Error() string {
	return fmt.Sprintf("node %q has %d children, a version lineage must be linear", e.Node.Name(), e.Children)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsAmbiguous reports whether err is or wraps an AmbiguousHierarchyError.
func IsAmbiguous(err error) bool {
	var ambiguous *AmbiguousHierarchyError
	return errors.As(err, &ambiguous)
}
