package classify

import "fmt"

// LabelKind names a required label family.
type LabelKind string

const (
	KindArch LabelKind = "arch"
	KindOS   LabelKind = "os"
)

// MissingLabelError reports that no label of the required kind was found.
// Labels are static node configuration, so the error is never retried.
type MissingLabelError struct {
	Kind LabelKind
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("missing %s label", e.Kind)
}

// NodeError wraps a classification error with the node that produced it.
type NodeError struct {
	Node string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Node, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
