package hierarchy

import (
	"fmt"
	"reflect"
	"slices"
)

// Constructor produces an instance of the variant a node represents. The
// arguments are passed through unchanged from NewFromVersion.
type Constructor func(args ...any) (any, error)

// TypeNode is one declared variant in a hierarchy: a set of labels
// identifying it, an optional version label, a constructor capability and
// structural links to its parent and children. Nodes are created through Tree
// registration and never change afterwards, so resolution can read them
// without locking.
type TypeNode struct {
	name      string
	labels    []string
	version   Version
	construct Constructor
	parent    *TypeNode
	children  []*TypeNode
}

// Name returns the diagnostic name the node was registered under.
func (n *TypeNode) Name() string {
	return n.name
}

// Labels returns the node's labels in declaration order.
func (n *TypeNode) Labels() []string {
	return slices.Clone(n.labels)
}

// HasLabel reports whether label is one of the node's labels.
func (n *TypeNode) HasLabel(label string) bool {
	return slices.Contains(n.labels, label)
}

// Version returns the node's version label, zero if the node is not part of a
// version lineage.
func (n *TypeNode) Version() Version {
	return n.version
}

// Parent returns the node this node was declared as a refinement of, nil for
// a root.
func (n *TypeNode) Parent() *TypeNode {
	return n.parent
}

// Children returns the node's direct children in declaration order.
func (n *TypeNode) Children() []*TypeNode {
	return slices.Clone(n.children)
}

// FirstChild returns the first declared child, nil for a leaf.
func (n *TypeNode) FirstChild() *TypeNode {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// New constructs an instance of the variant this node represents by calling
// its constructor capability.
func (n *TypeNode) New(args ...any) (any, error) {
	if n.construct == nil {
		return nil, fmt.Errorf("node %q has no constructor", n.name)
	}
	instance, err := n.construct(args...)
	if err != nil {
		return nil, fmt.Errorf("constructing %q: %w", n.name, err)
	}
	return instance, nil
}

// NodeOption configures a node at registration time.
type NodeOption func(*TypeNode)

// WithLabels adds labels to the node, in declaration order.
func WithLabels(labels ...string) NodeOption {
	return func(n *TypeNode) {
		n.labels = append(n.labels, labels...)
	}
}

// WithVersion marks the node as one step of a version lineage.
func WithVersion(v Version) NodeOption {
	return func(n *TypeNode) {
		n.version = v
	}
}

// WithConstructor attaches the constructor capability called by New and
// NewFromVersion.
func WithConstructor(c Constructor) NodeOption {
	return func(n *TypeNode) {
		n.construct = c
	}
}

// WithPrototype derives the node's constructor from a prototype: every New
// call returns a fresh zero value of the prototype's type. The prototype must
// be a pointer to a struct. A prototype constructor takes no construction
// arguments; use WithConstructor when arguments matter.
func WithPrototype(prototype any) NodeOption {
	elem, err := prototypeElem(prototype)
	if err != nil {
		panic(err)
	}
	return func(n *TypeNode) {
		n.construct = func(args ...any) (any, error) {
			if len(args) > 0 {
				return nil, fmt.Errorf("prototype constructor takes no arguments, got %d", len(args))
			}
			return reflect.New(elem).Interface(), nil
		}
	}
}

func prototypeElem(prototype any) (reflect.Type, error) {
	t := reflect.TypeOf(prototype)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("prototype must be a pointer to a struct, got %T", prototype)
	}
	return t.Elem(), nil
}
