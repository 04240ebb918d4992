package hierarchy

import (
	"fmt"
	"slices"
	"sync"
)

// Tree owns a forest of TypeNodes. A tree is built once through registration
// and is read-only during resolution; the mutex only guards registration so
// that concurrent readers never observe a partially linked node.
type Tree struct {
	mu sync.RWMutex
	// uniqueLabels rejects a label that is already used anywhere in the
	// tree.
	uniqueLabels bool
	roots        []*TypeNode
}

// NewTree creates an empty hierarchy.
func NewTree(opts ...TreeOption) *Tree {
	tree := &Tree{}
	for _, opt := range opts {
		opt(tree)
	}
	return tree
}

type TreeOption func(*Tree)

// WithUniqueLabels enforces tree-wide label uniqueness. Resolution over
// duplicate labels is order-dependent (first found wins); this option turns
// the duplicate into a registration error instead.
func WithUniqueLabels() TreeOption {
	return func(tree *Tree) {
		tree.uniqueLabels = true
	}
}

// Roots returns the registered roots in declaration order.
func (t *Tree) Roots() []*TypeNode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.roots)
}

// Register adds a new root node to the tree.
func (t *Tree) Register(name string, opts ...NodeOption) (*TypeNode, error) {
	return t.newNode(nil, name, opts...)
}

// MustRegister is Register panicking on error, for hierarchy definitions
// known statically.
func (t *Tree) MustRegister(name string, opts ...NodeOption) *TypeNode {
	node, err := t.Register(name, opts...)
	if err != nil {
		panic(err)
	}
	return node
}

// RegisterChild appends a new child to parent. Children keep their
// registration order for the tree's lifetime; that order is the tie-break
// order of every first-match traversal.
func (t *Tree) RegisterChild(parent *TypeNode, name string, opts ...NodeOption) (*TypeNode, error) {
	if parent == nil {
		return nil, fmt.Errorf("parent of node %q must not be nil", name)
	}
	return t.newNode(parent, name, opts...)
}

// MustRegisterChild is RegisterChild panicking on error.
func (t *Tree) MustRegisterChild(parent *TypeNode, name string, opts ...NodeOption) *TypeNode {
	node, err := t.RegisterChild(parent, name, opts...)
	if err != nil {
		panic(err)
	}
	return node
}

func (t *Tree) newNode(parent *TypeNode, name string, opts ...NodeOption) (*TypeNode, error) {
	if name == "" {
		return nil, fmt.Errorf("node name must not be empty")
	}
	node := &TypeNode{name: name, parent: parent}
	for _, opt := range opts {
		opt(node)
	}
	if len(node.labels) == 0 && node.version.IsZero() {
		return nil, fmt.Errorf("node %q carries neither labels nor a version, it cannot participate in resolution", name)
	}
	for i, label := range node.labels {
		if slices.Contains(node.labels[:i], label) {
			return nil, fmt.Errorf("node %q declares label %q twice", name, label)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Duplicate labels across nodes are legal: resolution is first-found
	// in declaration order. WithUniqueLabels opts into rejecting them.
	if t.uniqueLabels {
		for _, root := range t.roots {
			if clash, label := findAnyLabel(root, node.labels); clash != nil {
				return nil, fmt.Errorf("label %q is already registered on %q", label, clash.name)
			}
		}
	}

	if parent != nil {
		parent.children = append(parent.children, node)
	} else {
		t.roots = append(t.roots, node)
	}
	return node, nil
}

func findAnyLabel(node *TypeNode, labels []string) (*TypeNode, string) {
	for _, label := range labels {
		if node.HasLabel(label) {
			return node, label
		}
	}
	for _, child := range node.children {
		if clash, label := findAnyLabel(child, labels); clash != nil {
			return clash, label
		}
	}
	return nil, ""
}
