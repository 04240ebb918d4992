package hierarchy

// NewOptions control how NewFromVersion degrades when no version matches.
// ReturnDefault constructs the node the call started at, ReturnLast the
// deepest node the walk reached. Neither suppresses an
// AmbiguousHierarchyError.
type NewOptions struct {
	ReturnDefault bool
	ReturnLast    bool
}

// NewFromVersion walks the lineage beginning at n for the node whose version
// label equals version and constructs it with args. The lineage must be
// linear: meeting a node with more than one child fails the call with
// AmbiguousHierarchyError regardless of fallback flags, because there is no
// sanctioned way to pick a branch.
func (n *TypeNode) NewFromVersion(version Version, opts NewOptions, args ...any) (any, error) {
	if n.version == version {
		return n.New(args...)
	}
	switch len(n.children) {
	case 0:
		// No lineage below the start: ReturnLast has no deeper node to
		// name, so it behaves like ReturnDefault here.
		if opts.ReturnDefault || opts.ReturnLast {
			return n.New(args...)
		}
		return nil, &NotFoundError{Label: version.String(), Stopped: n}
	case 1:
	default:
		return nil, &AmbiguousHierarchyError{Node: n, Children: len(n.children)}
	}
	scan := n.children[0]
	for {
		if scan.version == version {
			return scan.New(args...)
		}
		switch len(scan.children) {
		case 1:
			scan = scan.children[0]
		case 0:
			if opts.ReturnDefault {
				return n.New(args...)
			}
			if opts.ReturnLast {
				return scan.New(args...)
			}
			return nil, &NotFoundError{Label: version.String(), Stopped: scan}
		default:
			return nil, &AmbiguousHierarchyError{Node: scan, Children: len(scan.children)}
		}
	}
}

// FindVersion returns the node whose version label equals version, searching
// from n. Unlike FindModel it follows only the first child at every step: a
// match that sits behind a non-first child is not found even though it exists
// in the tree. This asymmetry is intentional, callers depend on it.
//
// With ReturnLatest a miss yields the last node on the followed path. On a
// branching tree that node need not be the deepest leaf of the subtree, only
// of the first-child path.
func (n *TypeNode) FindVersion(version Version, opts FindOptions) (*TypeNode, error) {
	if n.version == version {
		return n, nil
	}
	if len(n.children) > 0 {
		if found := n.children[0].walkFirstChild(version, opts.ReturnLatest); found != nil {
			return found, nil
		}
		if opts.ReturnBase {
			return n, nil
		}
		return nil, &NotFoundError{Label: version.String(), Stopped: n}
	}
	if opts.ReturnBase || opts.ReturnLatest {
		return n, nil
	}
	return nil, &NotFoundError{Label: version.String(), Stopped: n}
}

func (n *TypeNode) walkFirstChild(version Version, returnLatest bool) *TypeNode {
	if n.version == version {
		return n
	}
	if len(n.children) > 0 {
		return n.children[0].walkFirstChild(version, returnLatest)
	}
	if returnLatest {
		return n
	}
	return nil
}

// FindPreviousVersion climbs from n's parent looking for an ancestor whose
// version label equals sought, the rollback case: an interface moved back and
// an older variant must be addressed again. A miss is a soft result, not an
// error; the climb stops once the next ancestor carries no version label,
// which marks the top of the versioned lineage.
func (n *TypeNode) FindPreviousVersion(sought Version) *TypeNode {
	for ancestor := n.parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor.version == sought {
			return ancestor
		}
		if ancestor.parent == nil || ancestor.parent.version.IsZero() {
			return nil
		}
	}
	return nil
}
