package hierarchy

// FindOptions control how the find operations degrade when nothing matches.
// ReturnBase converts a miss into the node the search started at.
// ReturnLatest converts a miss into the last node the walk reached; in
// FindModel it has no effect distinct from ReturnBase because the
// multi-branch search keeps no notion of a latest node.
type FindOptions struct {
	ReturnBase   bool
	ReturnLatest bool
}

// FindModel searches the subtree rooted at n, inclusive, for the first node
// whose labels contain sought. The search is a pre-order depth-first walk
// over declaration-ordered children: the node itself is checked first, then
// each child subtree in full before the next sibling. The first match wins;
// with duplicate labels on one search path the result is order-dependent, so
// keep labels unique (or build the tree with WithUniqueLabels).
func (n *TypeNode) FindModel(sought string, opts FindOptions) (*TypeNode, error) {
	if n.HasLabel(sought) {
		return n, nil
	}
	if len(n.children) > 0 {
		if found := n.searchModel(sought); found != nil {
			return found, nil
		}
		if opts.ReturnBase {
			return n, nil
		}
		return nil, &NotFoundError{Label: sought, Stopped: n}
	}
	// A leaf start has nothing to search; both flags fall back to it.
	if opts.ReturnBase || opts.ReturnLatest {
		return n, nil
	}
	return nil, &NotFoundError{Label: sought, Stopped: n}
}

func (n *TypeNode) searchModel(sought string) *TypeNode {
	if n.HasLabel(sought) {
		return n
	}
	for _, child := range n.children {
		if found := child.searchModel(sought); found != nil {
			return found
		}
	}
	return nil
}
