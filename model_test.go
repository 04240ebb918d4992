package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// modelChain builds the lineage A -> B -> C where every node carries an
// upper- and lowercase model label.
func modelChain(t *testing.T) (a, b, c *TypeNode) {
	t.Helper()
	tree := NewTree()
	a = tree.MustRegister("ModelA", WithLabels("A", "a"))
	b = tree.MustRegisterChild(a, "ModelB", WithLabels("B", "b"))
	c = tree.MustRegisterChild(b, "ModelC", WithLabels("C", "c"))
	return a, b, c
}

func TestFindModel_MatchesDownTheChain(t *testing.T) {
	r := require.New(t)
	a, b, c := modelChain(t)

	found, err := a.FindModel("C", FindOptions{})
	r.NoError(err)
	r.Same(c, found)

	// aliases resolve to the same node
	found, err = a.FindModel("c", FindOptions{})
	r.NoError(err)
	r.Same(c, found)

	found, err = a.FindModel("B", FindOptions{})
	r.NoError(err)
	r.Same(b, found)
}

func TestFindModel_StartMatchWinsImmediately(t *testing.T) {
	r := require.New(t)
	a, _, _ := modelChain(t)

	found, err := a.FindModel("A", FindOptions{})
	r.NoError(err)
	r.Same(a, found)
}

func TestFindModel_NotFound(t *testing.T) {
	r := require.New(t)
	a, _, c := modelChain(t)

	_, err := a.FindModel("IDontExist", FindOptions{})
	r.Error(err)
	r.True(IsNotFound(err))
	var notFound *NotFoundError
	r.ErrorAs(err, &notFound)
	r.Equal("IDontExist", notFound.Label)
	r.Same(a, notFound.Stopped)

	// a leaf has nothing to search either
	_, err = c.FindModel("NonExistent", FindOptions{})
	r.True(IsNotFound(err))
}

func TestFindModel_ReturnBase(t *testing.T) {
	r := require.New(t)
	a, _, c := modelChain(t)

	found, err := a.FindModel("D", FindOptions{ReturnBase: true})
	r.NoError(err)
	r.Same(a, found)

	found, err = c.FindModel("D", FindOptions{ReturnBase: true})
	r.NoError(err)
	r.Same(c, found)
}

func TestFindModel_ReturnLatest_BehavesLikeReturnBase(t *testing.T) {
	r := require.New(t)
	a, _, c := modelChain(t)

	// the multi-branch search keeps no latest node, so the flag only
	// matters at a leaf, where it falls back to the leaf itself
	found, err := c.FindModel("D", FindOptions{ReturnLatest: true})
	r.NoError(err)
	r.Same(c, found)

	// on an inner node the flag alone does not rescue the miss
	_, err = a.FindModel("D", FindOptions{ReturnLatest: true})
	r.True(IsNotFound(err))
}

func TestFindModel_DeclarationOrderTieBreak(t *testing.T) {
	r := require.New(t)
	tree := NewTree()
	m := tree.MustRegister("M", WithLabels("M"))
	m1 := tree.MustRegisterChild(m, "M1", WithLabels("x"))
	tree.MustRegisterChild(m, "M2", WithLabels("x"))

	found, err := m.FindModel("x", FindOptions{})
	r.NoError(err)
	r.Same(m1, found)
}

func TestFindModel_DepthFirstBeforeNextSibling(t *testing.T) {
	r := require.New(t)
	tree := NewTree()
	root := tree.MustRegister("root", WithLabels("root"))
	left := tree.MustRegisterChild(root, "left", WithLabels("left"))
	deep := tree.MustRegisterChild(left, "deep", WithLabels("shared"))
	tree.MustRegisterChild(root, "right", WithLabels("shared"))

	// the match deep inside the first subtree beats the shallower match
	// in the later sibling
	found, err := root.FindModel("shared", FindOptions{})
	r.NoError(err)
	r.Same(deep, found)
}

func TestFindModel_SearchesAllBranches(t *testing.T) {
	r := require.New(t)
	tree := NewTree()
	root := tree.MustRegister("root", WithLabels("root"))
	tree.MustRegisterChild(root, "first", WithLabels("first"))
	second := tree.MustRegisterChild(root, "second", WithLabels("second"))
	hidden := tree.MustRegisterChild(second, "hidden", WithLabels("hidden"))

	found, err := root.FindModel("hidden", FindOptions{})
	r.NoError(err)
	r.Same(hidden, found)
}

func TestFindModel_Idempotent(t *testing.T) {
	r := require.New(t)
	a, _, _ := modelChain(t)

	first, err := a.FindModel("C", FindOptions{})
	r.NoError(err)
	for i := 0; i < 3; i++ {
		again, err := a.FindModel("C", FindOptions{})
		r.NoError(err)
		r.Same(first, again)
	}
}
