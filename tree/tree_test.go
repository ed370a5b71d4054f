package tree_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/tree"
)

// newGraph returns a graph containing A..D; edges are irrelevant to the tree.
func newGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id, 1))
	}

	return g
}

// buildSample grows root A0 with children B1, C2 and grandchild D3 under B1.
func buildSample(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New(newGraph(t))
	_, err := tr.AddNode("A0", 4, 0, "", "A")
	require.NoError(t, err)
	_, err = tr.AddNode("B1", 3, 1, "A0", "B")
	require.NoError(t, err)
	_, err = tr.AddNode("C2", 3, 5, "A0", "C")
	require.NoError(t, err)
	_, err = tr.AddNode("D3", 0, 2, "B1", "D")
	require.NoError(t, err)

	return tr
}

func TestAddNode_DerivesDepthAndCost(t *testing.T) {
	tr := buildSample(t)

	root, ok := tr.Node("A0")
	require.True(t, ok)
	assert.True(t, root.IsRoot())
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 0.0, root.Cost)
	assert.Equal(t, []string{"B1", "C2"}, root.ChildIDs)

	d, ok := tr.Node("D3")
	require.True(t, ok)
	assert.Equal(t, 2, d.Depth)
	assert.Equal(t, 3.0, d.Cost)
	assert.Equal(t, "D", d.GraphNodeID)

	assert.Equal(t, "A0", tr.RootID())
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []int{1, 2, 1}, tr.DepthCounts())
	assert.Equal(t, []string{"A0", "B1", "C2", "D3"}, tr.IDs())
}

func TestAddNode_RootIgnoresEdgeCost(t *testing.T) {
	tr := tree.New(newGraph(t))
	n, err := tr.AddNode("A0", 4, 7, "", "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, n.Cost)
}

func TestAddNode_Rejections(t *testing.T) {
	tr := buildSample(t)

	cases := []struct {
		name      string
		id        string
		h, c      float64
		parent    string
		graphNode string
		want      error
	}{
		{"negative heuristic", "X", -1, 0, "A0", "B", tree.ErrNegativeHeuristic},
		{"NaN heuristic", "X", math.NaN(), 0, "A0", "B", tree.ErrNegativeHeuristic},
		{"negative cost", "X", 0, -2, "A0", "B", tree.ErrNegativeCost},
		{"empty id", "", 0, 0, "A0", "B", tree.ErrEmptyID},
		{"duplicate id", "B1", 0, 0, "A0", "B", tree.ErrDuplicateNode},
		{"unknown graph node", "X", 0, 0, "A0", "Z", tree.ErrUnknownGraphNode},
		{"missing parent", "X", 0, 0, "nope", "B", tree.ErrParentNotFound},
		{"second root", "X", 0, 0, "", "B", tree.ErrRootExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tr.AddNode(tc.id, tc.h, tc.c, tc.parent, tc.graphNode)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, 4, tr.Len(), "rejected insert must leave the tree unchanged")
		})
	}

	root, _ := tr.Node("A0")
	assert.Equal(t, []string{"B1", "C2"}, root.ChildIDs)
}

func TestAddNode_HeuristicCheckedBeforeID(t *testing.T) {
	tr := tree.New(nil)
	_, err := tr.AddNode("", -1, -1, "", "A")
	require.ErrorIs(t, err, tree.ErrNegativeHeuristic)
}

func TestTraverseToRoot(t *testing.T) {
	tr := buildSample(t)

	ids, err := tr.TraverseToRoot("D3")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A0", "B1", "D3"}, ids); diff != "" {
		t.Errorf("TraverseToRoot mismatch (-want +got):\n%s", diff)
	}

	path, err := tr.GraphPath("D3")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A", "B", "D"}, path); diff != "" {
		t.Errorf("GraphPath mismatch (-want +got):\n%s", diff)
	}

	rootOnly, err := tr.GraphPath("A0")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, rootOnly)

	_, err = tr.TraverseToRoot("missing")
	require.ErrorIs(t, err, tree.ErrNodeNotFound)
}

func TestWalk_PreOrder(t *testing.T) {
	tr := buildSample(t)

	var got []string
	require.NoError(t, tr.Walk(func(n *tree.Node) error {
		got = append(got, n.ID)
		return nil
	}))
	assert.Equal(t, []string{"A0", "B1", "D3", "C2"}, got)

	stop := errors.New("stop")
	visits := 0
	err := tr.Walk(func(*tree.Node) error {
		visits++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visits)
}

func TestReset(t *testing.T) {
	tr := buildSample(t)
	tr.Reset()

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, "", tr.RootID())
	assert.Empty(t, tr.DepthCounts())
	require.NoError(t, tr.Walk(func(*tree.Node) error {
		t.Fatal("walk over empty tree must not visit")
		return nil
	}))

	_, err := tr.AddNode("A9", 4, 0, "", "A")
	require.NoError(t, err, "a reset tree accepts a new root")
}

func TestReset_FreshCatalogue(t *testing.T) {
	tr := buildSample(t)
	tr.Reset()

	assert.False(t, tr.Has("B1"))
	_, ok := tr.Node("D3")
	assert.False(t, ok)

	_, err := tr.AddNode("A0", 4, 0, "", "A")
	require.NoError(t, err)
	_, err = tr.AddNode("B1", 3, 2, "A0", "B")
	require.NoError(t, err, "IDs from before the reset are free again")

	assert.Equal(t, []string{"A0", "B1"}, tr.IDs())
	assert.Equal(t, []int{1, 1}, tr.DepthCounts())
	path, err := tr.GraphPath("B1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, path)
}
