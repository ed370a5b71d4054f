package fringe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/fringe"
)

// knownIDs is a TreeLookup over a fixed ID set.
type knownIDs map[string]bool

func (k knownIDs) Has(id string) bool { return k[id] }

// sample entries: costs 5,1,1,3 and heuristics 1,4,2,0.
func sample() []fringe.Entry {
	return []fringe.Entry{
		{TreeNodeID: "B1", Cost: 5, Heuristic: 1, Depth: 1},
		{TreeNodeID: "C2", Cost: 1, Heuristic: 4, Depth: 1},
		{TreeNodeID: "D3", Cost: 1, Heuristic: 2, Depth: 2},
		{TreeNodeID: "E4", Cost: 3, Heuristic: 0, Depth: 2},
	}
}

func filled(t *testing.T) *fringe.Fringe {
	t.Helper()
	f := fringe.New(nil)
	for _, e := range sample() {
		require.NoError(t, f.Push(e))
	}

	return f
}

func TestPush_UnknownTreeNode(t *testing.T) {
	f := fringe.New(knownIDs{"A0": true})
	require.NoError(t, f.Push(fringe.Entry{TreeNodeID: "A0"}))
	require.ErrorIs(t, f.Push(fringe.Entry{TreeNodeID: "B1"}), fringe.ErrUnknownTreeNode)
	assert.Equal(t, []string{"A0"}, f.IDs())
}

func TestPop_Errors(t *testing.T) {
	f := fringe.New(nil)
	_, err := f.Pop(fringe.LIFO)
	require.ErrorIs(t, err, fringe.ErrEmpty)

	require.NoError(t, f.Push(fringe.Entry{TreeNodeID: "A0"}))
	_, err = f.Pop(nil)
	require.ErrorIs(t, err, fringe.ErrNilPolicy)

	_, err = f.Pop(fringe.PolicyFunc(func([]fringe.Entry) int { return 7 }))
	require.ErrorIs(t, err, fringe.ErrBadSelection)
	assert.Equal(t, 1, f.Len(), "failed pops must not remove entries")
}

func TestPop_Policies(t *testing.T) {
	cases := []struct {
		policy fringe.Policy
		want   string
		rest   string
	}{
		{fringe.LIFO, "E4", "B1 C2 D3"},
		{fringe.FIFO, "B1", "C2 D3 E4"},
		// C2 and D3 tie on cost 1; the earlier one wins.
		{fringe.MinCost, "C2", "B1 D3 E4"},
		{fringe.MinHeuristic, "E4", "B1 C2 D3"},
		// cost+heuristic: 6, 5, 3, 3 -> D3 before E4.
		{fringe.MinCostPlusHeuristic, "D3", "B1 C2 E4"},
	}
	for _, tc := range cases {
		t.Run(tc.policy.Name(), func(t *testing.T) {
			f := filled(t)
			e, err := f.Pop(tc.policy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.TreeNodeID)
			assert.Equal(t, tc.rest, f.String())
		})
	}
}

func TestPop_DrainsInPolicyOrder(t *testing.T) {
	f := filled(t)
	var got []string
	for f.Len() > 0 {
		e, err := f.Pop(fringe.MinCost)
		require.NoError(t, err)
		got = append(got, e.TreeNodeID)
	}
	assert.Equal(t, []string{"C2", "D3", "E4", "B1"}, got)
}

func TestEntriesIsCopy(t *testing.T) {
	f := filled(t)
	es := f.Entries()
	es[0].TreeNodeID = "mutated"
	assert.Equal(t, "B1", f.IDs()[0])

	f.Reset()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, "", f.String())
}
