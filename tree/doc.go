// Package tree provides the search tree grown by the stepping engine.
//
// What
//
//   - Every tree node instantiates exactly one state-space node (GraphNodeID);
//     one graph node may appear many times, once per path that reached it.
//   - Depth and cumulative cost are derived at insertion time:
//     depth = parent.depth + 1, cost = parent.cost + edgeCost.
//     The root has depth 0 and cost 0.
//   - ChildIDs keeps expansion order, which is also the drawing order.
//   - The tree only grows during a run. Reset empties it for the next run.
//
// Path reconstruction
//
//	TraverseToRoot(id) follows ParentID links back to the root and returns
//	tree IDs root-first; GraphPath(id) maps the same walk to graph IDs.
//	Both walks are iterative and bounded by Len(), so a corrupted parent
//	chain fails with ErrNodeNotFound instead of looping.
//
// Errors
//
//	ErrNegativeHeuristic, ErrNegativeCost, ErrEmptyID, ErrDuplicateNode,
//	ErrUnknownGraphNode, ErrParentNotFound, ErrRootExists, ErrNodeNotFound.
//
// Complexity (N = |tree nodes|)
//
//   - AddNode, Node: O(1)
//   - TraverseToRoot, GraphPath: O(depth)
//   - Walk: O(N)
package tree
