// Package fringe holds the frontier of tree nodes awaiting expansion and the
// selection policies that decide which one the engine expands next.
//
// The fringe is an ordered list. Insertion order is the display order shown
// to learners, so Pop removes exactly one entry and keeps the rest in place.
// A policy only picks an index; it never reorders.
//
// Policies and the algorithms that use them:
//
//	LIFO                  DFS, DFS with iterative deepening
//	FIFO                  BFS
//	MinCost               uniform-cost search (cumulative cost)
//	MinHeuristic          greedy search (heuristic only)
//	MinCostPlusHeuristic  A* (cost + heuristic)
//
// Ties in the ranking policies go to the entry inserted first, so equal
// inputs always produce equal selections.
//
// Complexity: Push O(1) amortized; Pop O(n) for the scan and the removal.
package fringe
