// Package graphfile reads and writes state-space graphs, together with the
// search parameters, as YAML documents:
//
//	directed: true
//	start: A
//	goal: D
//	depthLimit: 10
//	algorithm: ucs
//	nodes:
//	  - {id: A, heuristic: 3}
//	  - {id: D, heuristic: 0}
//	edges:
//	  - {from: A, to: D, cost: 4}
//
// Decoding is strict: unknown keys are rejected, and Build fails on the
// first node or edge the graph refuses. Node and edge order in the
// document is the insertion order of the built graph, which fixes the
// engine's expansion order.
package graphfile
