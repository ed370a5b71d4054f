// Package builder seeds state-space graphs for the search engine: the
// classroom demo graph, random sparse graphs, grids and fixed chains.
//
// Every constructor is a Constructor closure run by BuildGraph against a
// fresh core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Classroom(builder.ClassroomEdgeProbability),
//	)
//
// Components:
//
//   - Configuration: BuilderOption mutates a builderConfig holding the RNG,
//     the node ID scheme (IDFn), the edge cost generator (CostFn) and the
//     heuristic generator (HeuristicFn).
//   - ID schemes for RandomSparse: DefaultIDFn ("0","1",...),
//     LetterIDFn ("A".."Z","AA",...), PrefixIDFn(prefix).
//   - Cost generators: DefaultCostFn, ConstantCostFn, UniformIntCostFn.
//
// Determinism: equal options, equal seed and equal constructor order give
// identical graphs, including node and edge insertion order (which fixes
// expansion order in the engine).
//
// Option constructors panic on meaningless input (nil functions, inverted
// ranges). Constructors never panic; they return the sentinels
// ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed wrapped with the constructor name.
package builder
