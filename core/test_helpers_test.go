// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for stepsearch/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only, except the concurrency suite (testify).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stepsearch/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeZ = "Z"
)

// Common costs/heuristics used across core tests (avoid magic numbers in test bodies).
const (
	Cost0 = 0.0
	Cost1 = 1.0
	Cost2 = 2.0
	Cost5 = 5.0

	H0 = 0.0
	H3 = 3.0
	H4 = 4.0
)

// NewABCD RETURNS a directed graph A→B, A→C, B→D, C→D with costs 1,5,2,1
// and heuristics A=4, B=3, C=3, D=0.
func NewABCD(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	MustNoError(t, g.AddNode(NodeA, H4), "AddNode(A)")
	MustNoError(t, g.AddNode(NodeB, H3), "AddNode(B)")
	MustNoError(t, g.AddNode(NodeC, H3), "AddNode(C)")
	MustNoError(t, g.AddNode(NodeD, H0), "AddNode(D)")
	MustNoError(t, g.AddEdge(NodeA, NodeB, Cost1), "AddEdge(A,B)")
	MustNoError(t, g.AddEdge(NodeA, NodeC, Cost5), "AddEdge(A,C)")
	MustNoError(t, g.AddEdge(NodeB, NodeD, Cost2), "AddEdge(B,D)")
	MustNoError(t, g.AddEdge(NodeC, NodeD, Cost1), "AddEdge(C,D)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		t.Fatalf("%s: want true", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		t.Fatalf("%s: want false", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualStrings FAILS the test if the slices differ in length or content.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v", op, got, want)
		}
	}
}
