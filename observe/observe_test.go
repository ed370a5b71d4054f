package observe_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/observe"
	"github.com/katalvlaran/stepsearch/search"
)

func run(t *testing.T, reg *prometheus.Registry, a search.Algorithm, c search.Config) *observe.Collector {
	t.Helper()
	col, err := observe.NewCollector(reg)
	require.NoError(t, err)

	g, err := builder.BuildGraph(nil, nil, builder.Chain("A", "B", "C"))
	require.NoError(t, err)
	e, err := search.New(g, search.WithAlgorithm(a), search.WithConfig(c), search.WithObserver(col))
	require.NoError(t, err)
	_, _, err = e.Run(context.Background(), 100)
	require.NoError(t, err)

	return col
}

func TestCollector_FoundRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	run(t, reg, search.DFS, search.Config{Start: "A", Goal: "C", DepthLimit: 5})

	n, err := testutil.GatherAndCount(reg, "stepsearch_events_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "seeded, selected, expanded, finished")

	var buf bytes.Buffer
	require.NoError(t, observe.WriteText(&buf, reg))
	text := buf.String()
	assert.Contains(t, text, `stepsearch_events_total{algorithm="dfs",kind="selected"} 3`)
	assert.Contains(t, text, `stepsearch_events_total{algorithm="dfs",kind="expanded"} 2`)
	assert.Contains(t, text, `stepsearch_runs_finished_total{algorithm="dfs",outcome="found"} 1`)
	assert.Contains(t, text, `stepsearch_tree_size{algorithm="dfs"} 3`)
}

func TestCollector_Deepening(t *testing.T) {
	reg := prometheus.NewRegistry()
	run(t, reg, search.DFSID, search.Config{Start: "A", Goal: "C", DepthLimit: 5})

	var buf bytes.Buffer
	require.NoError(t, observe.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), `stepsearch_deepening_restarts_total{algorithm="dfs-id"} 1`)
}

func TestCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observe.NewCollector(reg)
	require.NoError(t, err)
	_, err = observe.NewCollector(reg)
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, observe.OutcomeFound, observe.Outcome(search.Result{Status: search.FoundPath}))
	assert.Equal(t, observe.OutcomeNoPath, observe.Outcome(search.Result{Status: search.Failure, Reason: search.ReasonNoPath}))
	assert.Equal(t, observe.OutcomeDepthExceeded, observe.Outcome(search.Result{Status: search.Failure, Reason: search.ReasonDepthExceeded}))
	assert.Equal(t, observe.OutcomeError, observe.Outcome(search.Result{Status: search.Failure, Reason: "search: start node not found"}))
}
