package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/observe"
	"github.com/katalvlaran/stepsearch/search"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		maxSteps int
		metrics  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a search to completion, printing the fringe after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, sync, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer sync()

			var (
				reg *prometheus.Registry
				obs []search.Observer
			)
			if metrics {
				reg = prometheus.NewRegistry()
				col, err := observe.NewCollector(reg)
				if err != nil {
					return err
				}
				obs = append(obs, col)
			}

			eng, err := opts.newEngine(cmd, log, obs...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = runSteps(cmd, eng, maxSteps, out); err != nil {
				return err
			}
			if reg != nil {
				fmt.Fprintln(out)
				return observe.WriteText(out, reg)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 10000, "fail after this many steps past the seed (0 = no limit)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print Prometheus metrics after the run")

	return cmd
}

// runSteps drives eng step by step, printing one line per step and a summary.
func runSteps(cmd *cobra.Command, eng *search.Engine, maxSteps int, out io.Writer) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintf(out, "%s from %s to %s (depth limit %d)\n",
		eng.Algorithm(), eng.Config().Start, eng.Config().Goal, eng.Config().DepthLimit)
	st := eng.Graph().Stats()
	fmt.Fprintf(out, "graph: %d nodes, %d edges, directed=%t\n", st.NodeCount, st.EdgeCount, st.Directed)

	res, err := eng.FirstStep()
	if err != nil {
		return err
	}
	printStep(out, 0, eng.Snapshot())

	// steps counts NextStep calls; the budget matches search.Engine.Run.
	for steps := 0; !eng.State().Terminal(); {
		if err = ctx.Err(); err != nil {
			return err
		}
		if maxSteps > 0 && steps >= maxSteps {
			return fmt.Errorf("%w after %d steps", search.ErrStepBudget, steps)
		}
		res, err = eng.NextStep()
		steps++
		if err != nil {
			return err
		}
		printStep(out, steps, eng.Snapshot())
	}

	snap := eng.Snapshot()
	switch res.Status {
	case search.FoundPath:
		fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " "))
	default:
		fmt.Fprintf(out, "no path: %s\n", res.Reason)
	}
	fmt.Fprintf(out, "tree nodes: %d, discovered: %d, run: %s\n",
		snap.Tree.Len(), len(snap.Discovered), snap.RunID)

	return nil
}

// printStep writes one line per step; step 0 is the seeded run.
func printStep(out io.Writer, step int, s search.Snapshot) {
	line := fmt.Sprintf("%4d  fringe=[%s]  expanded=[%s]",
		step, s.FringeText, strings.Join(s.Expanded, " "))
	if s.Algorithm == search.DFSID {
		line += fmt.Sprintf("  ceiling=%d restarts=%d", s.DepthLimitCounter, s.Iteration)
	}
	fmt.Fprintln(out, line)
}
