package search

import (
	"context"
	"fmt"
)

// Run drives the engine to a terminal outcome. It calls FirstStep unless a
// run is already active, then NextStep until the run ends, ctx is done or
// maxSteps NextStep calls were made (maxSteps <= 0 means no budget).
//
// It returns the last result and the number of NextStep calls.
// Errors: anything FirstStep/NextStep return, ctx.Err(), ErrStepBudget.
func (e *Engine) Run(ctx context.Context, maxSteps int) (Result, int, error) {
	res := e.result
	if e.state != Running {
		var err error
		if res, err = e.FirstStep(); err != nil {
			return res, 0, err
		}
	}

	steps := 0
	for res.Status == StillRunning {
		if err := ctx.Err(); err != nil {
			return res, steps, err
		}
		if maxSteps > 0 && steps >= maxSteps {
			return res, steps, fmt.Errorf("%w: %d steps", ErrStepBudget, maxSteps)
		}
		var err error
		res, err = e.NextStep()
		steps++
		if err != nil {
			return res, steps, err
		}
	}

	return res, steps, nil
}
