package usecase

import (
	"context"
	"fmt"
	"log"
)

// sagaStep is one {do, undo} pair of a compensating transaction. The
// underlying store gives no multi-statement atomicity, so rollback
// ordering is declared once here instead of re-derived at call sites.
type sagaStep struct {
	name string
	do   func(ctx context.Context) error
	undo func(ctx context.Context) error
}

type saga struct {
	steps []sagaStep
}

func newSaga(steps ...sagaStep) *saga {
	return &saga{steps: steps}
}

// run executes the steps in order. On failure it compensates in
// reverse, including the failed step itself: a step's undo must
// tolerate partially-applied work (and work never applied at all).
func (s *saga) run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.do(ctx); err != nil {
			log.Printf("[saga] step %q failed, compensating: %v", step.name, err)
			s.compensate(ctx, i)
			return fmt.Errorf("step %q failed: %w", step.name, err)
		}
	}
	return nil
}

func (s *saga) compensate(ctx context.Context, failed int) {
	for i := failed; i >= 0; i-- {
		step := s.steps[i]
		if step.undo == nil {
			continue
		}
		if err := step.undo(ctx); err != nil {
			// Compensation failures are logged, not returned: the
			// original failure is the one the caller must see.
			log.Printf("[saga] undo of step %q failed: %v", step.name, err)
		}
	}
}
