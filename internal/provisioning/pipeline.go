package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes the stages in order and stops at the first error.
// Nothing is rolled back; resources created by earlier stages remain.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d stages...", len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("provisioning interrupted before %s: %w", phase.Name(), err)
		}

		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))
		if c, ok := phase.(Conditional); ok && !c.Enabled(ctx) {
			LogPhaseSkipped(ctx.Observer, name, "disabled in configuration")
			ctx.Metrics.SkipStage(phase.Name())
			continue
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, name)

		err := phase.Provision(ctx)
		ctx.Metrics.ObserveStage(phase.Name(), time.Since(phaseStart), err)
		if err != nil {
			LogPhaseFailed(ctx.Observer, name, err)
			return fmt.Errorf("%s stage failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, name, time.Since(phaseStart))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
