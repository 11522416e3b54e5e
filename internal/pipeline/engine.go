// Package pipeline sequences named verification steps with fail-fast
// semantics and nested diagnostic scopes.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/futureCreator/checkrun/internal/log"
)

// Step is one named unit of pipeline work. Run receives a logger already
// scoped to the step's name; a non-nil error stops the whole pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context, lg *log.Logger) error
}

// Engine orchestrates sequential step execution. Steps run strictly in the
// given order, one at a time; the first failure wins and later steps never
// run.
type Engine struct {
	Log     *log.Logger
	Display *Display
}

// Group builds a step that executes its own ordered step list through the
// engine, so the group's scope stays open across every child step.
func (e *Engine) Group(name string, steps ...Step) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context, lg *log.Logger) error {
			return e.execute(ctx, lg, steps)
		},
	}
}

// Execute runs the pipeline and renders the final summary line.
func (e *Engine) Execute(ctx context.Context, steps []Step) error {
	start := time.Now()
	if err := e.execute(ctx, e.Log, steps); err != nil {
		e.Display.Failed(err)
		return err
	}
	e.Display.Summary(time.Since(start))
	return nil
}

func (e *Engine) execute(ctx context.Context, lg *log.Logger, steps []Step) error {
	for _, step := range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		slg := lg.Scope(step.Name)
		scope := slg.ScopePath()
		e.Display.StepStart(scope)
		stepStart := time.Now()

		if err := step.Run(ctx, slg); err != nil {
			e.Display.StepFailed(scope, err)
			return fmt.Errorf("step %q failed: %w", step.Name, err)
		}
		e.Display.StepDone(scope, time.Since(stepStart))
	}
	return nil
}
