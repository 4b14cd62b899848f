// Package pipeline runs ordered precondition stages over a request value.
//
// A stage either returns nil, letting the next stage run, or an error, which
// halts the pipeline. The first failure wins and later stages never observe
// the request.
package pipeline

import "context"

// Stage inspects and may enrich req. A non-nil error stops the pipeline.
type Stage[T any] func(ctx context.Context, req *T) error

// Pipeline is an immutable ordered list of stages.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// New builds a pipeline from stages in execution order. Nil stages are skipped.
func New[T any](stages ...Stage[T]) Pipeline[T] {
	return Pipeline[T]{}.Then(stages...)
}

// Then returns a new pipeline with stages appended after the existing ones.
func (p Pipeline[T]) Then(stages ...Stage[T]) Pipeline[T] {
	next := make([]Stage[T], 0, len(p.stages)+len(stages))
	next = append(next, p.stages...)
	for _, stage := range stages {
		if stage != nil {
			next = append(next, stage)
		}
	}
	return Pipeline[T]{stages: next}
}

// Run executes the stages left to right and returns the first failure.
func (p Pipeline[T]) Run(ctx context.Context, req *T) error {
	for _, stage := range p.stages {
		if err := stage(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
