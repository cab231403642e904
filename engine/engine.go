package engine

import (
	"context"
	"fmt"

	"github.com/synthcore/airs/binder"
	"github.com/synthcore/airs/connection"
	"github.com/synthcore/airs/enumerator"
	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/searcher"
	"github.com/synthcore/airs/value"
)

// Engine is the caller-facing entry point: it owns a primitive
// library and wires the enumerator, parameter binder, and searcher
// together on every Learn call. Engine holds no state across calls
// beyond the primitive library itself — re-synthesizing after a
// Primitive.Rebind requires calling Learn again.
type Engine struct {
	primitives []*neuron.Primitive
	cfg        *engineConfig
}

// New constructs an Engine over the given primitive library.
func New(primitives []*neuron.Primitive, opts ...Option) *Engine {
	ps := make([]*neuron.Primitive, len(primitives))
	copy(ps, primitives)
	return &Engine{primitives: ps, cfg: newEngineConfig(opts...)}
}

// Learn returns one chosen expression per target, in input order.
// maxLevel bounds the enumerator's skeleton depth; eps is the
// searcher's early-termination threshold. A target for which no
// finite-heuristic candidate exists leaves a nil entry at its index
// and contributes to the returned MultiError; Learn still returns the
// full results slice so callers can use whichever targets did
// converge.
func (e *Engine) Learn(ctx context.Context, targets []value.Value, maxLevel int, eps float64) ([]*connection.Connection, error) {
	grown, err := enumerator.Enumerate(e.primitives, maxLevel)
	if err != nil {
		return nil, fmt.Errorf("engine: enumeration failed: %w", err)
	}

	candidates := binder.Bind(grown.Skeletons, grown.Leaves)
	if len(candidates) == 0 {
		var multi MultiError
		for range targets {
			multi.Append(searcher.ErrNoSolution)
		}
		return make([]*connection.Connection, len(targets)), multi
	}

	results, errs := searcher.Search(ctx, targets, candidates, eps, e.cfg.searcherOptions()...)

	var multi MultiError
	for i, err := range errs {
		if err != nil {
			multi.Append(fmt.Errorf("target %d: %w", i, err))
		}
	}
	if multi.Count() > 0 {
		return results, multi
	}
	return results, nil
}
