package searcher

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/synthcore/airs/binder"
	"github.com/synthcore/airs/connection"
	"github.com/synthcore/airs/value"
)

// best tracks the minimum (heuristic, expression.cost) pair seen so
// far for one target. A single floating-point word would suffice for
// the heuristic alone, but the cost tiebreak and the winning
// expression itself must travel together, so a small mutex-guarded
// struct stands in for the atomic word; contention is negligible next
// to evaluating a candidate. idx breaks ties among equal (h, cost)
// pairs by candidate position in the caller-supplied (cost-sorted)
// candidate slice, since parallel reduction order is otherwise
// unspecified; stableOrder disables it when the caller prefers
// first-finisher-wins instead.
type best struct {
	mu          sync.Mutex
	expr        *connection.Connection
	h           float64
	cost        int
	idx         int
	stableOrder bool
}

func newBest(stableOrder bool) *best { return &best{h: math.Inf(1), stableOrder: stableOrder} }

func (b *best) heuristic() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.h
}

func (b *best) consider(expr *connection.Connection, h float64, idx int) {
	cost := expr.Cost()
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.expr == nil, h < b.h:
		b.expr, b.h, b.cost, b.idx = expr, h, cost, idx
	case h == b.h && cost < b.cost:
		b.expr, b.h, b.cost, b.idx = expr, h, cost, idx
	case b.stableOrder && h == b.h && cost == b.cost && idx < b.idx:
		b.expr, b.h, b.cost, b.idx = expr, h, cost, idx
	}
}

func (b *best) result() (*connection.Connection, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.expr, b.h
}

// Search runs one best-match search per target, in parallel, and
// returns a same-length result and error slice (results[i]/errs[i]
// pair with targets[i]). A per-target ErrNoSolution does not abort the
// other targets' searches.
func Search(ctx context.Context, targets []value.Value, candidates []binder.Candidate, eps float64, opts ...Option) ([]*connection.Connection, []error) {
	cfg := newSearchConfig(opts...)

	results := make([]*connection.Connection, len(targets))
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	wg.Add(len(targets))
	for i, target := range targets {
		i, target := i, target
		go func() {
			defer wg.Done()
			results[i], errs[i] = searchOne(ctx, target, candidates, eps, cfg.maxWorkers, cfg.stableOrder)
		}()
	}
	wg.Wait()

	return results, errs
}

func searchOne(ctx context.Context, target value.Value, candidates []binder.Candidate, eps float64, maxWorkers int, stableOrder bool) (*connection.Connection, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b := newBest(stableOrder)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for idx, cand := range candidates {
		idx, cand := idx, cand
		g.Go(func() error {
			for _, tuple := range cand.ParameterSpace {
				select {
				case <-gctx.Done():
					return nil
				default:
				}
				if b.heuristic() < eps {
					cancel()
					return nil
				}

				attempt := cand.Skeleton.DeepClone()
				if err := attempt.ApplyInputs(tuple); err != nil {
					// The binder only ever builds type-matching
					// tuples; a mismatch here means a primitive's
					// declared types changed after binding, which is
					// a contract violation, not a search failure.
					return err
				}

				h := math.Inf(1)
				if out, ok := attempt.Output(); ok {
					h = out.Heuristic(target)
				}
				b.consider(attempt, h, idx)

				if h < eps {
					cancel()
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	expr, h := b.result()
	if expr == nil || math.IsInf(h, 1) {
		return nil, ErrNoSolution
	}
	return expr, nil
}
