// Package neuron defines Primitive, the named typed function the
// synthesis engine composes into expression trees.
//
// A Primitive is immutable except for its evaluator, which is held
// behind a sync.RWMutex: many goroutines may call Apply concurrently
// (the searcher does, across targets and candidates), and at most one
// goroutine at a time swaps the evaluator via Rebind — moving a
// primitive from its training behavior (reproduce a puzzle's training
// inputs) to its test behavior (reproduce the held-out inputs) without
// re-running search.
//
// Rebind must not be called while a search that may touch this
// Primitive is in flight; this is a caller-enforced contract rather
// than something the engine can detect on its own.
package neuron
