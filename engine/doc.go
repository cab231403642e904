// Package engine wires the enumerator, parameter binder, and searcher
// into two caller-facing entry points: New, which constructs an engine
// from a primitive library, and Learn, which returns one expression
// per target. Primitives and values are built with the neuron and
// value packages, which a collaborator imports alongside this one.
package engine
