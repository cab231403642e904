package neuron

import (
	"sync"
	"sync/atomic"

	"github.com/synthcore/airs/value"
)

// Evaluator maps a vector of argument Values to an output Value, or
// reports that the primitive is undefined on those arguments (the
// boolean is false). Evaluators must be safe for concurrent use: the
// searcher calls them from many goroutines at once.
type Evaluator func(args []value.Value) (value.Value, bool)

// Primitive is a named typed function: an ordered input type vector,
// an output type, and a pluggable evaluator. Name, InputTypes, and
// OutputType never change after New; the evaluator is the one
// externally-synchronized mutable field (see Rebind).
type Primitive struct {
	id         uint64
	name       string
	inputTypes []value.Type
	outputType value.Type
	mu         sync.RWMutex
	evaluator  Evaluator
}

var nextPrimitiveID uint64

// New constructs a Primitive with the given name, input types, output
// type, and initial evaluator. inputTypes may be empty (a nullary
// primitive / leaf).
func New(name string, inputTypes []value.Type, outputType value.Type, eval Evaluator) *Primitive {
	types := make([]value.Type, len(inputTypes))
	copy(types, inputTypes)
	return &Primitive{
		id:         atomic.AddUint64(&nextPrimitiveID, 1),
		name:       name,
		inputTypes: types,
		outputType: outputType,
		evaluator:  eval,
	}
}

// Identity returns a process-unique, stable id minted when this
// Primitive was created. connection.Connection uses it (rather than a
// raw pointer) to build deterministic structural hashes.
func (p *Primitive) Identity() uint64 { return p.id }

// Name returns the primitive's name, used verbatim by Connection.String.
func (p *Primitive) Name() string { return p.name }

// InputTypes returns the primitive's declared input type vector. The
// returned slice is a defensive copy.
func (p *Primitive) InputTypes() []value.Type {
	out := make([]value.Type, len(p.inputTypes))
	copy(out, p.inputTypes)
	return out
}

// Arity returns len(InputTypes()); Arity() == 0 means p is a leaf.
func (p *Primitive) Arity() int { return len(p.inputTypes) }

// OutputType returns the type of value Apply produces when defined.
func (p *Primitive) OutputType() value.Type { return p.outputType }

// Apply invokes the current evaluator. It returns (output, true) when
// the primitive is defined on args, or (zero Value, false) when not —
// the engine treats the latter as a heuristic of +Inf for any
// expression that depends on this call.
func (p *Primitive) Apply(args []value.Value) (value.Value, bool) {
	p.mu.RLock()
	eval := p.evaluator
	p.mu.RUnlock()
	return eval(args)
}

// Rebind atomically swaps the evaluator. Callers must not invoke
// Rebind while a search that may call Apply on this Primitive is in
// flight; Rebind itself only guarantees that concurrent readers
// observe one complete closure or the next, never a torn one.
func (p *Primitive) Rebind(eval Evaluator) {
	p.mu.Lock()
	p.evaluator = eval
	p.mu.Unlock()
}
