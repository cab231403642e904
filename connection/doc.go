// Package connection implements Connection, the node type of the
// synthesized expression DAG, and SlotValue, the three-way union
// occupying each of a Connection's input positions.
//
// A Connection pairs a *neuron.Primitive with one SlotValue per
// declared input: Concrete(v) feeds a literal value.Value, Sub(e)
// feeds the output of a child Connection, and Placeholder(T) leaves an
// unbound typed hole for the enumerator and parameter binder to fill
// in later. Connections are built by the enumerator, shared by
// reference across candidate sets during search, and only ever mutated
// in place immediately after DeepClone — never while still shared.
package connection
