// Package value defines the tagged-union Value and the open Type
// registry that the rest of the engine is built on.
//
// A Type is an opaque, comparable handle minted by NewType; the engine
// never interprets a Type beyond identity comparison. A fixed set of
// built-in types is registered at init time (Bool, Int8, Int32, Int64,
// Float32, Float64, Char, String, Grid, GridList, IntMap,
// LocationPairs, RegionsList, and the meta type TypeType). Collaborators
// that need a domain type beyond this set call NewType themselves; the
// engine's equality, hashing, and type-checking all work on any Type
// without modification.
//
// Value carries either a concrete payload for one of those types, or a
// Type itself (a first-class reflection of "a value of this type" used
// by primitives such as a literal type-tag neuron). Equality is
// structural, hashing mirrors equality, and Heuristic implements a
// distance function: 0 for equal values, +Inf for mismatched types,
// and a domain-appropriate scalar otherwise.
package value
