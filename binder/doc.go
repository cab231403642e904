// Package binder turns the enumerator's skeletons into bound
// candidates by enumerating, for each skeleton, the cartesian product
// of nullary sources that type-match its free input slots. Skeletons
// for which some free type has no available nullary source are
// discarded as unsatisfiable rather than reported as an error — this
// is the recoverable "unsatisfiable parameterization" case the error
// design distinguishes from contract violations.
package binder
