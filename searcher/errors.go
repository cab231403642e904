package searcher

import "errors"

// ErrNoSolution indicates that, after exhausting the candidate space
// for a target, no finite-heuristic candidate was found.
var ErrNoSolution = errors.New("searcher: no finite-heuristic candidate found for target")
