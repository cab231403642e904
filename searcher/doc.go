// Package searcher runs the parallel best-match search: for each
// target value, it evaluates bound candidates (in ascending skeleton
// cost order) and returns the one minimizing heuristic distance,
// stopping early once a candidate beats the caller's epsilon
// threshold. Targets are searched concurrently, and within a target,
// skeletons are searched concurrently too, via a bounded errgroup per
// target.
package searcher
