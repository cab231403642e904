// Package enumerator grows the set of well-typed expression skeletons
// a primitive library admits, up to a level (depth) bound, the way the
// reference implementation's skeleton-growth loop does: one pass per
// level, each pass rebuilding a per-output-type map of freshly
// deduplicated expressions from the previous pass's results.
package enumerator
