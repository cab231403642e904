package enumerator

import "errors"

// ErrNegativeLevel indicates Enumerate was called with a negative
// max_level, which is a contract violation (the level budget is a
// non-negative integer per the external interface).
var ErrNegativeLevel = errors.New("enumerator: max level must be non-negative")
