package enumerator

import "github.com/synthcore/airs/connection"

// exprSet deduplicates connections under structural equality, using
// Hash as a bucket key the way a hand-rolled hash set does when the
// element type isn't comparable with Go's built-in map equality
// (Connection carries a mutex and must be compared via Equal, not ==).
type exprSet struct {
	buckets map[uint64][]*connection.Connection
	size    int
}

func newExprSet() *exprSet {
	return &exprSet{buckets: make(map[uint64][]*connection.Connection)}
}

// insert adds e unless a structurally equal connection is already
// present. It reports whether e was newly inserted.
func (s *exprSet) insert(e *connection.Connection) bool {
	h := e.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(e) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], e)
	s.size++
	return true
}

func (s *exprSet) all() []*connection.Connection {
	out := make([]*connection.Connection, 0, s.size)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}
