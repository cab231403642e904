package enumerator

import (
	"fmt"

	"github.com/synthcore/airs/connection"
	"github.com/synthcore/airs/internal/xproduct"
	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/value"
)

// Result is the enumerator's output: the grown skeleton set (including
// the reinserted nullary leaves) and the leaves map the binder needs
// to fill free slots.
type Result struct {
	Skeletons []*connection.Connection
	Leaves    map[value.Type][]*connection.Connection
}

// Enumerate grows skeletons from the primitive library p across
// maxLevel passes. Nullary primitives become leaves directly; every
// other primitive starts as a fully-open skeleton (every slot a
// Placeholder of the primitive's declared input type) and is grown one
// level at a time by substituting, at every slot independently, either
// "stay open" or "wrap a same-typed expression produced by the
// previous level", then deduplicating by structural equality.
func Enumerate(primitives []*neuron.Primitive, maxLevel int) (*Result, error) {
	if maxLevel < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLevel, maxLevel)
	}

	leaves := make(map[value.Type][]*connection.Connection)
	working := newExprSet()

	for _, p := range primitives {
		if p.Arity() == 0 {
			leaf, err := connection.New(p, nil)
			if err != nil {
				return nil, err
			}
			leaves[p.OutputType()] = append(leaves[p.OutputType()], leaf)
			continue
		}

		slots := make([]connection.SlotValue, p.Arity())
		for i, t := range p.InputTypes() {
			slots[i] = connection.PlaceholderSlot(t)
		}
		skeleton, err := connection.New(p, slots)
		if err != nil {
			return nil, err
		}
		working.insert(skeleton)
	}

	grown := map[value.Type]*exprSet{}

	for level := 0; level < maxLevel; level++ {
		// next starts as a carried-forward copy of grown: each level's
		// skeletons accumulate rather than replace the previous
		// level's, so a type can keep growing deeper across levels.
		next := map[value.Type]*exprSet{}
		for t, set := range grown {
			carried := newExprSet()
			for _, e := range set.all() {
				carried.insert(e)
			}
			next[t] = carried
		}

		for _, s := range working.all() {
			prim := s.Primitive()
			inputTypes := prim.InputTypes()

			perSlot := make([][]connection.SlotValue, len(inputTypes))
			for i, t := range inputTypes {
				options := []connection.SlotValue{connection.PlaceholderSlot(t)}
				if set, ok := grown[t]; ok {
					for _, e := range set.all() {
						options = append(options, connection.SubSlot(e))
					}
				}
				perSlot[i] = options
			}

			for _, tuple := range xproduct.Product(perSlot) {
				grownExpr, err := connection.New(prim, tuple)
				if err != nil {
					return nil, err
				}
				outType := prim.OutputType()
				if next[outType] == nil {
					next[outType] = newExprSet()
				}
				next[outType].insert(grownExpr)
			}
		}

		grown = next
		working = newExprSet()
		for _, set := range grown {
			for _, e := range set.all() {
				working.insert(e)
			}
		}
	}

	for _, es := range leaves {
		for _, e := range es {
			working.insert(e)
		}
	}

	return &Result{Skeletons: working.all(), Leaves: leaves}, nil
}
