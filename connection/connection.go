package connection

import (
	"fmt"
	"strings"
	"sync"

	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/value"
)

// Connection is a node in the expression DAG: a primitive plus one
// SlotValue per declared input. muInputs guards the inputs slice the
// same way a graph might split its locks by field; the contract is
// that a Connection is only mutated (via ApplyInputs) immediately
// after DeepClone, before it is shared with any other goroutine, so
// this lock is a defensive backstop rather than something correct
// code should ever contend on.
type Connection struct {
	primitive *neuron.Primitive
	muInputs  sync.RWMutex
	inputs    []SlotValue
}

// New constructs a Connection. It checks only that the slot count
// matches the primitive's declared arity. Slot types are checked later
// by ApplyInputs, and only when it overwrites a Placeholder or Concrete
// slot with a non-Sub value; neither New nor Output checks slot types,
// and nothing checks the tree for cycles.
func New(primitive *neuron.Primitive, slots []SlotValue) (*Connection, error) {
	if len(slots) != primitive.Arity() {
		return nil, fmt.Errorf("%w: primitive %q wants %d slots, got %d",
			ErrSlotCount, primitive.Name(), primitive.Arity(), len(slots))
	}
	inputs := make([]SlotValue, len(slots))
	copy(inputs, slots)
	return &Connection{primitive: primitive, inputs: inputs}, nil
}

// Primitive returns the primitive this Connection wraps.
func (c *Connection) Primitive() *neuron.Primitive { return c.primitive }

// OutputType returns the type of value Output produces when defined.
func (c *Connection) OutputType() value.Type { return c.primitive.OutputType() }

// Slots returns a defensive copy of the current input slots.
func (c *Connection) Slots() []SlotValue {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()
	out := make([]SlotValue, len(c.inputs))
	copy(out, c.inputs)
	return out
}

// Output recursively evaluates this Connection's children and applies
// its primitive to the resulting argument vector. It returns
// (zero, false) whenever any child is undefined, any slot is still an
// unbound Placeholder, or the primitive itself is undefined on the
// resulting arguments.
func (c *Connection) Output() (value.Value, bool) {
	c.muInputs.RLock()
	slots := make([]SlotValue, len(c.inputs))
	copy(slots, c.inputs)
	c.muInputs.RUnlock()

	args := make([]value.Value, len(slots))
	for i, s := range slots {
		switch {
		case s.IsConcrete():
			args[i], _ = s.Concrete()
		case s.IsSub():
			sub, _ := s.Sub()
			out, ok := sub.Output()
			if !ok {
				return value.Value{}, false
			}
			args[i] = out
		default: // Placeholder: unbound hole, output is ill-defined.
			return value.Value{}, false
		}
	}
	return c.primitive.Apply(args)
}

// Cost is the size/complexity tiebreak used when ranking candidates:
// one unit per slot, plus the recursive cost of every Sub child.
func (c *Connection) Cost() int {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	cost := len(c.inputs)
	for _, s := range c.inputs {
		if sub, ok := s.Sub(); ok {
			cost += sub.Cost()
		}
	}
	return cost
}

// Depth is the maximum nesting depth of Sub slots, starting at 0 for a
// Connection with no Sub children.
func (c *Connection) Depth() int { return c.depthFrom(0) }

func (c *Connection) depthFrom(d int) int {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	max := d
	for _, s := range c.inputs {
		if sub, ok := s.Sub(); ok {
			if got := sub.depthFrom(d + 1); got > max {
				max = got
			}
		}
	}
	return max
}

// FreeInputTypes returns the flattened sequence of types that
// ApplyInputs consumes, obtained by walking slots left to right: a
// Concrete slot contributes its own type (it is still one position
// consume overwrites), a Placeholder(T) contributes T, and a Sub(e)
// contributes e's own FreeInputTypes, or [e.OutputType()] when e is a
// true leaf (arity 0, so it has no slots of its own) — a leaf child
// still counts as one free hole of its result type, available for
// outer-level rebinding via ApplyInputs.
func (c *Connection) FreeInputTypes() []value.Type {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	var out []value.Type
	for _, s := range c.inputs {
		switch {
		case s.IsConcrete():
			v, _ := s.Concrete()
			out = append(out, v.Type())
		case s.IsPlaceholder():
			t, _ := s.PlaceholderType()
			out = append(out, t)
		case s.IsSub():
			sub, _ := s.Sub()
			childFree := sub.FreeInputTypes()
			if len(childFree) == 0 {
				out = append(out, sub.OutputType())
			} else {
				out = append(out, childFree...)
			}
		}
	}
	return out
}

// FreeInputCount is len(FreeInputTypes()), the arity ApplyInputs
// expects.
func (c *Connection) FreeInputCount() int { return len(c.FreeInputTypes()) }

// ApplyInputs rewrites the tree in preorder, consuming a flat inputs
// vector left to right. len(inputs) must equal FreeInputCount(); any
// other length is a contract violation reported as ErrArityMismatch.
// Callers must DeepClone before calling ApplyInputs on a Connection
// that is shared with other goroutines.
func (c *Connection) ApplyInputs(inputs []SlotValue) error {
	want := c.FreeInputCount()
	if len(inputs) != want {
		return fmt.Errorf("%w: connection %q wants %d free inputs, got %d",
			ErrArityMismatch, c.primitive.Name(), want, len(inputs))
	}
	pos := 0
	return c.consume(inputs, &pos)
}

func (c *Connection) consume(inputs []SlotValue, pos *int) error {
	c.muInputs.Lock()
	defer c.muInputs.Unlock()

	declared := c.primitive.InputTypes()
	for i := range c.inputs {
		slot := c.inputs[i]

		if sub, ok := slot.Sub(); ok {
			k := sub.FreeInputCount()
			if k > 0 {
				if *pos+k > len(inputs) {
					return fmt.Errorf("%w: connection %q ran out of inputs at slot %d",
						ErrArityMismatch, c.primitive.Name(), i)
				}
				inner := 0
				if err := sub.consume(inputs[*pos:*pos+k], &inner); err != nil {
					return err
				}
				*pos += k
				continue
			}
			// Arity-0 Sub: overwrite this slot directly, no type
			// check — this is the leaf-rebinding shortcut that lets a
			// closed subtree stand in for any placeholder of its
			// output type.
			if *pos >= len(inputs) {
				return fmt.Errorf("%w: connection %q ran out of inputs at slot %d",
					ErrArityMismatch, c.primitive.Name(), i)
			}
			c.inputs[i] = inputs[*pos]
			*pos++
			continue
		}

		// Placeholder or Concrete: type-checked overwrite, unless the
		// replacement is itself a Sub (its type is trusted).
		if *pos >= len(inputs) {
			return fmt.Errorf("%w: connection %q ran out of inputs at slot %d",
				ErrArityMismatch, c.primitive.Name(), i)
		}
		next := inputs[*pos]
		if !next.IsSub() && next.declaredType() != declared[i] {
			return fmt.Errorf("%w: primitive %q slot %d expects %s, got %s",
				ErrTypeMismatch, c.primitive.Name(), i, declared[i], next.declaredType())
		}
		c.inputs[i] = next
		*pos++
	}
	return nil
}

// DeepClone returns an independent Connection: its slot list is a deep
// copy (Sub children are cloned recursively), while the underlying
// Primitive is shared by reference, not copied.
func (c *Connection) DeepClone() *Connection {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	clone := make([]SlotValue, len(c.inputs))
	for i, s := range c.inputs {
		clone[i] = s.deepClone()
	}
	return &Connection{primitive: c.primitive, inputs: clone}
}

// String renders c as "name" when nullary, or
// "name(arg1, ..., argN)" otherwise, recursively stringifying each
// slot.
func (c *Connection) String() string {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	if len(c.inputs) == 0 {
		return c.primitive.Name()
	}
	args := make([]string, len(c.inputs))
	for i, s := range c.inputs {
		args[i] = s.String()
	}
	return fmt.Sprintf("%s(%s)", c.primitive.Name(), strings.Join(args, ", "))
}

// Equal reports structural equality: same primitive identity and
// recursively equal slots.
func (c *Connection) Equal(other *Connection) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.primitive != other.primitive {
		return false
	}

	c.muInputs.RLock()
	other.muInputs.RLock()
	defer c.muInputs.RUnlock()
	defer other.muInputs.RUnlock()

	if len(c.inputs) != len(other.inputs) {
		return false
	}
	for i := range c.inputs {
		if !c.inputs[i].equal(other.inputs[i]) {
			return false
		}
	}
	return true
}

// Hash is a deterministic structural hash consistent with Equal: equal
// Connections always hash equal.
func (c *Connection) Hash() uint64 {
	c.muInputs.RLock()
	defer c.muInputs.RUnlock()

	h := fnvOffset
	h = fnvMix(h, c.primitive.Identity())
	for _, s := range c.inputs {
		h = fnvMix(h, slotHash(s))
	}
	return h
}

func slotHash(s SlotValue) uint64 {
	switch {
	case s.IsConcrete():
		v, _ := s.Concrete()
		return fnvMix(1, v.Hash())
	case s.IsPlaceholder():
		t, _ := s.PlaceholderType()
		return fnvMix(2, uint64(typeOrdinal(t)))
	default:
		sub, _ := s.Sub()
		return fnvMix(3, sub.Hash())
	}
}

// typeOrdinal extracts a stable per-process numeric identity from a
// value.Type for hashing purposes, via its String-visible identity
// (value.Type does not expose its internal id, so we hash the name —
// collisions between two distinctly-registered types of the same name
// are exceedingly unlikely and only ever degrade hashing, never
// equality, since Hash is a performance aid and Equal is authoritative).
func typeOrdinal(t value.Type) uint64 {
	h := fnvOffset
	for _, b := range []byte(t.String()) {
		h = (h ^ uint64(b)) * fnvPrime
	}
	return h
}

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

func fnvMix(h, x uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = (h ^ (x & 0xff)) * fnvPrime
		x >>= 8
	}
	return h
}
