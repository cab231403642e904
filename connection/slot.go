package connection

import "github.com/synthcore/airs/value"

// slotKind discriminates the three SlotValue variants.
type slotKind int

const (
	kindConcrete slotKind = iota
	kindPlaceholder
	kindSub
)

// SlotValue occupies one input position of a Connection: a literal
// value, a typed hole awaiting parameter binding, or a child
// Connection whose output feeds this position.
type SlotValue struct {
	kind            slotKind
	concrete        value.Value
	placeholderType value.Type
	sub             *Connection
}

// ConcreteSlot wraps a literal value.Value for direct use as an input.
func ConcreteSlot(v value.Value) SlotValue {
	return SlotValue{kind: kindConcrete, concrete: v}
}

// PlaceholderSlot leaves an unbound hole of type t, to be filled later
// by the enumerator's growth loop or the parameter binder.
func PlaceholderSlot(t value.Type) SlotValue {
	return SlotValue{kind: kindPlaceholder, placeholderType: t}
}

// SubSlot wires a child Connection's output into this input position.
func SubSlot(c *Connection) SlotValue {
	return SlotValue{kind: kindSub, sub: c}
}

// IsConcrete reports whether s holds a literal value.
func (s SlotValue) IsConcrete() bool { return s.kind == kindConcrete }

// IsPlaceholder reports whether s is an unbound typed hole.
func (s SlotValue) IsPlaceholder() bool { return s.kind == kindPlaceholder }

// IsSub reports whether s wires in a child Connection.
func (s SlotValue) IsSub() bool { return s.kind == kindSub }

// Concrete returns the wrapped value and true when IsConcrete.
func (s SlotValue) Concrete() (value.Value, bool) {
	return s.concrete, s.kind == kindConcrete
}

// PlaceholderType returns the hole's type and true when IsPlaceholder.
func (s SlotValue) PlaceholderType() (value.Type, bool) {
	return s.placeholderType, s.kind == kindPlaceholder
}

// Sub returns the child Connection and true when IsSub.
func (s SlotValue) Sub() (*Connection, bool) {
	return s.sub, s.kind == kindSub
}

// declaredType returns the type this slot presents to its parent
// primitive: the literal's type, the hole's type, or the child's
// output type.
func (s SlotValue) declaredType() value.Type {
	switch s.kind {
	case kindConcrete:
		return s.concrete.Type()
	case kindPlaceholder:
		return s.placeholderType
	default:
		return s.sub.OutputType()
	}
}

// deepClone returns an independent copy of s; Sub slots are cloned
// recursively, Concrete and Placeholder slots are copied by value
// since value.Value and value.Type are themselves immutable.
func (s SlotValue) deepClone() SlotValue {
	if s.kind == kindSub {
		return SubSlot(s.sub.DeepClone())
	}
	return s
}

// String renders s for Connection.String().
func (s SlotValue) String() string {
	switch s.kind {
	case kindConcrete:
		return s.concrete.String()
	case kindPlaceholder:
		return "?" + s.placeholderType.String()
	default:
		return s.sub.String()
	}
}

// equal reports structural equality between two slots.
func (s SlotValue) equal(other SlotValue) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case kindConcrete:
		return s.concrete.Equal(other.concrete)
	case kindPlaceholder:
		return s.placeholderType == other.placeholderType
	default:
		return s.sub.Equal(other.sub)
	}
}
