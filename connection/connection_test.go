package connection_test

import (
	"testing"

	"github.com/synthcore/airs/connection"
	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/value"
)

func digitPrimitive(n int64) *neuron.Primitive {
	return neuron.New("digit", nil, value.Int64, func(args []value.Value) (value.Value, bool) {
		return value.NewInt64(n), true
	})
}

func addPrimitive() *neuron.Primitive {
	return neuron.New("add", []value.Type{value.Int64, value.Int64}, value.Int64,
		func(args []value.Value) (value.Value, bool) {
			a, _ := args[0].AsInt64()
			b, _ := args[1].AsInt64()
			return value.NewInt64(a + b), true
		})
}

func mulPrimitive() *neuron.Primitive {
	return neuron.New("mul", []value.Type{value.Int64, value.Int64}, value.Int64,
		func(args []value.Value) (value.Value, bool) {
			a, _ := args[0].AsInt64()
			b, _ := args[1].AsInt64()
			return value.NewInt64(a * b), true
		})
}

func TestArithmeticLeavesAndComposition(t *testing.T) {
	add := addPrimitive()
	mul := mulPrimitive()

	inner, err := connection.New(add, []connection.SlotValue{
		connection.ConcreteSlot(value.NewInt64(2)),
		connection.ConcreteSlot(value.NewInt64(3)),
	})
	if err != nil {
		t.Fatalf("New(add): %v", err)
	}

	out, ok := inner.Output()
	if !ok {
		t.Fatalf("inner.Output() returned undefined")
	}
	got, _ := out.AsInt64()
	if got != 5 {
		t.Fatalf("inner output = %d, want 5", got)
	}
	if inner.Cost() != 2 {
		t.Fatalf("inner cost = %d, want 2", inner.Cost())
	}
	if inner.Depth() != 0 {
		t.Fatalf("inner depth = %d, want 0", inner.Depth())
	}

	outer, err := connection.New(mul, []connection.SlotValue{
		connection.SubSlot(inner),
		connection.ConcreteSlot(value.NewInt64(4)),
	})
	if err != nil {
		t.Fatalf("New(mul): %v", err)
	}

	out, ok = outer.Output()
	if !ok {
		t.Fatalf("outer.Output() returned undefined")
	}
	got, _ = out.AsInt64()
	if got != 20 {
		t.Fatalf("outer output = %d, want 20", got)
	}
	if outer.Cost() != 4 {
		t.Fatalf("outer cost = %d, want 4", outer.Cost())
	}
	if outer.Depth() != 1 {
		t.Fatalf("outer depth = %d, want 1", outer.Depth())
	}

	if want := 3; outer.FreeInputCount() != want {
		t.Fatalf("outer free input count = %d, want %d", outer.FreeInputCount(), want)
	}

	if err := outer.ApplyInputs([]connection.SlotValue{
		connection.ConcreteSlot(value.NewInt64(3)),
		connection.ConcreteSlot(value.NewInt64(5)),
		connection.ConcreteSlot(value.NewInt64(4)),
	}); err != nil {
		t.Fatalf("ApplyInputs: %v", err)
	}

	out, ok = outer.Output()
	if !ok {
		t.Fatalf("outer.Output() after ApplyInputs returned undefined")
	}
	got, _ = out.AsInt64()
	if got != 32 {
		t.Fatalf("outer output after ApplyInputs = %d, want 32", got)
	}
}

func TestApplyInputsRejectsWrongArity(t *testing.T) {
	add := addPrimitive()
	e, err := connection.New(add, []connection.SlotValue{
		connection.PlaceholderSlot(value.Int64),
		connection.PlaceholderSlot(value.Int64),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.ApplyInputs([]connection.SlotValue{connection.ConcreteSlot(value.NewInt64(1))}); err == nil {
		t.Fatalf("expected arity mismatch error, got nil")
	}
}

func TestApplyInputsRejectsTypeMismatch(t *testing.T) {
	add := addPrimitive()
	e, err := connection.New(add, []connection.SlotValue{
		connection.PlaceholderSlot(value.Int64),
		connection.PlaceholderSlot(value.Int64),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = e.ApplyInputs([]connection.SlotValue{
		connection.ConcreteSlot(value.NewBool(true)),
		connection.ConcreteSlot(value.NewInt64(1)),
	})
	if err == nil {
		t.Fatalf("expected type mismatch error, got nil")
	}
}

func TestNewRejectsSlotCountMismatch(t *testing.T) {
	add := addPrimitive()
	_, err := connection.New(add, []connection.SlotValue{connection.PlaceholderSlot(value.Int64)})
	if err == nil {
		t.Fatalf("expected slot count error, got nil")
	}
}

func TestArityZeroSubOverwritesWithoutTypeCheck(t *testing.T) {
	leaf := digitPrimitive(0)
	leafExpr, err := connection.New(leaf, nil)
	if err != nil {
		t.Fatalf("New(leaf): %v", err)
	}

	add := addPrimitive()
	e, err := connection.New(add, []connection.SlotValue{
		connection.SubSlot(leafExpr),
		connection.ConcreteSlot(value.NewInt64(1)),
	})
	if err != nil {
		t.Fatalf("New(add): %v", err)
	}
	if e.FreeInputCount() != 2 {
		t.Fatalf("free input count = %d, want 2", e.FreeInputCount())
	}

	replacement := digitPrimitive(9)
	replacementExpr, err := connection.New(replacement, nil)
	if err != nil {
		t.Fatalf("New(replacement): %v", err)
	}
	if err := e.ApplyInputs([]connection.SlotValue{
		connection.SubSlot(replacementExpr),
		connection.ConcreteSlot(value.NewInt64(1)),
	}); err != nil {
		t.Fatalf("ApplyInputs: %v", err)
	}

	out, ok := e.Output()
	if !ok {
		t.Fatalf("Output() undefined")
	}
	got, _ := out.AsInt64()
	if got != 10 {
		t.Fatalf("output = %d, want 10", got)
	}
}

func TestStructuralEqualityAndHashing(t *testing.T) {
	typeLiteral := neuron.New("int_type_literal", nil, value.TypeType, func(args []value.Value) (value.Value, bool) {
		return value.NewTypeValue(value.Int64), true
	})

	e1, err := connection.New(typeLiteral, nil)
	if err != nil {
		t.Fatalf("New e1: %v", err)
	}
	e2, err := connection.New(typeLiteral, nil)
	if err != nil {
		t.Fatalf("New e2: %v", err)
	}

	if !e1.Equal(e2) {
		t.Fatalf("e1 and e2 should be structurally equal")
	}
	if e1.Hash() != e2.Hash() {
		t.Fatalf("e1 and e2 should hash equal")
	}

	seen := map[uint64][]*connection.Connection{}
	for _, e := range []*connection.Connection{e1, e2} {
		h := e.Hash()
		dup := false
		for _, existing := range seen[h] {
			if existing.Equal(e) {
				dup = true
				break
			}
		}
		if !dup {
			seen[h] = append(seen[h], e)
		}
	}
	total := 0
	for _, bucket := range seen {
		total += len(bucket)
	}
	if total != 1 {
		t.Fatalf("deduplicated set size = %d, want 1", total)
	}
}

func TestDeepCloneEqualAndHashMatches(t *testing.T) {
	add := addPrimitive()
	inner, _ := connection.New(add, []connection.SlotValue{
		connection.ConcreteSlot(value.NewInt64(2)),
		connection.ConcreteSlot(value.NewInt64(3)),
	})
	clone := inner.DeepClone()

	if !inner.Equal(clone) {
		t.Fatalf("deep_clone(e) should equal e")
	}
	if inner.Hash() != clone.Hash() {
		t.Fatalf("hash(deep_clone(e)) should equal hash(e)")
	}

	// Mutating the clone must not affect the original (shared
	// sub-expression safety).
	if err := clone.ApplyInputs([]connection.SlotValue{
		connection.ConcreteSlot(value.NewInt64(30)),
		connection.ConcreteSlot(value.NewInt64(40)),
	}); err != nil {
		t.Fatalf("ApplyInputs on clone: %v", err)
	}
	out, _ := inner.Output()
	got, _ := out.AsInt64()
	if got != 5 {
		t.Fatalf("original mutated via clone: output = %d, want 5", got)
	}
	cloneOut, _ := clone.Output()
	cloneGot, _ := cloneOut.AsInt64()
	if cloneGot != 70 {
		t.Fatalf("clone output = %d, want 70", cloneGot)
	}
}

func TestStringRoundTrip(t *testing.T) {
	leaf := digitPrimitive(7)
	leafExpr, _ := connection.New(leaf, nil)
	if leafExpr.String() != "digit" {
		t.Fatalf("leaf string = %q, want %q", leafExpr.String(), "digit")
	}

	add := addPrimitive()
	e, _ := connection.New(add, []connection.SlotValue{
		connection.SubSlot(leafExpr),
		connection.ConcreteSlot(value.NewInt64(3)),
	})
	want := "add(digit, 3)"
	if e.String() != want {
		t.Fatalf("string = %q, want %q", e.String(), want)
	}
}
