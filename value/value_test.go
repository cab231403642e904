package value

import (
	"math"
	"testing"
)

func TestEqualAndHashAgree(t *testing.T) {
	a := NewInt64(42)
	b := NewInt64(42)
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal values hashed differently: %d != %d", a.Hash(), b.Hash())
	}
}

func TestHeuristicMismatchedTypeIsInf(t *testing.T) {
	a := NewInt64(1)
	b := NewString("1")
	if got := a.Heuristic(b); !math.IsInf(got, 1) {
		t.Fatalf("Heuristic across types = %v, want +Inf", got)
	}
}

func TestHeuristicReflexiveZero(t *testing.T) {
	vals := []Value{
		NewInt64(7),
		NewString("hello"),
		NewBool(true),
		NewGrid([][]int8{{1, 2}, {3, 4}}),
	}
	for _, v := range vals {
		if got := v.Heuristic(v); got != 0 {
			t.Errorf("Heuristic(%v, %v) = %v, want 0", v, v, got)
		}
	}
}

func TestStringHeuristicIsLevenshtein(t *testing.T) {
	a := NewString("kitten")
	b := NewString("sitting")
	if got := a.Heuristic(b); got != 3 {
		t.Errorf("Heuristic(kitten, sitting) = %v, want 3", got)
	}
}

func TestNumericHeuristicAbsDiff(t *testing.T) {
	a := NewInt64(2)
	b := NewInt64(9)
	if got := a.Heuristic(b); got != 7 {
		t.Errorf("Heuristic(2, 9) = %v, want 7", got)
	}
}

func TestGridHeuristicSameShape(t *testing.T) {
	a := NewGrid([][]int8{{1, 2}, {3, 4}})
	b := NewGrid([][]int8{{1, 0}, {3, 0}})
	if got := a.Heuristic(b); got != 6 {
		t.Errorf("Heuristic = %v, want 6", got)
	}
}

func TestGridHeuristicMismatchedShapeExceedsPenalty(t *testing.T) {
	a := NewGrid([][]int8{{1, 2}})
	b := NewGrid([][]int8{{1}, {2}})
	if got := a.Heuristic(b); got < gridShapePenalty {
		t.Errorf("Heuristic = %v, want >= shape penalty %v", got, gridShapePenalty)
	}
}

func TestFloatEqualityByBits(t *testing.T) {
	nan := NewFloat64(math.NaN())
	if !nan.Equal(nan) {
		t.Error("NaN should equal itself under bit-representation equality")
	}
	posZero := NewFloat64(0)
	negZero := NewFloat64(math.Copysign(0, -1))
	if posZero.Equal(negZero) {
		t.Error("+0 and -0 should differ under bit-representation equality")
	}
}

func TestNewTypeIsDistinctAndExtensible(t *testing.T) {
	custom := NewType("Custom")
	if custom == Int64 {
		t.Fatal("new type collided with a built-in type")
	}
	v1 := NewTypeValue(custom)
	v2 := NewTypeValue(custom)
	if !v1.Equal(v2) {
		t.Fatal("two type-literal values of the same custom type should be equal")
	}
}

func TestRegisterHeuristicOverridesFallback(t *testing.T) {
	custom := NewType("CustomScored")
	RegisterHeuristic(custom, func(a, b Value) float64 { return 42 })
	v1 := Value{typ: custom, payload: 1}
	v2 := Value{typ: custom, payload: 2}
	if got := v1.Heuristic(v2); got != 42 {
		t.Fatalf("Heuristic = %v, want 42", got)
	}
}
