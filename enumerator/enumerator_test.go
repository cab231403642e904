package enumerator

import (
	"testing"

	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/value"
)

func digit(name string, n int64) *neuron.Primitive {
	return neuron.New(name, nil, value.Int64, func(args []value.Value) (value.Value, bool) {
		return value.NewInt64(n), true
	})
}

func add() *neuron.Primitive {
	return neuron.New("add", []value.Type{value.Int64, value.Int64}, value.Int64,
		func(args []value.Value) (value.Value, bool) {
			a, _ := args[0].AsInt64()
			b, _ := args[1].AsInt64()
			return value.NewInt64(a + b), true
		})
}

func TestEnumerateRejectsNegativeLevel(t *testing.T) {
	if _, err := Enumerate(nil, -1); err == nil {
		t.Fatalf("expected error for negative max level")
	}
}

func TestEnumerateLevelZeroOnlyTopLevelSkeletonsAndLeaves(t *testing.T) {
	p := []*neuron.Primitive{digit("zero", 0), digit("one", 1), add()}
	res, err := Enumerate(p, 0)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(res.Leaves[value.Int64]) != 2 {
		t.Fatalf("leaves[Int64] = %d, want 2", len(res.Leaves[value.Int64]))
	}
	// At level 0 the working set is exactly the nullary leaves plus the
	// single fully-open add skeleton; no nesting has occurred yet.
	if len(res.Skeletons) != 3 {
		t.Fatalf("skeletons = %d, want 3 (got %v)", len(res.Skeletons), res.Skeletons)
	}
}

func TestEnumerateGrowsNestedSkeletonsOverLevels(t *testing.T) {
	p := []*neuron.Primitive{digit("zero", 0), add()}
	res, err := Enumerate(p, 2)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	foundNested := false
	for _, s := range res.Skeletons {
		if s.Depth() > 0 {
			foundNested = true
			break
		}
	}
	if !foundNested {
		t.Fatalf("expected at least one nested skeleton after 2 levels, got %v", res.Skeletons)
	}
}

func TestEnumerateDeduplicatesStructurallyEqualSkeletons(t *testing.T) {
	p := []*neuron.Primitive{add()}
	res, err := Enumerate(p, 3)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	// The single add(P,P) skeleton must not duplicate itself across
	// levels even though it is structurally reachable multiple ways.
	count := 0
	for _, s := range res.Skeletons {
		if s.String() == "add(?Int64, ?Int64)" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("add(?Int64, ?Int64) appears %d times, want 1", count)
	}
}
