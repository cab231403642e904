package value

import "math"

// gridShapePenalty is the constant component of the heuristic for a
// pair of grids with mismatched shape: a flat penalty plus the delta
// over the overlapping rows/cols, so that "almost the right shape"
// still ranks ahead of "wildly wrong shape" during search.
const gridShapePenalty = 1000.0

// heuristicFn computes a non-negative distance between two Values of
// the same Type. It is never called with mismatched types.
type heuristicFn func(a, b Value) float64

var heuristics = map[Type]heuristicFn{
	Bool:          boolHeuristic,
	Int8:          numericHeuristic(func(v Value) float64 { i, _ := v.AsInt8(); return float64(i) }),
	Int32:         numericHeuristic(func(v Value) float64 { i, _ := v.AsInt32(); return float64(i) }),
	Int64:         numericHeuristic(func(v Value) float64 { i, _ := v.AsInt64(); return float64(i) }),
	Float32:       numericHeuristic(func(v Value) float64 { f, _ := v.AsFloat32(); return float64(f) }),
	Float64:       numericHeuristic(func(v Value) float64 { f, _ := v.AsFloat64(); return f }),
	Char:          charHeuristic,
	String:        stringHeuristic,
	Grid:          gridHeuristic,
	GridList:      gridListHeuristic,
	IntMap:        intMapHeuristic,
	LocationPairs: equalityHeuristic,
	RegionsList:   equalityHeuristic,
	TypeType:      typeHeuristic,
}

// RegisterHeuristic installs (or overrides) the distance function used
// for a pair of Values sharing Type t. Collaborators that mint new
// Types with NewType must call this once to make those Types usable as
// search targets; without it, values of an unregistered Type fall back
// to equalityHeuristic (0 if equal, 1 otherwise).
func RegisterHeuristic(t Type, fn func(a, b Value) float64) {
	heuristics[t] = fn
}

// Heuristic returns the non-negative distance from v to target. It is
// +Inf whenever the two Values carry different Types, 0 whenever they
// are Equal, and otherwise a domain-appropriate finite scalar.
func (v Value) Heuristic(target Value) float64 {
	if v.typ != target.typ {
		return math.Inf(1)
	}
	if v.Equal(target) {
		return 0
	}
	if fn, ok := heuristics[v.typ]; ok {
		return fn(v, target)
	}
	return equalityHeuristic(v, target)
}

func boolHeuristic(a, b Value) float64 {
	av, _ := a.AsBool()
	bv, _ := b.AsBool()
	if av == bv {
		return 0
	}
	return 1
}

func numericHeuristic(extract func(Value) float64) heuristicFn {
	return func(a, b Value) float64 {
		return math.Abs(extract(a) - extract(b))
	}
}

func charHeuristic(a, b Value) float64 {
	av, _ := a.AsChar()
	bv, _ := b.AsChar()
	return float64(levenshtein(av, bv))
}

func stringHeuristic(a, b Value) float64 {
	av, _ := a.AsString()
	bv, _ := b.AsString()
	return float64(levenshtein(av, bv))
}

func gridHeuristic(a, b Value) float64 {
	ag, _ := a.AsGrid()
	bg, _ := b.AsGrid()
	return gridDistance(ag, bg)
}

// gridDistance scores two grids by per-cell absolute difference when
// their shapes match, or by a shape penalty plus the cell difference
// over the overlapping region when they don't.
func gridDistance(a, b [][]int8) float64 {
	sameShape := len(a) == len(b)
	if sameShape {
		for i := range a {
			if len(a[i]) != len(b[i]) {
				sameShape = false
				break
			}
		}
	}

	rows := min(len(a), len(b))
	var sum float64
	for i := 0; i < rows; i++ {
		cols := min(len(a[i]), len(b[i]))
		for j := 0; j < cols; j++ {
			sum += math.Abs(float64(a[i][j]) - float64(b[i][j]))
		}
	}

	if sameShape {
		return sum
	}
	return gridShapePenalty + sum
}

func gridListHeuristic(a, b Value) float64 {
	ag, _ := a.AsGridList()
	bg, _ := b.AsGridList()
	return gridListDistance(ag, bg)
}

// gridListDistance scores two grid lists by the root-sum-of-squares of
// the per-element grid distance, paired by index. Lists of differing
// length are penalized the same way shape-mismatched grids are: a
// constant per missing/extra element plus the comparable overlap.
func gridListDistance(a, b [][][]int8) float64 {
	n := max(len(a), len(b))
	var sumSq float64
	for i := 0; i < n; i++ {
		var d float64
		switch {
		case i < len(a) && i < len(b):
			d = gridDistance(a[i], b[i])
		default:
			d = gridShapePenalty
		}
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

func intMapHeuristic(a, b Value) float64 {
	am, _ := a.AsIntMap()
	bm, _ := b.AsIntMap()
	seen := make(map[int64]struct{}, len(am)+len(bm))
	var diff float64
	for k, av := range am {
		seen[k] = struct{}{}
		if bv, ok := bm[k]; ok {
			if bv != av {
				diff++
			}
		} else {
			diff++
		}
	}
	for k := range bm {
		if _, ok := seen[k]; !ok {
			diff++
		}
	}
	return diff
}

func equalityHeuristic(a, b Value) float64 {
	if a.Equal(b) {
		return 0
	}
	return 1
}

func typeHeuristic(a, b Value) float64 {
	at, _ := a.AsType()
	bt, _ := b.AsType()
	if at == bt {
		return 0
	}
	return 1
}

// levenshtein computes the edit distance between a and b using the
// classic rolling-row dynamic program. Ported from the reference
// implementation's airs::utility::levenshtein (iterative DP with a
// single rolling "prev" cell rather than two full rows).
func levenshtein(a, b string) int {
	ab, bb := []byte(a), []byte(b)
	n, m := len(ab), len(bb)

	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}

	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			cur := dp[j]
			if ab[i-1] == bb[j-1] {
				dp[j] = prev
			} else {
				dp[j] = 1 + minInt3(prev, dp[j], dp[j-1])
			}
			prev = cur
		}
	}

	return dp[m]
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
