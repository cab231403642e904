package value

import (
	"fmt"
	"math"
)

// LocationPair is a single (from, to) pair of grid coordinates; each
// coordinate is a [row, col] pair. It is the element type of the
// LocationPairs value kind.
type LocationPair struct {
	From [2]int
	To   [2]int
}

// Value is a tagged union carrying either a concrete payload for one
// of the registered Types, or a Type itself (when Typ == TypeType).
// Value is immutable once constructed; all accessors are read-only.
type Value struct {
	typ     Type
	payload interface{}
}

// Type returns the tag identifying this Value's kind.
func (v Value) Type() Type { return v.typ }

// NewBool constructs a Bool Value.
func NewBool(b bool) Value { return Value{typ: Bool, payload: b} }

// NewInt8 constructs an Int8 Value.
func NewInt8(i int8) Value { return Value{typ: Int8, payload: i} }

// NewInt32 constructs an Int32 Value.
func NewInt32(i int32) Value { return Value{typ: Int32, payload: i} }

// NewInt64 constructs an Int64 Value.
func NewInt64(i int64) Value { return Value{typ: Int64, payload: i} }

// NewFloat32 constructs a Float32 Value.
func NewFloat32(f float32) Value { return Value{typ: Float32, payload: f} }

// NewFloat64 constructs a Float64 Value.
func NewFloat64(f float64) Value { return Value{typ: Float64, payload: f} }

// NewChar constructs a Char Value. Characters are represented as
// strings (not runes) so that multi-byte glyphs round-trip unchanged.
func NewChar(c string) Value { return Value{typ: Char, payload: c} }

// NewString constructs a String Value.
func NewString(s string) Value { return Value{typ: String, payload: s} }

// NewGrid constructs a Grid Value from a rectangular 2-D slice.
// The slice is not copied; callers must not mutate it afterward.
func NewGrid(rows [][]int8) Value { return Value{typ: Grid, payload: rows} }

// NewGridList constructs a GridList Value from a slice of grids.
func NewGridList(grids [][][]int8) Value { return Value{typ: GridList, payload: grids} }

// NewIntMap constructs an IntMap Value (integer-to-integer mapping).
func NewIntMap(m map[int64]int64) Value { return Value{typ: IntMap, payload: m} }

// NewLocationPairs constructs a LocationPairs Value: a list of groups,
// each group a list of coordinate pairs.
func NewLocationPairs(groups [][]LocationPair) Value {
	return Value{typ: LocationPairs, payload: groups}
}

// NewRegionsList constructs a RegionsList Value: a list of region
// sets, each region set a list of regions, each region a list of
// [row, col] points.
func NewRegionsList(regionSets [][][][2]int) Value {
	return Value{typ: RegionsList, payload: regionSets}
}

// NewTypeValue constructs a meta Value whose payload is a Type itself
// (the "type-of-type" literal used by reflective primitives).
func NewTypeValue(t Type) Value { return Value{typ: TypeType, payload: t} }

// AsBool returns the Bool payload and whether v.Type() == Bool.
func (v Value) AsBool() (bool, bool) { b, ok := v.payload.(bool); return b, ok && v.typ == Bool }

// AsInt8 returns the Int8 payload and whether v.Type() == Int8.
func (v Value) AsInt8() (int8, bool) { i, ok := v.payload.(int8); return i, ok && v.typ == Int8 }

// AsInt32 returns the Int32 payload and whether v.Type() == Int32.
func (v Value) AsInt32() (int32, bool) { i, ok := v.payload.(int32); return i, ok && v.typ == Int32 }

// AsInt64 returns the Int64 payload and whether v.Type() == Int64.
func (v Value) AsInt64() (int64, bool) { i, ok := v.payload.(int64); return i, ok && v.typ == Int64 }

// AsFloat32 returns the Float32 payload and whether v.Type() == Float32.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.payload.(float32)
	return f, ok && v.typ == Float32
}

// AsFloat64 returns the Float64 payload and whether v.Type() == Float64.
func (v Value) AsFloat64() (float64, bool) {
	f, ok := v.payload.(float64)
	return f, ok && v.typ == Float64
}

// AsChar returns the Char payload and whether v.Type() == Char.
func (v Value) AsChar() (string, bool) { s, ok := v.payload.(string); return s, ok && v.typ == Char }

// AsString returns the String payload and whether v.Type() == String.
func (v Value) AsString() (string, bool) {
	s, ok := v.payload.(string)
	return s, ok && v.typ == String
}

// AsGrid returns the Grid payload and whether v.Type() == Grid.
func (v Value) AsGrid() ([][]int8, bool) {
	g, ok := v.payload.([][]int8)
	return g, ok && v.typ == Grid
}

// AsGridList returns the GridList payload and whether v.Type() == GridList.
func (v Value) AsGridList() ([][][]int8, bool) {
	g, ok := v.payload.([][][]int8)
	return g, ok && v.typ == GridList
}

// AsIntMap returns the IntMap payload and whether v.Type() == IntMap.
func (v Value) AsIntMap() (map[int64]int64, bool) {
	m, ok := v.payload.(map[int64]int64)
	return m, ok && v.typ == IntMap
}

// AsLocationPairs returns the LocationPairs payload and whether
// v.Type() == LocationPairs.
func (v Value) AsLocationPairs() ([][]LocationPair, bool) {
	g, ok := v.payload.([][]LocationPair)
	return g, ok && v.typ == LocationPairs
}

// AsRegionsList returns the RegionsList payload and whether
// v.Type() == RegionsList.
func (v Value) AsRegionsList() ([][][][2]int, bool) {
	g, ok := v.payload.([][][][2]int)
	return g, ok && v.typ == RegionsList
}

// AsType returns the Type payload and whether v.Type() == TypeType.
func (v Value) AsType() (Type, bool) {
	t, ok := v.payload.(Type)
	return t, ok && v.typ == TypeType
}

// String renders v for diagnostics and Connection.String().
func (v Value) String() string {
	switch v.typ {
	case TypeType:
		t, _ := v.AsType()
		return t.String()
	case Grid:
		g, _ := v.AsGrid()
		return gridString(g)
	case GridList:
		gl, _ := v.AsGridList()
		s := "["
		for i, g := range gl {
			if i > 0 {
				s += ", "
			}
			s += gridString(g)
		}
		return s + "]"
	default:
		return fmt.Sprintf("%v", v.payload)
	}
}

func gridString(g [][]int8) string {
	s := "["
	for i, row := range g {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", row)
	}
	return s + "]"
}

// Equal reports whether v and other are structurally equal: same
// Type, and deeply equal payloads. Float payloads compare by bit
// representation, so NaN equals NaN and +0 differs from -0.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case Float32:
		a, _ := v.AsFloat32()
		b, _ := other.AsFloat32()
		return math.Float32bits(a) == math.Float32bits(b)
	case Float64:
		a, _ := v.AsFloat64()
		b, _ := other.AsFloat64()
		return math.Float64bits(a) == math.Float64bits(b)
	case Grid:
		a, _ := v.AsGrid()
		b, _ := other.AsGrid()
		return gridsEqual(a, b)
	case GridList:
		a, _ := v.AsGridList()
		b, _ := other.AsGridList()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !gridsEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case IntMap:
		a, _ := v.AsIntMap()
		b, _ := other.AsIntMap()
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			if bv, ok := b[k]; !ok || bv != av {
				return false
			}
		}
		return true
	case LocationPairs:
		a, _ := v.AsLocationPairs()
		b, _ := other.AsLocationPairs()
		return locationPairsEqual(a, b)
	case RegionsList:
		a, _ := v.AsRegionsList()
		b, _ := other.AsRegionsList()
		return regionsEqual(a, b)
	default:
		return v.payload == other.payload
	}
}

func gridsEqual(a, b [][]int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func locationPairsEqual(a, b [][]LocationPair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func regionsEqual(a, b [][][][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if len(a[i][j]) != len(b[i][j]) {
				return false
			}
			for k := range a[i][j] {
				if a[i][j][k] != b[i][j][k] {
					return false
				}
			}
		}
	}
	return true
}
