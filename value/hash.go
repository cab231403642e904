package value

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"sort"
)

// Hash returns a deterministic hash that mirrors Equal: two equal
// Values always hash equal. FNV-1a is used rather than a third-party
// hash because the payload shapes here are small, fixed-layout tuples
// and grids, not the large byte streams a faster non-cryptographic
// hash (xxhash, murmur3) earns its keep on — the same tradeoff
// wayneeseguin/graft makes for its own cache keys (cache_keys.go,
// "Using fnv as it's built-in and fast").
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	writeUint32(h, v.typ.id)

	switch v.typ {
	case Bool:
		b, _ := v.AsBool()
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case Int8:
		i, _ := v.AsInt8()
		h.Write([]byte{byte(i)})
	case Int32:
		i, _ := v.AsInt32()
		writeUint32(h, uint32(i))
	case Int64:
		i, _ := v.AsInt64()
		writeUint64(h, uint64(i))
	case Float32:
		f, _ := v.AsFloat32()
		writeUint32(h, math.Float32bits(f))
	case Float64:
		f, _ := v.AsFloat64()
		writeUint64(h, math.Float64bits(f))
	case Char:
		s, _ := v.AsChar()
		h.Write([]byte(s))
	case String:
		s, _ := v.AsString()
		h.Write([]byte(s))
	case Grid:
		g, _ := v.AsGrid()
		hashGrid(h, g)
	case GridList:
		gl, _ := v.AsGridList()
		writeUint32(h, uint32(len(gl)))
		for _, g := range gl {
			hashGrid(h, g)
		}
	case IntMap:
		m, _ := v.AsIntMap()
		keys := make([]int64, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			writeUint64(h, uint64(k))
			writeUint64(h, uint64(m[k]))
		}
	case LocationPairs:
		lp, _ := v.AsLocationPairs()
		writeUint32(h, uint32(len(lp)))
		for _, group := range lp {
			writeUint32(h, uint32(len(group)))
			for _, p := range group {
				writeUint64(h, uint64(p.From[0])<<32|uint64(uint32(p.From[1])))
				writeUint64(h, uint64(p.To[0])<<32|uint64(uint32(p.To[1])))
			}
		}
	case RegionsList:
		rl, _ := v.AsRegionsList()
		writeUint32(h, uint32(len(rl)))
		for _, regionSet := range rl {
			writeUint32(h, uint32(len(regionSet)))
			for _, region := range regionSet {
				writeUint32(h, uint32(len(region)))
				for _, pt := range region {
					writeUint64(h, uint64(pt[0])<<32|uint64(uint32(pt[1])))
				}
			}
		}
	case TypeType:
		t, _ := v.AsType()
		writeUint32(h, t.id)
	}

	return h.Sum64()
}

func hashGrid(h io.Writer, g [][]int8) {
	writeUint32(h, uint32(len(g)))
	for _, row := range g {
		writeUint32(h, uint32(len(row)))
		h.Write([]byte(row2bytes(row)))
	}
}

func row2bytes(row []int8) []byte {
	b := make([]byte, len(row))
	for i, v := range row {
		b[i] = byte(v)
	}
	return b
}

func writeUint32(h io.Writer, x uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], x)
	h.Write(buf[:])
}

func writeUint64(h io.Writer, x uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	h.Write(buf[:])
}
