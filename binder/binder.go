package binder

import (
	"sort"

	"github.com/synthcore/airs/connection"
	"github.com/synthcore/airs/internal/xproduct"
	"github.com/synthcore/airs/value"
)

// Candidate pairs a skeleton with its parameter space: every flat
// SlotValue tuple that, once passed to ApplyInputs on a DeepClone of
// Skeleton, yields a fully bound candidate expression.
type Candidate struct {
	Skeleton       *connection.Connection
	ParameterSpace [][]connection.SlotValue
}

// Bind sorts skeletons ascending by cost (the searcher's Occam
// tiebreak order) and, for each, builds its parameter space from
// leaves. A skeleton with no free inputs yields a parameter space of
// one empty tuple — it is already a bound candidate. A skeleton with a
// free type absent from leaves is dropped.
func Bind(skeletons []*connection.Connection, leaves map[value.Type][]*connection.Connection) []Candidate {
	sorted := make([]*connection.Connection, len(skeletons))
	copy(sorted, skeletons)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Cost() < sorted[j].Cost() })

	candidates := make([]Candidate, 0, len(sorted))
	for _, s := range sorted {
		freeTypes := s.FreeInputTypes()
		if len(freeTypes) == 0 {
			candidates = append(candidates, Candidate{
				Skeleton:       s,
				ParameterSpace: [][]connection.SlotValue{{}},
			})
			continue
		}

		perSlot := make([][]connection.SlotValue, len(freeTypes))
		satisfiable := true
		for i, t := range freeTypes {
			sources, ok := leaves[t]
			if !ok || len(sources) == 0 {
				satisfiable = false
				break
			}
			options := make([]connection.SlotValue, len(sources))
			for j, leaf := range sources {
				options[j] = connection.SubSlot(leaf)
			}
			perSlot[i] = options
		}
		if !satisfiable {
			continue
		}

		candidates = append(candidates, Candidate{
			Skeleton:       s,
			ParameterSpace: xproduct.Product(perSlot),
		})
	}
	return candidates
}
