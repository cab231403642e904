// Command airsdemo wires the engine end to end on two seed scenarios:
// synthesizing a small arithmetic/string program, and a rebindable
// grid-flip program trained on one grid pair and then re-evaluated
// against a different pair without re-synthesis.
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/synthcore/airs/engine"
	"github.com/synthcore/airs/neuron"
	"github.com/synthcore/airs/value"
)

func main() {
	arithmeticDemo()
	gridFlipDemo()
}

func arithmeticDemo() {
	primitives := make([]*neuron.Primitive, 0, 13)
	for i := int64(0); i <= 9; i++ {
		n := i
		primitives = append(primitives, neuron.New(strconv.FormatInt(n, 10), nil, value.Int64,
			func(args []value.Value) (value.Value, bool) { return value.NewInt64(n), true }))
	}
	primitives = append(primitives,
		neuron.New("add", []value.Type{value.Int64, value.Int64}, value.Int64,
			func(args []value.Value) (value.Value, bool) {
				a, _ := args[0].AsInt64()
				b, _ := args[1].AsInt64()
				return value.NewInt64(a + b), true
			}),
		neuron.New("mul", []value.Type{value.Int64, value.Int64}, value.Int64,
			func(args []value.Value) (value.Value, bool) {
				a, _ := args[0].AsInt64()
				b, _ := args[1].AsInt64()
				return value.NewInt64(a * b), true
			}),
		neuron.New("int_to_str", []value.Type{value.Int64}, value.String,
			func(args []value.Value) (value.Value, bool) {
				a, _ := args[0].AsInt64()
				return value.NewString(strconv.FormatInt(a, 10)), true
			}),
	)

	e := engine.New(primitives)
	target := value.NewString("11")
	results, err := e.Learn(context.Background(), []value.Value{target}, 2, 1e-6)
	if err != nil {
		log.Fatalf("arithmetic demo: learn failed: %v", err)
	}

	expr := results[0]
	out, _ := expr.Output()
	fmt.Printf("arithmetic: target=%q program=%s output=%q cost=%d depth=%d\n",
		target.String(), expr, out.String(), expr.Cost(), expr.Depth())
}

func gridFlipDemo() {
	trainIn := value.NewGrid([][]int8{{1, 2}, {3, 4}})
	trainOut := value.NewGrid([][]int8{{2, 1}, {4, 3}})
	testIn := value.NewGrid([][]int8{{5, 6}, {7, 8}})
	testOut := value.NewGrid([][]int8{{6, 5}, {8, 7}})

	inputNeuron := neuron.New("input", nil, value.Grid,
		func(args []value.Value) (value.Value, bool) { return trainIn, true })
	fliplr := neuron.New("fliplr", []value.Type{value.Grid}, value.Grid,
		func(args []value.Value) (value.Value, bool) {
			g, ok := args[0].AsGrid()
			if !ok {
				return value.Value{}, false
			}
			out := make([][]int8, len(g))
			for i, row := range g {
				flipped := make([]int8, len(row))
				for j, v := range row {
					flipped[len(row)-1-j] = v
				}
				out[i] = flipped
			}
			return value.NewGrid(out), true
		})
	flipud := neuron.New("flipud", []value.Type{value.Grid}, value.Grid,
		func(args []value.Value) (value.Value, bool) {
			g, ok := args[0].AsGrid()
			if !ok {
				return value.Value{}, false
			}
			out := make([][]int8, len(g))
			for i, row := range g {
				out[len(g)-1-i] = row
			}
			return value.NewGrid(out), true
		})

	e := engine.New([]*neuron.Primitive{inputNeuron, fliplr, flipud})
	results, err := e.Learn(context.Background(), []value.Value{trainOut}, 1, 1e-9)
	if err != nil {
		log.Fatalf("grid-flip demo: learn failed: %v", err)
	}

	expr := results[0]
	trainResult, _ := expr.Output()
	fmt.Printf("grid-flip: program=%s train_output=%s heuristic=%g\n",
		expr, trainResult.String(), trainResult.Heuristic(trainOut))

	inputNeuron.Rebind(func(args []value.Value) (value.Value, bool) { return testIn, true })
	testResult, _ := expr.Output()
	fmt.Printf("grid-flip: rebound to test input, output=%s heuristic=%g\n",
		testResult.String(), testResult.Heuristic(testOut))
}
