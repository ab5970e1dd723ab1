// Package dataset generates training sets for function fitting and for
// teacher-student experiments.
package dataset

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/mlp/internal/network"
)

// FromFunc draws n inputs of length in, uniformly from [0, 1), and pairs
// each with f(x). A nil src uses the global source.
func FromFunc(f func(x []float64) []float64, in, n int, src rand.Source) []network.Sample {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	data := make([]network.Sample, n)
	for i := range data {
		x := make([]float64, in)
		for j := range x {
			x[j] = u.Rand()
		}
		data[i] = network.Sample{X: x, Y: f(slices.Clone(x))}
	}
	return data
}

// FromScalar is FromFunc for one-dimensional f.
func FromScalar(f func(float64) float64, n int, src rand.Source) []network.Sample {
	return FromFunc(func(x []float64) []float64 {
		return []float64{f(x[0])}
	}, 1, n, src)
}

// FromNetwork labels n random inputs with the outputs of teacher.
func FromNetwork(teacher *network.Network, n int, src rand.Source) ([]network.Sample, error) {
	var ferr error
	data := FromFunc(func(x []float64) []float64 {
		y, err := teacher.FeedForward(x)
		if err != nil && ferr == nil {
			ferr = err
		}
		return y
	}, teacher.InputSize(), n, src)
	if ferr != nil {
		return nil, ferr
	}
	return data, nil
}

// Split returns the first n samples and the rest. The samples are not
// copied.
func Split(data []network.Sample, n int) (head, tail []network.Sample) {
	n = min(max(n, 0), len(data))
	return data[:n], data[n:]
}

// Function is a named target function for the fitting experiments.
type Function struct {
	Name string
	In   int
	F    func(x []float64) float64
}

// Functions lists the built-in fitting targets. All map [0,1)^In into
// [0, 1], the range of a sigmoid output.
var Functions = map[string]Function{
	"identity":   {Name: "identity", In: 1, F: func(x []float64) float64 { return x[0] }},
	"square":     {Name: "square", In: 1, F: func(x []float64) float64 { return x[0] * x[0] }},
	"sqrt":       {Name: "sqrt", In: 1, F: func(x []float64) float64 { return math.Sqrt(x[0]) }},
	"exp":        {Name: "exp", In: 1, F: func(x []float64) float64 { return math.Exp(-x[0]) }},
	"paraboloid": {Name: "paraboloid", In: 2, F: paraboloid},
}

func paraboloid(x []float64) float64 {
	return (x[0]*x[0] + x[1]*x[1]) / 2
}

// Names returns the sorted names of the built-in functions.
func Names() []string {
	return slices.Sorted(maps.Keys(Functions))
}

// Generate builds n samples for the named built-in function.
func Generate(name string, n int, src rand.Source) ([]network.Sample, error) {
	fn, ok := Functions[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q (have %v)", name, Names())
	}
	return FromFunc(func(x []float64) []float64 {
		return []float64{fn.F(x)}
	}, fn.In, n, src), nil
}
