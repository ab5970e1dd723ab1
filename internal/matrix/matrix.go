// Package matrix provides the elementwise transforms and parameter
// initializers used by the network.
//
// Every function returns a freshly allocated result; inputs are never
// modified.
package matrix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Apply returns a new matrix holding f applied to every entry of m.
func Apply(m mat.Matrix, f func(float64) float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
	return &out
}

// Apply2 returns a new matrix holding f(a[i,j], b[i,j]) for every entry.
//
// Panics with mat.ErrShape if a and b differ in shape.
func Apply2(a, b mat.Matrix, f func(x, y float64) float64) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 { return f(v, b.At(i, j)) }, a)
	return &out
}

// ApplyVec is the vector form of Apply.
func ApplyVec(v mat.Vector, f func(float64) float64) *mat.VecDense {
	n := v.Len()
	out := mat.NewVecDense(n, nil)
	data := out.RawVector().Data
	for i := range n {
		data[i] = f(v.AtVec(i))
	}
	return out
}

// RandomNormal creates a rows×cols matrix of independent draws from the
// standard normal distribution N(0, 1).
//
// Parameters:
//   - rows, cols: Shape of the matrix
//   - src: Source of randomness (nil uses the global source)
//
// Returns a freshly allocated matrix.
func RandomNormal(rows, cols int, src rand.Source) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	fillNormal(m.RawMatrix().Data, src)
	return m
}

// RandomNormalVec creates a length n vector of independent N(0, 1) draws.
func RandomNormalVec(n int, src rand.Source) *mat.VecDense {
	v := mat.NewVecDense(n, nil)
	fillNormal(v.RawVector().Data, src)
	return v
}

// Zeros creates a rows×cols matrix filled with zeros.
//
// Used for gradient accumulators.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// ZerosVec creates a length n vector filled with zeros.
func ZerosVec(n int) *mat.VecDense {
	return mat.NewVecDense(n, nil)
}

func fillNormal(data []float64, src rand.Source) {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range data {
		data[i] = dist.Rand()
	}
}
