package network

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Sigmoid is the logistic function 1/(1+e^-z).
//
// For very negative z, e^-z overflows to +Inf and the result is 0.
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// SigmoidPrime is the derivative of Sigmoid: σ(z)(1-σ(z)).
func SigmoidPrime(z float64) float64 {
	s := Sigmoid(z)
	return s * (1 - s)
}

// FeedForward computes the network output for input x.
//
// For l = 0..L-2 it evaluates a[l+1] = σ(W[l]·a[l] + b[l]) with a[0] = x and
// returns a[L-1]. x is not modified.
//
// Returns a *DimensionError if len(x) differs from the input size.
func (n *Network) FeedForward(x []float64) ([]float64, error) {
	if len(x) != n.InputSize() {
		return nil, lengthError("input", n.InputSize(), len(x))
	}

	// a[0] wraps x; it is only ever read.
	a := mat.NewVecDense(len(x), x)
	for l := range n.weights {
		a = matrix.ApplyVec(n.preActivation(l, a), Sigmoid)
	}
	return a.RawVector().Data, nil
}

// preActivation returns z = W[l]·a + b[l].
func (n *Network) preActivation(l int, a mat.Vector) *mat.VecDense {
	z := mat.NewVecDense(n.sizes[l+1], nil)
	z.MulVec(n.weights[l], a)
	z.AddVec(z, n.biases[l])
	return z
}
