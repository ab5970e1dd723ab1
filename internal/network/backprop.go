package network

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Backprop computes the gradient of the quadratic cost C = ||a - y||²/2
// for a single sample with respect to every weight and bias.
//
// The network is not modified and the result shares no memory with it, so
// Backprop may run concurrently with other calls that only read the
// network.
//
// Returns a *DimensionError if the sample does not match the topology.
func (n *Network) Backprop(s Sample) (*Gradient, error) {
	if err := n.CheckSample(s); err != nil {
		return nil, err
	}
	return n.backprop(s), nil
}

// backprop assumes s has already been checked against the topology.
func (n *Network) backprop(s Sample) *Gradient {
	last := len(n.weights) - 1
	grad := &Gradient{
		Weights: make([]*mat.Dense, len(n.weights)),
		Biases:  make([]*mat.VecDense, len(n.biases)),
	}

	// Forward pass. activations[l] is the input to transition l and
	// zs[l] its pre-activation, so activations has one more entry.
	activation := mat.NewVecDense(len(s.X), s.X)
	activations := make([]*mat.VecDense, 0, len(n.weights)+1)
	activations = append(activations, activation)
	zs := make([]*mat.VecDense, 0, len(n.weights))
	for l := range n.weights {
		z := n.preActivation(l, activation)
		zs = append(zs, z)
		activation = matrix.ApplyVec(z, Sigmoid)
		activations = append(activations, activation)
	}

	// Output error: δ = (a - y) ⊙ σ'(z).
	delta := mat.NewVecDense(len(s.Y), nil)
	delta.SubVec(activations[last+1], mat.NewVecDense(len(s.Y), s.Y))
	delta.MulElemVec(delta, matrix.ApplyVec(zs[last], SigmoidPrime))
	grad.Biases[last] = delta
	grad.Weights[last] = outer(delta, activations[last])

	// Walk back: δ[l] = (W[l+1]ᵀ·δ[l+1]) ⊙ σ'(z[l]).
	for l := last - 1; l >= 0; l-- {
		next := mat.NewVecDense(n.sizes[l+1], nil)
		next.MulVec(n.weights[l+1].T(), delta)
		next.MulElemVec(next, matrix.ApplyVec(zs[l], SigmoidPrime))
		delta = next
		grad.Biases[l] = delta
		grad.Weights[l] = outer(delta, activations[l])
	}

	return grad
}

// outer returns δ·aᵀ.
func outer(delta, a mat.Vector) *mat.Dense {
	w := mat.NewDense(delta.Len(), a.Len(), nil)
	w.Outer(1, delta, a)
	return w
}
