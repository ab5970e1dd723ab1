// Package network implements a fully-connected feedforward network with
// sigmoid activations: parameter storage, forward evaluation,
// backpropagation of the quadratic cost and the gradient update.
package network

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Network is a multilayer perceptron.
//
// For a topology sizes of length L the network holds L-1 layer
// transitions:
//   - weights[i] has shape [sizes[i+1], sizes[i]]
//   - biases[i] has length sizes[i+1] (a sizes[i+1]×1 column)
//
// The topology never changes after construction. Parameters change only
// through ApplyGradient.
type Network struct {
	sizes   []int
	weights []*mat.Dense
	biases  []*mat.VecDense
}

// Sample is one training pair: input X and target Y.
type Sample struct {
	X []float64
	Y []float64
}

// New creates a network with every weight and bias drawn independently
// from the standard normal distribution.
//
// Returns ErrInvalidTopology if sizes has fewer than two entries or any
// entry is not positive.
func New(sizes []int) (*Network, error) {
	return NewRand(sizes, nil)
}

// NewRand is like New but draws parameters from src.
// A nil src uses the global source.
func NewRand(sizes []int, src rand.Source) (*Network, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	n := alloc(sizes)
	for i := range n.weights {
		n.weights[i] = matrix.RandomNormal(sizes[i+1], sizes[i], src)
		n.biases[i] = matrix.RandomNormalVec(sizes[i+1], src)
	}
	return n, nil
}

// NewZero creates a network of the given topology with every parameter set
// to zero. It serves as a gradient accumulator scaffold.
func NewZero(sizes []int) (*Network, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	n := alloc(sizes)
	for i := range n.weights {
		n.weights[i] = matrix.Zeros(sizes[i+1], sizes[i])
		n.biases[i] = matrix.ZerosVec(sizes[i+1])
	}
	return n, nil
}

// FromParams builds a network from explicit parameters. The topology is
// inferred from the weight shapes; weights and biases are copied.
func FromParams(weights []*mat.Dense, biases []*mat.VecDense) (*Network, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidTopology)
	}
	if len(biases) != len(weights) {
		return nil, fmt.Errorf("%w: %d weight matrices but %d bias vectors",
			ErrInvalidTopology, len(weights), len(biases))
	}

	sizes := make([]int, len(weights)+1)
	_, sizes[0] = weights[0].Dims()
	for i, w := range weights {
		r, c := w.Dims()
		if c != sizes[i] {
			return nil, shapeError(fmt.Sprintf("weights[%d]", i), r, sizes[i], r, c)
		}
		sizes[i+1] = r
		if l := biases[i].Len(); l != r {
			return nil, lengthError(fmt.Sprintf("biases[%d]", i), r, l)
		}
	}
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	n := alloc(sizes)
	for i := range weights {
		n.weights[i] = mat.DenseCopyOf(weights[i])
		n.biases[i] = mat.VecDenseCopyOf(biases[i])
	}
	return n, nil
}

func alloc(sizes []int) *Network {
	return &Network{
		sizes:   slices.Clone(sizes),
		weights: make([]*mat.Dense, len(sizes)-1),
		biases:  make([]*mat.VecDense, len(sizes)-1),
	}
}

func validateSizes(sizes []int) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrInvalidTopology, len(sizes))
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: sizes[%d] = %d, must be positive", ErrInvalidTopology, i, s)
		}
	}
	return nil
}

// Sizes returns a copy of the layer sizes.
func (n *Network) Sizes() []int {
	return slices.Clone(n.sizes)
}

// NumLayers returns the number of layers, including the input layer.
func (n *Network) NumLayers() int {
	return len(n.sizes)
}

// InputSize returns sizes[0].
func (n *Network) InputSize() int {
	return n.sizes[0]
}

// OutputSize returns the size of the last layer.
func (n *Network) OutputSize() int {
	return n.sizes[len(n.sizes)-1]
}

// Weights returns copies of the weight matrices.
func (n *Network) Weights() []*mat.Dense {
	out := make([]*mat.Dense, len(n.weights))
	for i, w := range n.weights {
		out[i] = mat.DenseCopyOf(w)
	}
	return out
}

// Biases returns copies of the bias vectors.
func (n *Network) Biases() []*mat.VecDense {
	out := make([]*mat.VecDense, len(n.biases))
	for i, b := range n.biases {
		out[i] = mat.VecDenseCopyOf(b)
	}
	return out
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := alloc(n.sizes)
	c.weights = n.Weights()
	c.biases = n.Biases()
	return c
}

// CheckSample verifies that s matches the input and output sizes.
func (n *Network) CheckSample(s Sample) error {
	if len(s.X) != n.InputSize() {
		return lengthError("input", n.InputSize(), len(s.X))
	}
	if len(s.Y) != n.OutputSize() {
		return lengthError("target", n.OutputSize(), len(s.Y))
	}
	return nil
}
