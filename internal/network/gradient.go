package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Gradient holds ∂C/∂W and ∂C/∂b for every layer transition, shaped like
// the network that produced it.
type Gradient struct {
	Weights []*mat.Dense
	Biases  []*mat.VecDense
}

// ZeroGradient returns an all-zero gradient shaped like n.
func (n *Network) ZeroGradient() *Gradient {
	g := &Gradient{
		Weights: make([]*mat.Dense, len(n.weights)),
		Biases:  make([]*mat.VecDense, len(n.biases)),
	}
	for i := range n.weights {
		g.Weights[i] = matrix.Zeros(n.sizes[i+1], n.sizes[i])
		g.Biases[i] = matrix.ZerosVec(n.sizes[i+1])
	}
	return g
}

// Add accumulates o into g entrywise and returns g.
//
// Panics with mat.ErrShape if the shapes differ.
func (g *Gradient) Add(o *Gradient) *Gradient {
	if len(g.Weights) != len(o.Weights) || len(g.Biases) != len(o.Biases) {
		panic(mat.ErrShape)
	}
	for i := range g.Weights {
		g.Weights[i].Add(g.Weights[i], o.Weights[i])
		g.Biases[i].AddVec(g.Biases[i], o.Biases[i])
	}
	return g
}

// IsZero reports whether every entry is exactly zero.
func (g *Gradient) IsZero() bool {
	for i := range g.Weights {
		for _, v := range g.Weights[i].RawMatrix().Data {
			if v != 0 {
				return false
			}
		}
		for _, v := range g.Biases[i].RawVector().Data {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// ApplyGradient takes one descent step: W[l] -= rate·gW[l] and
// b[l] -= rate·gb[l] for every layer.
//
// The shapes are checked before anything is written, so on error the
// network is unchanged.
func (n *Network) ApplyGradient(g *Gradient, rate float64) error {
	if err := n.checkGradient(g); err != nil {
		return err
	}
	for l := range n.weights {
		var step mat.Dense
		step.Scale(rate, g.Weights[l])
		n.weights[l].Sub(n.weights[l], &step)
		n.biases[l].AddScaledVec(n.biases[l], -rate, g.Biases[l])
	}
	return nil
}

func (n *Network) checkGradient(g *Gradient) error {
	if len(g.Weights) != len(n.weights) || len(g.Biases) != len(n.biases) {
		return &DimensionError{
			What: "gradient layers",
			Want: fmt.Sprint(len(n.weights)),
			Got:  fmt.Sprintf("%d weights, %d biases", len(g.Weights), len(g.Biases)),
		}
	}
	for l, w := range n.weights {
		wr, wc := w.Dims()
		gr, gc := g.Weights[l].Dims()
		if wr != gr || wc != gc {
			return shapeError(fmt.Sprintf("gradient weights[%d]", l), wr, wc, gr, gc)
		}
		if want, got := n.biases[l].Len(), g.Biases[l].Len(); want != got {
			return lengthError(fmt.Sprintf("gradient biases[%d]", l), want, got)
		}
	}
	return nil
}
