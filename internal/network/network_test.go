package network

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func assertShapes(t *testing.T, n *Network, sizes []int) {
	t.Helper()

	require.Len(t, n.weights, len(sizes)-1)
	require.Len(t, n.biases, len(sizes)-1)
	for i := 0; i < len(sizes)-1; i++ {
		r, c := n.weights[i].Dims()
		assert.Equal(t, sizes[i+1], r, "weights[%d] rows", i)
		assert.Equal(t, sizes[i], c, "weights[%d] cols", i)

		r, c = n.biases[i].Dims()
		assert.Equal(t, sizes[i+1], r, "biases[%d] rows", i)
		assert.Equal(t, 1, c, "biases[%d] cols", i)
	}
}

func TestNew_Shapes(t *testing.T) {
	for _, sizes := range [][]int{{2, 7, 5}, {1, 1}, {1, 4, 1}, {3, 8, 6, 2}} {
		n, err := New(sizes)
		require.NoError(t, err)
		assertShapes(t, n, sizes)
		assert.Equal(t, sizes, n.Sizes())
		assert.Equal(t, len(sizes), n.NumLayers())

		z, err := NewZero(sizes)
		require.NoError(t, err)
		assertShapes(t, z, sizes)
		assert.True(t, z.ZeroGradient().IsZero())
		for i := range z.weights {
			assert.True(t, mat.Equal(z.weights[i], mat.NewDense(sizes[i+1], sizes[i], nil)))
			assert.True(t, mat.Equal(z.biases[i], mat.NewVecDense(sizes[i+1], nil)))
		}
	}
}

func TestNew_InvalidTopology(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"nil", nil},
		{"single layer", []int{3}},
		{"zero size", []int{2, 0, 1}},
		{"negative size", []int{-1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sizes)
			assert.ErrorIs(t, err, ErrInvalidTopology)

			_, err = NewZero(tt.sizes)
			assert.ErrorIs(t, err, ErrInvalidTopology)
		})
	}
}

func TestNew_RandomInit(t *testing.T) {
	n, err := NewRand([]int{50, 40}, rand.NewPCG(3, 4))
	require.NoError(t, err)

	data := n.weights[0].RawMatrix().Data
	var sum, sq float64
	for _, v := range data {
		sum += v
		sq += v * v
	}
	mean := sum / float64(len(data))
	assert.InDelta(t, 0, mean, 0.1)
	assert.InDelta(t, 1, sq/float64(len(data))-mean*mean, 0.1)
}

func TestNew_SizesAreCopied(t *testing.T) {
	sizes := []int{2, 3, 1}
	n, err := New(sizes)
	require.NoError(t, err)

	sizes[1] = 99
	assert.Equal(t, []int{2, 3, 1}, n.Sizes())

	got := n.Sizes()
	got[0] = 42
	assert.Equal(t, 2, n.InputSize())
}

func TestFromParams(t *testing.T) {
	w := []*mat.Dense{mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}), mat.NewDense(1, 3, []float64{1, 1, 1})}
	b := []*mat.VecDense{mat.NewVecDense(3, []float64{0, 0, 0}), mat.NewVecDense(1, []float64{-1})}

	n, err := FromParams(w, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, n.Sizes())

	// Parameters are copied in and out.
	w[0].Set(0, 0, 100)
	assert.Equal(t, 1.0, n.Weights()[0].At(0, 0))
	n.Weights()[0].Set(0, 0, 200)
	assert.Equal(t, 1.0, n.weights[0].At(0, 0))
}

func TestFromParams_Errors(t *testing.T) {
	_, err := FromParams(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTopology)

	w := []*mat.Dense{mat.NewDense(3, 2, nil), mat.NewDense(1, 4, nil)}
	b := []*mat.VecDense{mat.NewVecDense(3, nil), mat.NewVecDense(1, nil)}
	_, err = FromParams(w, b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromParams(w[:1], b)
	assert.ErrorIs(t, err, ErrInvalidTopology)

	_, err = FromParams(w[:1], []*mat.VecDense{mat.NewVecDense(2, nil)})
	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, "biases[0]", dimErr.What)
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.Equal(t, 0.0, Sigmoid(-1000))
	assert.Equal(t, 1.0, Sigmoid(1000))
	assert.False(t, math.IsNaN(Sigmoid(math.Inf(-1))))
	assert.InDelta(t, 0.25, SigmoidPrime(0), 1e-15)
	assert.Equal(t, 0.0, SigmoidPrime(-1000))
}

func TestFeedForward_KnownValues(t *testing.T) {
	// One hidden unit with weight ln(3) and no bias: σ(ln 3) = 0.75.
	n, err := FromParams(
		[]*mat.Dense{mat.NewDense(1, 1, []float64{math.Log(3)}), mat.NewDense(1, 1, []float64{0})},
		[]*mat.VecDense{mat.NewVecDense(1, []float64{0}), mat.NewVecDense(1, []float64{0})},
	)
	require.NoError(t, err)

	out, err := n.FeedForward([]float64{1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	// Second layer has zero weight and bias, so the output is σ(0).
	assert.Equal(t, 0.5, out[0])

	n.weights[1].Set(0, 0, 1)
	out, err = n.FeedForward([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, Sigmoid(0.75), out[0], 1e-15)
}

func TestFeedForward_Deterministic(t *testing.T) {
	n, err := New([]int{3, 5, 2})
	require.NoError(t, err)

	x := []float64{0.1, -0.4, 0.9}
	a, err := n.FeedForward(x)
	require.NoError(t, err)
	b, err := n.FeedForward(x)
	require.NoError(t, err)

	assert.Len(t, a, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, []float64{0.1, -0.4, 0.9}, x)
}

func TestFeedForward_DimensionMismatch(t *testing.T) {
	n, err := New([]int{3, 2})
	require.NoError(t, err)

	_, err = n.FeedForward([]float64{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "input: want 3, got 2")
}

func TestClone(t *testing.T) {
	n, err := New([]int{2, 3, 1})
	require.NoError(t, err)

	c := n.Clone()
	c.weights[0].Set(0, 0, 123)

	assert.NotEqual(t, 123.0, n.weights[0].At(0, 0))
	assert.Equal(t, n.Sizes(), c.Sizes())
}

func TestCheckSample(t *testing.T) {
	n, err := New([]int{2, 1})
	require.NoError(t, err)

	assert.NoError(t, n.CheckSample(Sample{X: []float64{0, 1}, Y: []float64{1}}))
	assert.ErrorIs(t, n.CheckSample(Sample{X: []float64{0}, Y: []float64{1}}), ErrDimensionMismatch)
	assert.ErrorIs(t, n.CheckSample(Sample{X: []float64{0, 1}, Y: []float64{1, 0}}), ErrDimensionMismatch)
}
