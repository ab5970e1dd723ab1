package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/network"
)

func TestFromScalar(t *testing.T) {
	data := FromScalar(func(x float64) float64 { return x * x }, 200, rand.NewPCG(1, 1))

	require.Len(t, data, 200)
	for _, s := range data {
		require.Len(t, s.X, 1)
		require.Len(t, s.Y, 1)
		assert.GreaterOrEqual(t, s.X[0], 0.0)
		assert.Less(t, s.X[0], 1.0)
		assert.Equal(t, s.X[0]*s.X[0], s.Y[0])
	}
}

func TestFromFunc_InputNotShared(t *testing.T) {
	data := FromFunc(func(x []float64) []float64 {
		x[0] = -1 // f may scribble on its argument
		return []float64{0}
	}, 2, 5, rand.NewPCG(2, 2))

	for _, s := range data {
		assert.GreaterOrEqual(t, s.X[0], 0.0)
	}
}

func TestFromFunc_Seeded(t *testing.T) {
	f := func(x []float64) []float64 { return []float64{x[0] + x[1]} }
	a := FromFunc(f, 2, 10, rand.NewPCG(5, 6))
	b := FromFunc(f, 2, 10, rand.NewPCG(5, 6))

	assert.Equal(t, a, b)
}

func TestFromNetwork(t *testing.T) {
	teacher, err := network.New([]int{1, 7, 5})
	require.NoError(t, err)

	data, err := FromNetwork(teacher, 50, nil)
	require.NoError(t, err)
	require.Len(t, data, 50)

	for _, s := range data {
		want, err := teacher.FeedForward(s.X)
		require.NoError(t, err)
		assert.Equal(t, want, s.Y)
		assert.Len(t, s.Y, 5)
	}
}

func TestSplit(t *testing.T) {
	data := FromScalar(func(x float64) float64 { return x }, 10, nil)

	head, tail := Split(data, 7)
	assert.Len(t, head, 7)
	assert.Len(t, tail, 3)

	head, tail = Split(data, 20)
	assert.Len(t, head, 10)
	assert.Empty(t, tail)

	head, tail = Split(data, -1)
	assert.Empty(t, head)
	assert.Len(t, tail, 10)
}

func TestGenerate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			data, err := Generate(name, 100, rand.NewPCG(9, 9))
			require.NoError(t, err)
			require.Len(t, data, 100)
			for _, s := range data {
				assert.Len(t, s.X, Functions[name].In)
				require.Len(t, s.Y, 1)
				assert.GreaterOrEqual(t, s.Y[0], 0.0)
				assert.LessOrEqual(t, s.Y[0], 1.0)
			}
		})
	}
}

func TestGenerate_Unknown(t *testing.T) {
	_, err := Generate("cube", 10, nil)
	assert.ErrorContains(t, err, `unknown function "cube"`)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"exp", "identity", "paraboloid", "sqrt", "square"}, Names())
}
