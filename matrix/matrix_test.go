package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/core"
	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
)

// TestDense_Accessors covers shape validation and bounds checks.
func TestDense_Accessors(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 0))
	v, _ = m.At(1, 2)
	assert.Equal(t, 4.5, v, "clone is independent")
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 4.5]\n", m.String())
}

// TestDense_MulVec checks x·M and the length contract.
func TestDense_MulVec(t *testing.T) {
	t.Parallel()
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)
	out, err := m.MulVec([]float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, out)

	_, err = m.MulVec([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_MulVecAgreesWithGonum compares x·M with Mᵀx computed by gonum.
func TestDense_MulVecAgreesWithGonum(t *testing.T) {
	t.Parallel()
	const rows, cols = 3, 4
	data := make([]float64, rows*cols)
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := float64(i*cols+j)/7 - 0.8
			data[i*cols+j] = v
			require.NoError(t, m.Set(i, j, v))
		}
	}
	x := []float64{0.5, -1.25, 2}

	got, err := m.MulVec(x)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(mat.NewDense(rows, cols, data).T(), mat.NewVecDense(rows, x))
	assert.InDeltaSlice(t, want.RawVector().Data, got, 1e-12)
}

// TestLayerWeights_MatchesPredict recomputes a layered forward pass with
// matrices and compares it with the engine.
func TestLayerWeights_MatchesPredict(t *testing.T) {
	t.Parallel()
	specs := []builder.LayerSpec{
		{Size: 3, Activation: activation.Identity},
		{Size: 4, Activation: activation.Tanh},
		{Size: 1, Activation: activation.Sigmoid},
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(4)}, builder.Layered(specs...))
	require.NoError(t, err)
	n, err := network.New(g, network.WithEvaluating())
	require.NoError(t, err)

	x := []float64{0.2, -0.5, 1}
	want, err := n.Predict(dataset.Example{Features: x})
	require.NoError(t, err)

	act := x
	for k := 0; k+1 < g.LayerCount(); k++ {
		w, err := matrix.LayerWeights(g, k)
		require.NoError(t, err)
		pre, err := w.MulVec(act)
		require.NoError(t, err)
		for j, id := range g.Layers()[k+1] {
			pre[j] = activation.Activate(g.Nodes()[id].Activation, pre[j]+g.Nodes()[id].Bias)
		}
		act = pre
	}
	assert.InDelta(t, want[0], act[0], 1e-12)
}

// TestSetLayerWeights writes a matrix back and reads gradients.
func TestSetLayerWeights(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Layered(
		builder.LayerSpec{Size: 2, Activation: activation.Identity},
		builder.LayerSpec{Size: 1, Activation: activation.Sigmoid},
	))
	require.NoError(t, err)

	m, _ := matrix.NewDense(2, 1)
	_ = m.Set(0, 0, 0.75)
	_ = m.Set(1, 0, -0.25)
	require.NoError(t, matrix.SetLayerWeights(g, 0, m))
	back, err := matrix.LayerWeights(g, 0)
	require.NoError(t, err)
	assert.Equal(t, m.String(), back.String())

	n, err := network.New(g)
	require.NoError(t, err)
	_, err = n.Predict(dataset.Example{Features: []float64{1, 2}, Label: 1})
	require.NoError(t, err)
	grad, err := matrix.LayerGradients(g, 0)
	require.NoError(t, err)
	c, err := g.Connection(1, 2)
	require.NoError(t, err)
	v, _ := grad.At(1, 0)
	assert.Equal(t, c.Delta, v)
	assert.NotZero(t, v)

	wrong, _ := matrix.NewDense(1, 1)
	assert.ErrorIs(t, matrix.SetLayerWeights(g, 0, wrong), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.SetLayerWeights(g, 1, m), matrix.ErrLayerRange)
	_, err = matrix.LayerWeights(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.LayerWeights(core.NewGraph(), 0)
	assert.ErrorIs(t, err, matrix.ErrLayerRange)
}
