package FEM1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeFunctions(t *testing.T) {
	// Lagrange property: basis j is 1 at node j, 0 at the others
	{
		nodes := map[Order][]float64{
			Linear:    {0, 1},
			Quadratic: {0, 0.5, 1},
		}
		for _, o := range []Order{Linear, Quadratic} {
			for i, x := range nodes[o] {
				bs := ShapeFunctions(o, x)
				for j := 0; j < o.NumNodes1D(); j++ {
					if i == j {
						assert.InDelta(t, 1, bs.N[j], 1.e-12)
					} else {
						assert.InDelta(t, 0, bs.N[j], 1.e-12)
					}
				}
			}
		}
	}
	// Partition of unity and derivative sum at arbitrary points
	{
		for _, o := range []Order{Linear, Quadratic} {
			for _, ksi := range []float64{0, 0.123, 0.5, 0.777, 1} {
				bs := ShapeFunctions(o, ksi)
				var sumN, sumD float64
				for j := range bs.N {
					sumN += bs.N[j]
					sumD += bs.DNdKsi[j]
				}
				assert.InDelta(t, 1, sumN, 1.e-12)
				assert.InDelta(t, 0, sumD, 1.e-12)
			}
		}
	}
}

func TestGaussRule(t *testing.T) {
	// Weights sum to the reference interval length
	for _, o := range []Order{Linear, Quadratic} {
		r := NewGaussRule(o)
		var sum float64
		for _, w := range r.Weights {
			sum += w
		}
		assert.InDelta(t, 1, sum, 1.e-12)
	}
	// The 3 point rule is exact for polynomials through degree 5 on [0,1]:
	// integral of x^p is 1/(p+1)
	r := NewGaussRule(Quadratic)
	for p := 0; p <= 5; p++ {
		var q float64
		for i, x := range r.Points {
			q += r.Weights[i] * math.Pow(x, float64(p))
		}
		assert.InDelta(t, 1/float64(p+1), q, 1.e-12)
	}
}

func TestGenerateMesh1D(t *testing.T) {
	msh, err := GenerateMesh(2, 1, Quadratic)
	assert.NoError(t, err)
	assert.Equal(t, 5, msh.TotalNodesX)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, msh.NodeX, 1.e-12)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}}, msh.NOP)

	// Unsupported paths fail loudly
	_, err = GenerateMesh(2, 1, Linear)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.True(t, errors.Is(msh.FindBoundaryElements(), ErrUnsupported))
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder("quadratic")
	assert.NoError(t, err)
	assert.Equal(t, Quadratic, o)
	o, err = NewOrder("linear")
	assert.NoError(t, err)
	assert.Equal(t, Linear, o)
	_, err = NewOrder("cubic")
	assert.True(t, errors.Is(err, ErrUnsupported))
}
