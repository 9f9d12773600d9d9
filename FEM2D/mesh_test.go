package FEM2D

import (
	"errors"
	"testing"

	"github.com/notargets/gofea/FEM1D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMeshSingleElement(t *testing.T) {
	msh, err := GenerateMesh(1, 1, 1, 1, FEM1D.Quadratic)
	require.NoError(t, err)
	assert.Equal(t, 9, msh.NumNodes())
	assert.Equal(t, 3, msh.TotalNodesX)
	assert.Equal(t, 3, msh.TotalNodesY)
	// Column major numbering: the four corners of the unit square
	assert.Equal(t, [2]float64{0, 0}, [2]float64{msh.NodeX[0], msh.NodeY[0]})
	assert.Equal(t, [2]float64{0, 1}, [2]float64{msh.NodeX[2], msh.NodeY[2]})
	assert.Equal(t, [2]float64{1, 0}, [2]float64{msh.NodeX[6], msh.NodeY[6]})
	assert.Equal(t, [2]float64{1, 1}, [2]float64{msh.NodeX[8], msh.NodeY[8]})
	// Edge midpoints fall at half steps
	assert.Equal(t, [2]float64{0.5, 0.5}, [2]float64{msh.NodeX[4], msh.NodeY[4]})
	// Hand verified connectivity of the single element
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8}}, msh.NOP)
	for _, side := range []Side{Bottom, Left, Top, Right} {
		assert.Equal(t, []BoundaryElement{{Element: 0, Side: side}}, msh.BoundaryElements[side])
	}
}

func TestGenerateMeshTwoByTwo(t *testing.T) {
	msh, err := GenerateMesh(2, 2, 1, 1, FEM1D.Quadratic)
	require.NoError(t, err)
	assert.Equal(t, 25, msh.NumNodes())
	// Hand verified connectivity: element index is row major in element
	// space, (i-1)*numElementsY + (j-1), node columns are vertical triples
	assert.Equal(t, []int{0, 1, 2, 5, 6, 7, 10, 11, 12}, msh.NOP[0])
	assert.Equal(t, []int{2, 3, 4, 7, 8, 9, 12, 13, 14}, msh.NOP[1])
	assert.Equal(t, []int{10, 11, 12, 15, 16, 17, 20, 21, 22}, msh.NOP[2])
	assert.Equal(t, []int{12, 13, 14, 17, 18, 19, 22, 23, 24}, msh.NOP[3])
	// Column major coordinates: node i*tny+j at (i*dx/2, j*dy/2)
	for i := 0; i < msh.TotalNodesX; i++ {
		for j := 0; j < msh.TotalNodesY; j++ {
			n := i*msh.TotalNodesY + j
			assert.InDelta(t, float64(i)*0.25, msh.NodeX[n], 1.e-12)
			assert.InDelta(t, float64(j)*0.25, msh.NodeY[n], 1.e-12)
		}
	}
	// Boundary classification, corner elements on two sides
	assert.Equal(t, []BoundaryElement{{0, Bottom}, {2, Bottom}}, msh.BoundaryElements[Bottom])
	assert.Equal(t, []BoundaryElement{{0, Left}, {1, Left}}, msh.BoundaryElements[Left])
	assert.Equal(t, []BoundaryElement{{1, Top}, {3, Top}}, msh.BoundaryElements[Top])
	assert.Equal(t, []BoundaryElement{{2, Right}, {3, Right}}, msh.BoundaryElements[Right])
}

func TestGenerateMeshUnsupported(t *testing.T) {
	_, err := GenerateMesh(2, 2, 1, 1, FEM1D.Linear)
	assert.True(t, errors.Is(err, ErrUnsupported))
	_, err = GenerateMesh(0, 2, 1, 1, FEM1D.Quadratic)
	assert.Error(t, err)
	_, err = GenerateMesh(2, 2, 0, 1, FEM1D.Quadratic)
	assert.Error(t, err)
}

func TestNewSide(t *testing.T) {
	for label, want := range map[string]Side{
		"bottom": Bottom, "left": Left, "top": Top, "right": Right,
	} {
		s, err := NewSide(label)
		assert.NoError(t, err)
		assert.Equal(t, want, s)
	}
	_, err := NewSide("front")
	assert.Error(t, err)
}
