package FEM1D

import (
	"fmt"
)

// Mesh is a structured 1D mesh over [0, MaxX]. Node ids are 0 based, NOP
// lists the global node ids of each element in local order.
type Mesh struct {
	NodeX       []float64
	TotalNodesX int
	NOP         [][]int
	Order       Order
}

// GenerateMesh builds the node coordinates and connectivity for a structured
// segment mesh. Only the quadratic path is implemented: nodes sit at element
// endpoints and midpoints, spaced maxX/numElementsX per element.
func GenerateMesh(numElementsX int, maxX float64, o Order) (msh *Mesh, err error) {
	if numElementsX < 1 || maxX <= 0 {
		err = fmt.Errorf("mesh generation requires numElementsX > 0 and maxX > 0, got %d, %g",
			numElementsX, maxX)
		return
	}
	if o != Quadratic {
		err = fmt.Errorf("%w: 1D mesh generation for %v elements", ErrUnsupported, o)
		return
	}
	var (
		tnx    = 2*numElementsX + 1
		deltaX = maxX / float64(numElementsX)
	)
	msh = &Mesh{
		NodeX:       make([]float64, tnx),
		TotalNodesX: tnx,
		NOP:         make([][]int, numElementsX),
		Order:       o,
	}
	for i := 0; i < tnx; i++ {
		msh.NodeX[i] = float64(i) * deltaX / 2
	}
	for e := 0; e < numElementsX; e++ {
		msh.NOP[e] = []int{2 * e, 2*e + 1, 2*e + 2}
	}
	return
}

// FindBoundaryElements is not implemented for 1D meshes; the endpoints are
// addressed directly by node id instead.
func (msh *Mesh) FindBoundaryElements() error {
	return fmt.Errorf("%w: boundary element classification in 1D", ErrUnsupported)
}
