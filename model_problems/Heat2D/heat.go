package Heat2D

import (
	"fmt"

	"github.com/notargets/gofea/FEM1D"
	"github.com/notargets/gofea/FEM2D"
	"github.com/notargets/gofea/utils"
)

// HeatConduction2D solves steady state heat conduction over a structured
// rectangular domain: generate mesh, assemble the Galerkin system, impose
// boundary conditions, dense LU solve. A solver instance owns its mesh and
// system buffers for the duration of one solve; calls are synchronous and
// must not interleave on the same instance.
type HeatConduction2D struct {
	Mesh *FEM2D.Mesh
	BCs  map[FEM2D.Side]FEM2D.BoundaryCondition
}

// NewHeatConduction2D validates the configuration and generates the
// structured mesh. All four boundary sides must carry exactly one condition;
// missing sides are configuration errors surfaced here, not deep in
// assembly.
func NewHeatConduction2D(numElementsX, numElementsY int, maxX, maxY float64,
	o FEM1D.Order, bcs map[FEM2D.Side]FEM2D.BoundaryCondition) (c *HeatConduction2D, err error) {
	var msh *FEM2D.Mesh
	if msh, err = FEM2D.GenerateMesh(numElementsX, numElementsY, maxX, maxY, o); err != nil {
		return
	}
	return NewFromMesh(msh, bcs)
}

// NewFromMesh wraps a pre-built mesh, e.g. one read from a mesh document,
// bypassing structured generation.
func NewFromMesh(msh *FEM2D.Mesh, bcs map[FEM2D.Side]FEM2D.BoundaryCondition) (c *HeatConduction2D, err error) {
	if msh == nil || msh.NumNodes() == 0 {
		err = fmt.Errorf("solver requires a non-empty mesh")
		return
	}
	for _, side := range []FEM2D.Side{FEM2D.Bottom, FEM2D.Left, FEM2D.Top, FEM2D.Right} {
		if _, found := bcs[side]; !found {
			err = fmt.Errorf("missing boundary condition for side %v", side)
			return
		}
	}
	c = &HeatConduction2D{
		Mesh: msh,
		BCs:  bcs,
	}
	return
}

// AssembleSystem produces the final linear system: raw Galerkin assembly
// followed by boundary imposition.
func (c *HeatConduction2D) AssembleSystem() (K utils.Matrix, F utils.Vector, err error) {
	if K, F, err = FEM2D.Assemble(c.Mesh); err != nil {
		return
	}
	err = FEM2D.ImposeBoundaryConditions(c.Mesh, c.BCs, K, F)
	return
}

// SolutionResult pairs the solution vector with the node coordinates, in
// the same global node ordering.
type SolutionResult struct {
	SolutionVector utils.Vector
	NodeX, NodeY   []float64
}

// Solve runs the full pipeline and returns one temperature per global node.
func (c *HeatConduction2D) Solve() (sr SolutionResult, err error) {
	var (
		K utils.Matrix
		F utils.Vector
	)
	fmt.Printf("Assembling %d elements, %d nodes\n", len(c.Mesh.NOP), c.Mesh.NumNodes())
	if K, F, err = c.AssembleSystem(); err != nil {
		return
	}
	n := c.Mesh.NumNodes()
	fmt.Printf("Solving %d x %d dense system\n", n, n)
	sr = SolutionResult{
		SolutionVector: K.LUSolve(F),
		NodeX:          c.Mesh.NodeX,
		NodeY:          c.Mesh.NodeY,
	}
	return
}

func (sr SolutionResult) Print() {
	fmt.Printf("%6s %10s %10s %12s\n", "node", "x", "y", "T")
	for i, T := range sr.SolutionVector.DataP {
		fmt.Printf("%6d %10.5f %10.5f %12.6f\n", i, sr.NodeX[i], sr.NodeY[i], T)
	}
}
