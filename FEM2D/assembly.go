package FEM2D

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gofea/FEM1D"
	"github.com/notargets/gofea/utils"
)

// ErrDegenerateElement tags a zero or negative Jacobian determinant found
// during isoparametric mapping. It indicates a mesh generation defect and
// aborts the solve before the inverse mapping divides by it.
var ErrDegenerateElement = errors.New("degenerate element")

// Metrics carries the isoparametric mapping of one element evaluated at one
// quadrature point: the physical location, the mapping Jacobian determinant
// and the physical derivatives of the basis functions.
type Metrics struct {
	X, Y       float64
	DetJ       float64
	DNdX, DNdY []float64
}

// ElementMetrics interpolates the geometry of element e at the reference
// point where bs was evaluated. The same basis interpolates geometry and
// field (isoparametric mapping).
func ElementMetrics(msh *Mesh, e int, bs BasisSet) (mt Metrics, err error) {
	var (
		nop                            = msh.NOP[e]
		dxdKsi, dxdEta, dydKsi, dydEta float64
	)
	for m, g := range nop {
		mt.X += bs.N[m] * msh.NodeX[g]
		mt.Y += bs.N[m] * msh.NodeY[g]
		dxdKsi += bs.DNdKsi[m] * msh.NodeX[g]
		dxdEta += bs.DNdEta[m] * msh.NodeX[g]
		dydKsi += bs.DNdKsi[m] * msh.NodeY[g]
		dydEta += bs.DNdEta[m] * msh.NodeY[g]
	}
	mt.DetJ = dxdKsi*dydEta - dxdEta*dydKsi
	if mt.DetJ <= 0 {
		err = fmt.Errorf("%w: element %d has det J = %g", ErrDegenerateElement, e, mt.DetJ)
		return
	}
	mt.DNdX = make([]float64, len(nop))
	mt.DNdY = make([]float64, len(nop))
	for m := range nop {
		mt.DNdX[m] = (dydEta*bs.DNdKsi[m] - dydKsi*bs.DNdEta[m]) / mt.DetJ
		mt.DNdY[m] = (dxdKsi*bs.DNdEta[m] - dxdEta*bs.DNdKsi[m]) / mt.DetJ
	}
	return
}

// Assemble integrates the Galerkin weak form of steady conduction over the
// mesh and returns the global Jacobian matrix and residual vector, before
// boundary conditions. The matrix accumulates element contributions in a
// sparse DOK and is densified at the end; the external contract stays dense.
func Assemble(msh *Mesh) (K utils.Matrix, F utils.Vector, err error) {
	var (
		n    = msh.NumNodes()
		rule = FEM1D.NewGaussRule(msh.Order)
		nq   = len(rule.Points)
		dok  = sparse.NewDOK(n, n)
	)
	F = utils.NewVector(n)
	// The basis depends only on the reference point, evaluate once per
	// Gauss point pair
	basis := make([][]BasisSet, nq)
	for a := 0; a < nq; a++ {
		basis[a] = make([]BasisSet, nq)
		for b := 0; b < nq; b++ {
			basis[a][b] = BasisFunctions(msh.Order, rule.Points[a], rule.Points[b])
		}
	}
	for e := range msh.NOP {
		nop := msh.NOP[e]
		for a := 0; a < nq; a++ {
			for b := 0; b < nq; b++ {
				var (
					bs = basis[a][b]
					mt Metrics
					wq = rule.Weights[a] * rule.Weights[b]
				)
				if mt, err = ElementMetrics(msh, e, bs); err != nil {
					return
				}
				for m, gm := range nop {
					F.DataP[gm] += wq * mt.DetJ * bs.N[m] // unit source term
					for nn, gn := range nop {
						v := -wq * mt.DetJ * (mt.DNdX[m]*mt.DNdX[nn] + mt.DNdY[m]*mt.DNdY[nn])
						dok.Set(gm, gn, dok.At(gm, gn)+v)
					}
				}
			}
		}
	}
	K = utils.NewMatrix(n, n)
	K.M.Copy(dok)
	return
}
