package FEM2D

import (
	"errors"

	"github.com/notargets/gofea/FEM1D"
)

// ErrUnsupported tags dimension/order combinations without an implemented
// element path in 2D.
var ErrUnsupported = errors.New("unsupported configuration")

// Local node layout on the [0,1]^2 reference quad. Local index m = 3*a + b
// for quadratic elements (m = 2*a + b for linear), where a indexes the ksi
// lattice position and b the eta lattice position, both over {0, 1/2, 1}:
//
//	eta
//	 ^  2 --- 5 --- 8
//	 |  |           |
//	 |  1     4     7
//	 |  |           |
//	 |  0 --- 3 --- 6
//	 +----------------> ksi
const (
	NodeSW     = 0 // ksi=0, eta=0
	NodeW      = 1 // ksi=0, eta=1/2
	NodeNW     = 2 // ksi=0, eta=1
	NodeS      = 3 // ksi=1/2, eta=0
	NodeCenter = 4 // ksi=1/2, eta=1/2
	NodeN      = 5 // ksi=1/2, eta=1
	NodeSE     = 6 // ksi=1, eta=0
	NodeE      = 7 // ksi=1, eta=1/2
	NodeNE     = 8 // ksi=1, eta=1
)

// edgeNodesQuadratic lists, per side, the local indices of the 3 nodes lying
// on that edge, in increasing sweep-coordinate order.
var edgeNodesQuadratic = [4][]int{
	Bottom: {NodeSW, NodeS, NodeSE},
	Left:   {NodeSW, NodeW, NodeNW},
	Top:    {NodeNW, NodeN, NodeNE},
	Right:  {NodeSE, NodeE, NodeNE},
}

// BasisSet holds tensor product basis values and the two natural-coordinate
// partial derivatives at a single (ksi, eta) point, in local node order.
type BasisSet struct {
	N      []float64
	DNdKsi []float64
	DNdEta []float64
}

// BasisFunctions evaluates the 2D basis at (ksi, eta) as the tensor product
// of the univariate bases, N[m] = f_a(ksi)*g_b(eta) with m = nn*a + b.
// Partial derivatives follow the product rule.
func BasisFunctions(o FEM1D.Order, ksi, eta float64) (bs BasisSet) {
	var (
		fk = FEM1D.ShapeFunctions(o, ksi)
		ge = FEM1D.ShapeFunctions(o, eta)
		nn = o.NumNodes1D()
	)
	bs.N = make([]float64, nn*nn)
	bs.DNdKsi = make([]float64, nn*nn)
	bs.DNdEta = make([]float64, nn*nn)
	for a := 0; a < nn; a++ {
		for b := 0; b < nn; b++ {
			m := nn*a + b
			bs.N[m] = fk.N[a] * ge.N[b]
			bs.DNdKsi[m] = fk.DNdKsi[a] * ge.N[b]
			bs.DNdEta[m] = fk.N[a] * ge.DNdKsi[b]
		}
	}
	return
}
