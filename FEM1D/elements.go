package FEM1D

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupported tags dimension/order combinations without an implemented
// element path. Callers must treat it as fatal for the current solve.
var ErrUnsupported = errors.New("unsupported configuration")

type Order uint8

const (
	Linear Order = iota
	Quadratic
)

func NewOrder(label string) (o Order, err error) {
	switch label {
	case "linear":
		o = Linear
	case "quadratic":
		o = Quadratic
	default:
		err = fmt.Errorf("%w: unknown element order %q", ErrUnsupported, label)
	}
	return
}

func (o Order) String() string {
	switch o {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	}
	return "unknown"
}

// NumNodes1D is the univariate node count: 2 for linear, 3 for quadratic.
func (o Order) NumNodes1D() int {
	if o == Linear {
		return 2
	}
	return 3
}

// BasisSet holds shape function values and first derivatives evaluated at a
// single natural coordinate on the [0,1] reference element, in canonical
// local node order (node coordinates 0, 1 for linear; 0, 1/2, 1 for
// quadratic).
type BasisSet struct {
	N      []float64
	DNdKsi []float64
}

// ShapeFunctions evaluates the univariate Lagrange basis of the given order
// at natural coordinate ksi.
func ShapeFunctions(o Order, ksi float64) (bs BasisSet) {
	switch o {
	case Linear:
		bs.N = []float64{1 - ksi, ksi}
		bs.DNdKsi = []float64{-1, 1}
	case Quadratic:
		bs.N = []float64{
			1 - 3*ksi + 2*ksi*ksi,
			4*ksi - 4*ksi*ksi,
			-ksi + 2*ksi*ksi,
		}
		bs.DNdKsi = []float64{
			-3 + 4*ksi,
			4 - 8*ksi,
			-1 + 4*ksi,
		}
	}
	return
}

// GaussRule is a 1D Gauss-Legendre rule on [0,1]. Two dimensional
// integration takes the tensor product of the rule with itself.
type GaussRule struct {
	Points  []float64
	Weights []float64
}

// NewGaussRule returns the quadrature rule matched to the element order:
// a 1 point rule for linear elements and a 3 point rule, exact through
// degree 5, for quadratic elements.
func NewGaussRule(o Order) (r GaussRule) {
	switch o {
	case Linear:
		r.Points = []float64{0.5}
		r.Weights = []float64{1}
	case Quadratic:
		sq35 := math.Sqrt(3. / 5.)
		r.Points = []float64{
			0.5 * (1 - sq35),
			0.5,
			0.5 * (1 + sq35),
		}
		r.Weights = []float64{5. / 18., 8. / 18., 5. / 18.}
	}
	return
}
