package FEM2D

import (
	"fmt"

	"github.com/notargets/gofea/FEM1D"
	"github.com/notargets/gofea/utils"
)

type BCType uint8

const (
	Convection BCType = iota
	ConstantTemp
)

func NewBCType(label string) (t BCType, err error) {
	switch label {
	case "convection":
		t = Convection
	case "constantTemp":
		t = ConstantTemp
	default:
		err = fmt.Errorf("unknown boundary condition kind %q", label)
	}
	return
}

func (t BCType) String() string {
	return [...]string{"convection", "constantTemp"}[t]
}

// BoundaryCondition is a tagged condition for one boundary side. Exactly one
// condition applies per side.
type BoundaryCondition struct {
	Type         BCType
	Coeff        float64 // convection: heat transfer coefficient
	ExternalTemp float64 // convection: external reference temperature
	Value        float64 // constantTemp: prescribed value
}

// NewBoundaryCondition parses the tuple form used in input files:
// ["convection", coeff, externalTemp] or ["constantTemp", value].
func NewBoundaryCondition(tuple []interface{}) (bc BoundaryCondition, err error) {
	if len(tuple) == 0 {
		err = fmt.Errorf("empty boundary condition")
		return
	}
	kind, ok := tuple[0].(string)
	if !ok {
		err = fmt.Errorf("boundary condition kind must be a string, got %T", tuple[0])
		return
	}
	if bc.Type, err = NewBCType(kind); err != nil {
		return
	}
	args := make([]float64, 0, len(tuple)-1)
	for _, a := range tuple[1:] {
		var v float64
		if v, err = toFloat(a); err != nil {
			return
		}
		args = append(args, v)
	}
	switch bc.Type {
	case Convection:
		if len(args) != 2 {
			err = fmt.Errorf("convection takes [coeff, externalTemp], got %d parameters", len(args))
			return
		}
		bc.Coeff, bc.ExternalTemp = args[0], args[1]
	case ConstantTemp:
		if len(args) != 1 {
			err = fmt.Errorf("constantTemp takes [value], got %d parameters", len(args))
			return
		}
		bc.Value = args[0]
	}
	return
}

func toFloat(a interface{}) (float64, error) {
	switch v := a.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("boundary condition parameter must be numeric, got %T", a)
}

// ImposeBoundaryConditions adds the Robin (convection) edge integrals to the
// assembled system, then overwrites the rows of Dirichlet (constantTemp)
// nodes. The Dirichlet pass runs strictly last so that at corners shared
// with a Robin side the prescribed value wins.
func ImposeBoundaryConditions(msh *Mesh, bcs map[Side]BoundaryCondition, K utils.Matrix, F utils.Vector) (err error) {
	for side, bc := range bcs {
		if bc.Type == Convection {
			if err = imposeConvection(msh, side, bc, K, F); err != nil {
				return
			}
		}
	}
	for side, bc := range bcs {
		if bc.Type == ConstantTemp {
			imposeConstantTemp(msh, side, bc, K, F)
		}
	}
	return
}

// imposeConvection integrates -h*(T - Text) along each boundary edge of the
// given side, using the 1D rule degenerated to the edge: the transverse
// natural coordinate is fixed at 0 or 1 and the other is swept over the
// Gauss points. For horizontal edges the edge Jacobian is dx/dksi, for
// vertical edges dy/deta.
func imposeConvection(msh *Mesh, side Side, bc BoundaryCondition, K utils.Matrix, F utils.Vector) (err error) {
	var (
		rule  = FEM1D.NewGaussRule(msh.Order)
		edge  = edgeNodesQuadratic[side]
		nwide = K.DataP
		_, nc = K.Dims()
	)
	for _, be := range msh.BoundaryElements[side] {
		nop := msh.NOP[be.Element]
		for q, gp := range rule.Points {
			var ksi, eta float64
			switch side {
			case Bottom:
				ksi, eta = gp, 0
			case Top:
				ksi, eta = gp, 1
			case Left:
				ksi, eta = 0, gp
			case Right:
				ksi, eta = 1, gp
			}
			bs := BasisFunctions(msh.Order, ksi, eta)
			var edgeJ float64
			for m, g := range nop {
				if side == Bottom || side == Top {
					edgeJ += bs.DNdKsi[m] * msh.NodeX[g]
				} else {
					edgeJ += bs.DNdEta[m] * msh.NodeY[g]
				}
			}
			if edgeJ <= 0 {
				err = fmt.Errorf("%w: element %d has edge Jacobian %g on side %v",
					ErrDegenerateElement, be.Element, edgeJ, side)
				return
			}
			w := rule.Weights[q] * edgeJ
			for _, m := range edge {
				gm := nop[m]
				F.DataP[gm] -= w * bs.N[m] * bc.Coeff * bc.ExternalTemp
				for _, n := range edge {
					gn := nop[n]
					nwide[gm*nc+gn] -= w * bs.N[m] * bs.N[n] * bc.Coeff
				}
			}
		}
	}
	return
}

// imposeConstantTemp overwrites the system row of every node on the side:
// residual gets the prescribed value, the row is zeroed and the diagonal set
// to one.
func imposeConstantTemp(msh *Mesh, side Side, bc BoundaryCondition, K utils.Matrix, F utils.Vector) {
	for _, g := range boundaryNodes(msh, side) {
		F.DataP[g] = bc.Value
		K.ZeroRow(g)
		K.Set(g, g, 1)
	}
}

// boundaryNodes collects the global ids of all nodes lying on a side, via
// the edge-local node subsets of the side's boundary elements.
func boundaryNodes(msh *Mesh, side Side) (nodes []int) {
	seen := make(map[int]bool)
	for _, be := range msh.BoundaryElements[side] {
		nop := msh.NOP[be.Element]
		for _, m := range edgeNodesQuadratic[side] {
			g := nop[m]
			if !seen[g] {
				seen[g] = true
				nodes = append(nodes, g)
			}
		}
	}
	return
}
