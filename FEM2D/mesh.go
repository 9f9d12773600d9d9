package FEM2D

import (
	"fmt"

	"github.com/notargets/gofea/FEM1D"
)

// Side identifies one of the four boundaries of the rectangular domain.
type Side uint8

const (
	Bottom Side = iota
	Left
	Top
	Right
)

func NewSide(label string) (s Side, err error) {
	switch label {
	case "bottom":
		s = Bottom
	case "left":
		s = Left
	case "top":
		s = Top
	case "right":
		s = Right
	default:
		err = fmt.Errorf("unknown boundary key %q", label)
	}
	return
}

func (s Side) String() string {
	return [...]string{"bottom", "left", "top", "right"}[s]
}

// BoundaryElement tags an element as touching one boundary side. Corner
// elements appear in two side lists, once per side.
type BoundaryElement struct {
	Element int
	Side    Side
}

// Mesh is a structured grid over [0,MaxX] x [0,MaxY]. Global node numbering
// is column major: all nodes along the y axis for a fixed x column are
// contiguous, node id = i*TotalNodesY + j for lattice position (i, j).
// NOP maps each element to its global node ids (0 based) in the canonical
// local order documented in elements.go. Immutable after generation.
type Mesh struct {
	NodeX, NodeY             []float64
	TotalNodesX, TotalNodesY int
	NumElementsX             int
	NumElementsY             int
	NOP                      [][]int
	BoundaryElements         [4][]BoundaryElement
	Order                    FEM1D.Order
}

// NumNodes is the global node count, which sizes the linear system.
func (msh *Mesh) NumNodes() int { return len(msh.NodeX) }

// GenerateMesh builds node coordinates, connectivity and boundary element
// classification for a structured rectangular mesh of biquadratic elements.
// The linear element path has no connectivity generation and fails with
// ErrUnsupported.
func GenerateMesh(numElementsX, numElementsY int, maxX, maxY float64, o FEM1D.Order) (msh *Mesh, err error) {
	if numElementsX < 1 || numElementsY < 1 {
		err = fmt.Errorf("mesh generation requires positive element counts, got %d x %d",
			numElementsX, numElementsY)
		return
	}
	if maxX <= 0 || maxY <= 0 {
		err = fmt.Errorf("mesh generation requires positive domain extents, got %g x %g",
			maxX, maxY)
		return
	}
	if o != FEM1D.Quadratic {
		err = fmt.Errorf("%w: 2D mesh generation for %v elements", ErrUnsupported, o)
		return
	}
	var (
		tnx    = 2*numElementsX + 1
		tny    = 2*numElementsY + 1
		deltaX = maxX / float64(numElementsX)
		deltaY = maxY / float64(numElementsY)
	)
	msh = &Mesh{
		NodeX:        make([]float64, tnx*tny),
		NodeY:        make([]float64, tnx*tny),
		TotalNodesX:  tnx,
		TotalNodesY:  tny,
		NumElementsX: numElementsX,
		NumElementsY: numElementsY,
		NOP:          make([][]int, numElementsX*numElementsY),
		Order:        o,
	}
	// Column major fill, nodes at element corners and edge midpoints
	for i := 0; i < tnx; i++ {
		for j := 0; j < tny; j++ {
			n := i*tny + j
			msh.NodeX[n] = float64(i) * deltaX / 2
			msh.NodeY[n] = float64(j) * deltaY / 2
		}
	}
	// NOP: for element (i, j), 1 based, the three vertical node triples of
	// the 3x3 local lattice start at tny*(2i+k-3) + 2j - 1 for k = 1,2,3.
	// Stored 0 based, so each id is shifted down by one.
	for i := 1; i <= numElementsX; i++ {
		for j := 1; j <= numElementsY; j++ {
			e := (i-1)*numElementsY + (j - 1)
			nop := make([]int, 9)
			for k := 1; k <= 3; k++ {
				base := tny*(2*i+k-3) + 2*j - 1
				for l := 0; l < 3; l++ {
					nop[3*(k-1)+l] = base + l - 1
				}
			}
			msh.NOP[e] = nop
		}
	}
	msh.classifyBoundaryElements()
	return
}

// classifyBoundaryElements fills BoundaryElements by element lattice
// position. An element belongs to every side it touches.
func (msh *Mesh) classifyBoundaryElements() {
	for i := 0; i < msh.NumElementsX; i++ {
		for j := 0; j < msh.NumElementsY; j++ {
			e := i*msh.NumElementsY + j
			if j == 0 {
				msh.BoundaryElements[Bottom] = append(msh.BoundaryElements[Bottom],
					BoundaryElement{Element: e, Side: Bottom})
			}
			if i == 0 {
				msh.BoundaryElements[Left] = append(msh.BoundaryElements[Left],
					BoundaryElement{Element: e, Side: Left})
			}
			if j == msh.NumElementsY-1 {
				msh.BoundaryElements[Top] = append(msh.BoundaryElements[Top],
					BoundaryElement{Element: e, Side: Top})
			}
			if i == msh.NumElementsX-1 {
				msh.BoundaryElements[Right] = append(msh.BoundaryElements[Right],
					BoundaryElement{Element: e, Side: Right})
			}
		}
	}
}
