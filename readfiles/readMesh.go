package readfiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notargets/gofea/FEM1D"
	"github.com/notargets/gofea/FEM2D"
)

// MeshDocument is the custom mesh file format, an alternate mesh source that
// bypasses structured generation: explicit node coordinates, per element
// connectivity in the canonical local order, and the boundary element lists
// per side.
type MeshDocument struct {
	Nodes    []NodeCoord `yaml:"nodes"`
	Elements [][]int     `yaml:"elements"`
	// side key (bottom/left/top/right) -> element indices touching it
	BoundaryElements map[string][]int `yaml:"boundaryElements"`
}

// NodeCoord keys are the bare scalars x and y. Mesh documents are decoded
// with YAML 1.2 semantics (yaml.v3): under YAML 1.1 the key y resolves to a
// boolean and the coordinate would silently load as zero.
type NodeCoord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ReadMeshFile reads a YAML (or JSON) mesh document and converts it to a
// solver ready mesh.
func ReadMeshFile(filename string) (msh *FEM2D.Mesh, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	var doc MeshDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		err = fmt.Errorf("unable to parse mesh document %s: %w", filename, err)
		return
	}
	return doc.ToMesh()
}

// ToMesh validates the document and populates a mesh. Only 9 node
// (biquadratic) elements are supported, matching the structured generator.
func (doc *MeshDocument) ToMesh() (msh *FEM2D.Mesh, err error) {
	var (
		nn = len(doc.Nodes)
	)
	if nn == 0 {
		err = fmt.Errorf("mesh document has no nodes")
		return
	}
	if len(doc.Elements) == 0 {
		err = fmt.Errorf("mesh document has no elements")
		return
	}
	msh = &FEM2D.Mesh{
		NodeX: make([]float64, nn),
		NodeY: make([]float64, nn),
		NOP:   make([][]int, len(doc.Elements)),
		Order: FEM1D.Quadratic,
	}
	for i, nd := range doc.Nodes {
		msh.NodeX[i] = nd.X
		msh.NodeY[i] = nd.Y
	}
	for e, nop := range doc.Elements {
		if len(nop) != 9 {
			err = fmt.Errorf("%w: element %d has %d nodes, mesh documents support 9 node elements",
				FEM2D.ErrUnsupported, e, len(nop))
			return
		}
		for _, g := range nop {
			if g < 0 || g >= nn {
				err = fmt.Errorf("element %d references node %d, outside [0,%d)", e, g, nn)
				return
			}
		}
		msh.NOP[e] = nop
	}
	for label, elems := range doc.BoundaryElements {
		var side FEM2D.Side
		if side, err = FEM2D.NewSide(label); err != nil {
			return
		}
		for _, e := range elems {
			if e < 0 || e >= len(doc.Elements) {
				err = fmt.Errorf("boundary side %s references element %d, outside [0,%d)",
					label, e, len(doc.Elements))
				return
			}
			msh.BoundaryElements[side] = append(msh.BoundaryElements[side],
				FEM2D.BoundaryElement{Element: e, Side: side})
		}
	}
	return
}
