package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersHeat2D struct {
	Title         string                   `yaml:"Title"`
	MeshDimension string                   `yaml:"MeshDimension"` // "1D" or "2D"
	ElementOrder  string                   `yaml:"ElementOrder"`  // "linear" or "quadratic"
	NumElementsX  int                      `yaml:"NumElementsX"`
	NumElementsY  int                      `yaml:"NumElementsY"`
	MaxX          float64                  `yaml:"MaxX"`
	MaxY          float64                  `yaml:"MaxY"`
	BCs           map[string][]interface{} `yaml:"BCs"` // boundary key -> ["convection", h, Text] | ["constantTemp", value]
}

func (ip *InputParametersHeat2D) Parse(data []byte) error {
	if ip.NumElementsY == 0 {
		ip.NumElementsY = 1
	}
	return yaml.Unmarshal(data, ip)
}

// Validate checks the three required setting groups (mesh dimensions,
// element order, boundary conditions) before any assembly starts.
func (ip *InputParametersHeat2D) Validate() (err error) {
	switch ip.MeshDimension {
	case "1D", "2D":
	case "":
		return fmt.Errorf("missing MeshDimension")
	default:
		return fmt.Errorf("unknown MeshDimension %q", ip.MeshDimension)
	}
	switch ip.ElementOrder {
	case "linear", "quadratic":
	case "":
		return fmt.Errorf("missing ElementOrder")
	default:
		return fmt.Errorf("unknown ElementOrder %q", ip.ElementOrder)
	}
	if ip.NumElementsX < 1 {
		return fmt.Errorf("NumElementsX must be positive, got %d", ip.NumElementsX)
	}
	if ip.MaxX <= 0 {
		return fmt.Errorf("MaxX must be positive, got %g", ip.MaxX)
	}
	if ip.MeshDimension == "2D" {
		if ip.NumElementsY < 1 {
			return fmt.Errorf("NumElementsY must be positive, got %d", ip.NumElementsY)
		}
		if ip.MaxY <= 0 {
			return fmt.Errorf("MaxY must be positive, got %g", ip.MaxY)
		}
	}
	if len(ip.BCs) == 0 {
		return fmt.Errorf("missing BCs")
	}
	return
}

func (ip *InputParametersHeat2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Mesh Dimension\n", ip.MeshDimension)
	fmt.Printf("[%s]\t\t= Element Order\n", ip.ElementOrder)
	fmt.Printf("[%d x %d]\t\t= Elements\n", ip.NumElementsX, ip.NumElementsY)
	fmt.Printf("[%g x %g]\t\t= Domain\n", ip.MaxX, ip.MaxY)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
