package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleInput = []byte(`
Title: "Hot Left Edge"
MeshDimension: 2D
ElementOrder: quadratic
NumElementsX: 2
NumElementsY: 2
MaxX: 1
MaxY: 1
BCs:
  left: ["constantTemp", 100]
  bottom: ["convection", 10, 20]
  top: ["convection", 10, 20]
  right: ["convection", 10, 20]
`)

func TestParse(t *testing.T) {
	ip := &InputParametersHeat2D{}
	require.NoError(t, ip.Parse(exampleInput))
	assert.Equal(t, "2D", ip.MeshDimension)
	assert.Equal(t, "quadratic", ip.ElementOrder)
	assert.Equal(t, 2, ip.NumElementsX)
	assert.Equal(t, 2, ip.NumElementsY)
	assert.Equal(t, 1., ip.MaxX)
	assert.Equal(t, 4, len(ip.BCs))
	assert.Equal(t, "constantTemp", ip.BCs["left"][0])
	assert.NoError(t, ip.Validate())
}

func TestParseDefaultsNumElementsY(t *testing.T) {
	ip := &InputParametersHeat2D{}
	require.NoError(t, ip.Parse([]byte(`
MeshDimension: 1D
ElementOrder: quadratic
NumElementsX: 4
MaxX: 2
BCs:
  left: ["constantTemp", 0]
`)))
	assert.Equal(t, 1, ip.NumElementsY)
	assert.NoError(t, ip.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *InputParametersHeat2D {
		ip := &InputParametersHeat2D{}
		require.NoError(t, ip.Parse(exampleInput))
		return ip
	}
	{
		ip := base()
		ip.MeshDimension = ""
		assert.Error(t, ip.Validate())
	}
	{
		ip := base()
		ip.MeshDimension = "3D"
		assert.Error(t, ip.Validate())
	}
	{
		ip := base()
		ip.ElementOrder = "cubic"
		assert.Error(t, ip.Validate())
	}
	{
		ip := base()
		ip.NumElementsX = 0
		assert.Error(t, ip.Validate())
	}
	{
		ip := base()
		ip.MaxY = 0
		assert.Error(t, ip.Validate())
	}
	{
		ip := base()
		ip.BCs = nil
		assert.Error(t, ip.Validate())
	}
}
