/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofea/FEM1D"
	"github.com/notargets/gofea/FEM2D"
	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/model_problems/Heat2D"
	"github.com/notargets/gofea/readfiles"
)

type ModelSolve struct {
	ICFile   string
	MeshFile string
	Profile  bool
	Perf     bool
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a steady heat conduction boundary value problem",
	Long: `
Assembles and solves the Galerkin finite element system for steady heat
conduction over a structured rectangular domain,

gofea solve -I inputParameters.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelSolve{}
		if ms.ICFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		if ms.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		ms.Perf, _ = cmd.Flags().GetBool("perf")
		ip := processInput(ms)
		if err = RunSolve(ms, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(ms *ModelSolve) (ip *InputParameters.InputParametersHeat2D) {
	var (
		err error
	)
	if len(ms.ICFile) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --inputParametersFile)\n")
		exampleFile := `
########################################
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
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(ms.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersHeat2D{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with mesh configuration and boundary conditions")
	SolveCmd.Flags().StringP("meshFile", "F", "", "optional mesh document (nodes/elements), bypasses structured generation")
	SolveCmd.Flags().Bool("profile", false, "write a CPU profile for the solve")
	SolveCmd.Flags().Bool("perf", false, "report hardware instruction counts for the solve (linux)")
}

// RunSolve validates the input, builds the solver from either the structured
// configuration or a mesh document, runs the pipeline and prints the
// solution table.
func RunSolve(ms *ModelSolve, ip *InputParameters.InputParametersHeat2D) (err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	ip.Print()
	if ip.MeshDimension != "2D" {
		return fmt.Errorf("%w: the solve pipeline supports 2D meshes only", FEM2D.ErrUnsupported)
	}
	var order FEM1D.Order
	if order, err = FEM1D.NewOrder(ip.ElementOrder); err != nil {
		return
	}
	bcs := make(map[FEM2D.Side]FEM2D.BoundaryCondition, len(ip.BCs))
	for label, tuple := range ip.BCs {
		var (
			side FEM2D.Side
			bc   FEM2D.BoundaryCondition
		)
		if side, err = FEM2D.NewSide(label); err != nil {
			return
		}
		if bc, err = FEM2D.NewBoundaryCondition(tuple); err != nil {
			return fmt.Errorf("boundary %s: %w", label, err)
		}
		bcs[side] = bc
	}

	var c *Heat2D.HeatConduction2D
	if len(ms.MeshFile) != 0 {
		var msh *FEM2D.Mesh
		if msh, err = readfiles.ReadMeshFile(ms.MeshFile); err != nil {
			return
		}
		if c, err = Heat2D.NewFromMesh(msh, bcs); err != nil {
			return
		}
	} else {
		if c, err = Heat2D.NewHeatConduction2D(ip.NumElementsX, ip.NumElementsY,
			ip.MaxX, ip.MaxY, order, bcs); err != nil {
			return
		}
	}

	if ms.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var sr Heat2D.SolutionResult
	run := func() error {
		var errS error
		sr, errS = c.Solve()
		return errS
	}
	if ms.Perf {
		err = instrumentSolve(run)
	} else {
		err = run()
	}
	if err != nil {
		return
	}
	sr.Print()
	return
}
