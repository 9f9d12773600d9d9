//go:build linux
// +build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// instrumentSolve runs f under a hardware instruction counter and reports
// the count. Requires perf_event_open access.
func instrumentSolve(f func() error) error {
	profileValue, err := perf.CPUInstructions(f)
	if err != nil {
		return err
	}
	fmt.Printf("CPU instructions: %d\n", profileValue.Value)
	return nil
}
