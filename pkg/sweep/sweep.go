// Package sweep drives a runplan.RunPlan's grid of (modulation, SNR,
// path) cells through pkg/ber, optionally fanning cells out across a
// bounded worker pool via pkg/async. Fan-out shape follows
// gather_test.go's Promise-per-unit/Gather-to-collect pattern,
// generalized from a fixed handful of promises to RunBounded's
// slice-of-cells.
package sweep

import (
	"golang.org/x/exp/rand"

	"berchain/pkg/async"
	"berchain/pkg/ber"
	"berchain/pkg/channel"
	"berchain/pkg/runplan"
)

// Path names which transmission path a cell measured.
type Path string

const (
	PathUncoded Path = "uncoded"
	PathCoded   Path = "coded"
)

// Result is one sweep cell's measurement.
type Result struct {
	Path           Path
	ModOrder       int
	SNRdB          float64
	MeasuredBER    float64
	TheoreticalBER float64
	EstimatedSNRdB float64
	Seed           uint64
}

// cell is the internal unit of work RunBounded fans out.
type cell struct {
	path     Path
	modOrder int
	snrDB    float64
	seed     uint64
}

const pilotSymbols = 200

// Run executes every cell implied by plan's modulation list × SNR grid
// × selected paths, and returns one Result per cell. Cell order in the
// returned slice matches the order cells are enumerated: all uncoded
// cells (mod order outer, SNR inner) followed by all coded cells, if
// both paths are selected.
func Run(plan *runplan.RunPlan) []Result {
	cells := buildCells(plan)
	return async.RunBounded(cells, plan.Concurrency, func(c cell) Result {
		return runCell(plan, c)
	})
}

func buildCells(plan *runplan.RunPlan) []cell {
	snrValues := plan.SNR.Values()
	var cells []cell
	var index uint64

	if plan.RunUncoded {
		for _, mod := range plan.ModOrders {
			for _, snr := range snrValues {
				cells = append(cells, cell{PathUncoded, mod, snr, plan.BaseSeed ^ index})
				index++
			}
		}
	}
	if plan.RunCoded {
		for _, mod := range plan.ModOrders {
			for _, snr := range snrValues {
				cells = append(cells, cell{PathCoded, mod, snr, plan.BaseSeed ^ index})
				index++
			}
		}
	}
	return cells
}

func runCell(plan *runplan.RunPlan, c cell) Result {
	rng := rand.New(rand.NewSource(c.seed ^ 0xa5a5a5a5))

	var measured float64
	switch c.path {
	case PathUncoded:
		measured = ber.ComputeBERSeeded(c.modOrder, c.snrDB, plan.Uncoded.NumBits, c.seed)
	case PathCoded:
		measured = ber.ComputeBERCoded(c.modOrder, c.snrDB, plan.Coded.InfoBits, c.seed)
	}

	return Result{
		Path:           c.path,
		ModOrder:       c.modOrder,
		SNRdB:          c.snrDB,
		MeasuredBER:    measured,
		TheoreticalBER: ber.TheoreticalBER(c.modOrder, c.snrDB),
		EstimatedSNRdB: channel.EstimateSNR(c.snrDB, pilotSymbols, rng),
		Seed:           c.seed,
	}
}
