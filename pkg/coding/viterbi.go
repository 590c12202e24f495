package coding

import (
	"math"

	"berchain/pkg/bercore"
)

// negInf stands in for the -infinity path-metric initializer; states
// that are unreachable at a given stage carry exactly this value so
// the "if path_metrics[stage][state] == NEG_INF continue" skip in the
// forward pass is a plain float comparison, matching the reference
// decoder's own sentinel-float convention.
var negInf = math.Inf(-1)

// Decode runs the log-domain Viterbi algorithm over llrs (length must
// be even) and returns the len(llrs)/2 - TailLength information bits
// forced out of the trellis by tail termination.
//
// Branch metrics are the signed sum of the stage's two LLRs: a branch
// whose expected output bit is 1 adds that LLR, a branch whose
// expected output bit is 0 subtracts it — the sign convention fixed
// by pkg/coding's LLR generators. Ties in add-compare-select are
// broken by keeping the incumbent (strict ">" update), so the
// earlier-enumerated predecessor always wins on a marginal input.
func Decode(llrs []float64) ([]bool, error) {
	if len(llrs) <= 0 || len(llrs)%2 != 0 {
		return nil, bercore.New(bercore.ReasonInvalidInput, "llr length must be positive and even, got %d", len(llrs))
	}

	numStages := len(llrs) / 2
	infoLen := numStages - TailLength
	if infoLen <= 0 {
		return nil, bercore.New(bercore.ReasonUnderflow, "stage count %d too short for %d tail bits", numStages, TailLength)
	}

	t := trellis()

	metrics := make([][NumStates]float64, numStages+1)
	history := make([][NumStates]uint8, numStages+1)
	for s := range metrics {
		for q := 0; q < NumStates; q++ {
			metrics[s][q] = negInf
		}
	}
	metrics[0][0] = 0

	for stage := 0; stage < numStages; stage++ {
		llr0 := llrs[2*stage]
		llr1 := llrs[2*stage+1]

		for state := 0; state < NumStates; state++ {
			if metrics[stage][state] == negInf {
				continue
			}
			base := metrics[stage][state]

			for input := uint8(0); input < 2; input++ {
				tr := t.forward[state][input]

				branch := 0.0
				if tr.output&2 != 0 {
					branch += llr0
				} else {
					branch -= llr0
				}
				if tr.output&1 != 0 {
					branch += llr1
				} else {
					branch -= llr1
				}

				candidate := base + branch
				if candidate > metrics[stage+1][tr.nextState] {
					metrics[stage+1][tr.nextState] = candidate
					history[stage+1][tr.nextState] = (uint8(state) << 1) | input
				}
			}
		}
	}

	decoded := make([]bool, infoLen)
	state := uint8(0)
	for stage := numStages; stage > 0; stage-- {
		h := history[stage][state]
		prevState := h >> 1
		input := h & 1
		if stage <= infoLen {
			decoded[stage-1] = input == 1
		}
		state = prevState
	}

	return decoded, nil
}
