// Package coding implements the K=7, rate-½ convolutional encoder and
// its soft-decision Viterbi decoder, plus the per-modulation LLR
// generator that feeds it. The trellis-table construction is grounded
// on the reference original_source/coding.cpp state-table builder,
// translated from a C array-of-structs into small Go value types.
package coding

import (
	"math/bits"
	"sync"
)

const (
	// ConstraintLength is K for this code; NumStates = 2^(K-1).
	ConstraintLength = 7
	NumStates        = 1 << (ConstraintLength - 1)

	// Generator polynomials, industry-standard K=7 rate-1/2 code.
	gen1 = 0b1011011 // 0o133
	gen2 = 0b1111001 // 0o171

	// TailLength is the number of zero-input steps needed to force
	// the encoder back to state 0.
	TailLength = ConstraintLength - 1
)

// transition holds the forward (next_state, output) pair for one
// (state, input) combination.
type transition struct {
	nextState uint8
	output    uint8 // (G1-bit<<1) | G2-bit
}

// predecessor holds one (state, input) pair that transitions into a
// given state — the decoder needs at most two of these per state.
type predecessor struct {
	state uint8
	input uint8
}

// trellisTable is the read-only, process-wide K=7 trellis: forward
// transitions indexed [state][input], and up to two predecessors per
// state. Decode's forward pass enumerates the forward transitions and
// its traceback follows its own history grid; it does not read the
// predecessor lists.
type trellisTable struct {
	forward      [NumStates][2]transition
	predecessors [NumStates][2]predecessor
	predCount    [NumStates]int
}

var (
	trellisOnce   sync.Once
	globalTrellis trellisTable
)

// trellis returns the process-wide trellis table, building it on the
// first call. Building is idempotent and race-free: concurrent first
// use from multiple sweep-runner goroutines (§5) all block on the same
// sync.Once and see the fully built table.
func trellis() *trellisTable {
	trellisOnce.Do(buildTrellis)
	return &globalTrellis
}

func buildTrellis() {
	t := &globalTrellis

	for state := 0; state < NumStates; state++ {
		for input := 0; input < 2; input++ {
			shift := (input << (ConstraintLength - 1)) | state
			out1 := bits.OnesCount(uint(shift)&gen1) & 1
			out2 := bits.OnesCount(uint(shift)&gen2) & 1
			output := uint8((out1 << 1) | out2)
			next := uint8(shift >> 1)

			t.forward[state][input] = transition{nextState: next, output: output}
		}
	}

	for state := 0; state < NumStates; state++ {
		count := 0
		for prev := 0; prev < NumStates && count < 2; prev++ {
			for input := 0; input < 2 && count < 2; input++ {
				if int(t.forward[prev][input].nextState) == state {
					t.predecessors[state][count] = predecessor{state: uint8(prev), input: uint8(input)}
					count++
				}
			}
		}
		t.predCount[state] = count
	}
}
