// Package modem implements the Gray-mapped BPSK/QPSK/16-QAM
// modulator and demodulator pair this simulation core runs every
// transmitted bit through. It replaces the reference Aethernet
// acoustic carrier/CRC/preamble modem with a direct bit-to-baseband-
// symbol mapping — there is no physical carrier or framing here, only
// the constellation math.
package modem

import (
	"math"

	"berchain/pkg/bercore"
)

// Modulator is the Modulate half of a Modem contract; it mirrors the
// shape of the reference codebase's own Modem interface
// (Modulate/Demodulate over a single input slice). No type in this
// package implements it: the package-level Modulate and Demodulate
// take the modulation order as an extra argument.
type Modulator interface {
	Modulate(bits []bool) ([]complex128, error)
}

// Demodulator is the hard-decision inverse of Modulator.
type Demodulator interface {
	Demodulate(symbols []complex128) ([]bool, error)
}

// scaleQPSK and scaleSixteenQAM normalize the per-axis amplitudes so
// each constellation has unit average symbol energy (Es = 1).
var (
	scaleQPSK       = 1 / math.Sqrt2
	scaleSixteenQAM = 1 / math.Sqrt(10)
)

// qamLevels is the 4-PAM Gray lookup table, indexed by (msb<<1)|lsb.
// It is deliberately NOT stored in amplitude order (+3,+1,-1,-3): with
// this index order the labels of adjacent amplitude levels
// (+3,+1,-1,-3 -> 00,01,11,10) differ by exactly one bit, which is the
// entire point of Gray coding. See DESIGN.md / SPEC_FULL.md §9 before
// "fixing" this.
var qamLevels = [4]float64{+3, +1, -3, -1}

func qamLevel(msb, lsb bool) float64 {
	idx := 0
	if msb {
		idx |= 2
	}
	if lsb {
		idx |= 1
	}
	return qamLevels[idx]
}

// quantizeFourPAM inverts qamLevel for a noisy real-valued sample: it
// returns the nearest of the four levels under the decision
// boundaries at 0 and ±2.
func quantizeFourPAM(x float64) float64 {
	switch {
	case x > 2:
		return 3
	case x > 0:
		return 1
	case x > -2:
		return -1
	default:
		return -3
	}
}

// levelToBits inverts qamLevel: given a quantized 4-PAM level, return
// the (msb, lsb) bit pair that produced it.
func levelToBits(level float64) (msb, lsb bool) {
	switch level {
	case 3:
		return false, false
	case 1:
		return false, true
	case -1:
		return true, true
	default: // -3
		return true, false
	}
}

// BitsPerSymbol returns k = log2(order), or an error if order is not
// one of the three supported modulations.
func BitsPerSymbol(order int) (int, error) {
	switch order {
	case 2:
		return 1, nil
	case 4:
		return 2, nil
	case 16:
		return 4, nil
	default:
		return 0, bercore.New(bercore.ReasonInvalidModulation, "modulation order %d not in {2,4,16}", order)
	}
}
