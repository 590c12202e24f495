package modem

import "berchain/pkg/bercore"

// Modulate maps bits to complex baseband symbols per the constellation
// rules of §4.1: BPSK antipodal, QPSK per-axis antipodal scaled by
// 1/√2, 16-QAM Gray-mapped 4-PAM per axis scaled by 1/√10. A trailing
// partial symbol's worth of bits is silently discarded.
func Modulate(bits []bool, order int) ([]complex128, error) {
	k, err := BitsPerSymbol(order)
	if err != nil {
		return nil, err
	}
	if len(bits) < k {
		return nil, bercore.New(bercore.ReasonInvalidInput, "need at least %d bits for one %d-ary symbol, got %d", k, order, len(bits))
	}

	numSymbols := len(bits) / k
	symbols := make([]complex128, numSymbols)

	switch order {
	case 2:
		for i := 0; i < numSymbols; i++ {
			symbols[i] = bpskSymbol(bits[i])
		}
	case 4:
		for i := 0; i < numSymbols; i++ {
			re := bpskSymbol(bits[2*i])
			im := bpskSymbol(bits[2*i+1])
			symbols[i] = complex(real(re)*scaleQPSK, real(im)*scaleQPSK)
		}
	case 16:
		for i := 0; i < numSymbols; i++ {
			b0, b1, b2, b3 := bits[4*i], bits[4*i+1], bits[4*i+2], bits[4*i+3]
			re := qamLevel(b0, b2) * scaleSixteenQAM
			im := qamLevel(b1, b3) * scaleSixteenQAM
			symbols[i] = complex(re, im)
		}
	}

	return symbols, nil
}

// bpskSymbol maps a single bit to the antipodal BPSK value 1-2b: 0→+1, 1→−1.
func bpskSymbol(bit bool) complex128 {
	if bit {
		return complex(-1, 0)
	}
	return complex(1, 0)
}
