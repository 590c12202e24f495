package ber

import "math"

// qfunc is the Gaussian tail probability Q(x) = 1/2 * erfc(x/sqrt2).
func qfunc(x float64) float64 {
	return 0.5 * math.Erfc(x/math.Sqrt2)
}

// TheoreticalBER is C11: the closed-form Q-function BER for validating
// the simulated drivers, never consulted by ComputeBER*. BPSK and QPSK
// share the same per-bit error probability under Gray mapping; 16-QAM
// uses the standard 4-level-per-axis union bound.
func TheoreticalBER(modOrder int, ebnoDB float64) float64 {
	ebnoLin := math.Pow(10, ebnoDB/10)
	switch modOrder {
	case 2, 4:
		return qfunc(math.Sqrt(2 * ebnoLin))
	case 16:
		arg := math.Sqrt(2 * ebnoLin / 5)
		return 0.25 * (3*qfunc(arg) + qfunc(3*arg))
	default:
		return -1
	}
}
