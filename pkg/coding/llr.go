package coding

import "math"

// pamLevels mirrors pkg/modem's Gray-ordered 4-PAM table: index
// (msb<<1)|lsb -> level. Kept as a private copy here rather than an
// import of pkg/modem's table, because the LLR generator works in the
// coded-bit domain (no modulator/demodulator round trip involved) and
// this spec treats the two packages as independent collaborators that
// merely happen to agree on bit order. No test in pkg/ber checks that
// agreement for 16-QAM; llr_test.go checks these LLR signs against the
// Gray labels directly.
var pamLevels = [4]float64{+3, +1, -3, -1}

func lse2(a, b float64) float64 {
	m := math.Max(a, b)
	return m + math.Log(1+math.Exp(-math.Abs(a-b)))
}

// LLRsBPSK returns one LLR per received symbol: LLR = -Re(y)*(2/N0).
func LLRsBPSK(symbols []complex128, n0 float64) []float64 {
	scale := 2 / n0
	llrs := make([]float64, len(symbols))
	for i, y := range symbols {
		llrs[i] = -real(y) * scale
	}
	return llrs
}

// LLRsQPSK returns two LLRs per symbol, in (I, Q) order, matching the
// modulator's (b0,b1) bit interleaving for QPSK.
func LLRsQPSK(symbols []complex128, n0 float64) []float64 {
	scale := 2 / n0
	llrs := make([]float64, 2*len(symbols))
	for i, y := range symbols {
		llrs[2*i] = -real(y) * scale
		llrs[2*i+1] = -imag(y) * scale
	}
	return llrs
}

// LLRsSixteenQAM returns four LLRs per symbol, in (msb_I, msb_Q,
// lsb_I, lsb_Q) order — the exact emission order the modulator's bit
// interleaving for 16-QAM requires (§4.6). Each axis's msb/lsb LLR
// pair is computed by exact log-sum-exp over the four Gray-ordered
// 4-PAM levels, with the max-subtraction trick baked into lse2 so this
// stays numerically stable well past Es/N0 ~ 40 dB.
func LLRsSixteenQAM(symbols []complex128, n0 float64, scaleSixteenQAM float64) []float64 {
	llrs := make([]float64, 4*len(symbols))

	fillAxisLLRs := func(x float64) (msb, lsb float64) {
		var metric [4]float64
		for k, level := range pamLevels {
			d := x - level
			metric[k] = -(d * d) / n0
		}
		// metric indices: 0=(00)->+3, 1=(01)->+1, 2=(10)->-3, 3=(11)->-1
		lMsb0 := lse2(metric[0], metric[1]) // msb=0: indices 0,1
		lMsb1 := lse2(metric[2], metric[3]) // msb=1: indices 2,3
		lLsb0 := lse2(metric[0], metric[2]) // lsb=0: indices 0,2
		lLsb1 := lse2(metric[1], metric[3]) // lsb=1: indices 1,3
		return -(lMsb0 - lMsb1), -(lLsb0 - lLsb1)
	}

	for i, y := range symbols {
		rI := real(y) / scaleSixteenQAM
		rQ := imag(y) / scaleSixteenQAM

		msbI, lsbI := fillAxisLLRs(rI)
		msbQ, lsbQ := fillAxisLLRs(rQ)

		llrs[4*i] = msbI
		llrs[4*i+1] = msbQ
		llrs[4*i+2] = lsbI
		llrs[4*i+3] = lsbQ
	}

	return llrs
}
