package ber

import (
	"math"

	"golang.org/x/exp/rand"

	"berchain/pkg/bercore"
	"berchain/pkg/channel"
	"berchain/pkg/coding"
	"berchain/pkg/modem"
)

const (
	codeRate     = 0.5
	maxCodedBits = 200_000_000
)

// ComputeBERCoded is C9: generate infoBits random bits, run them
// through the K=7 rate-½ convolutional encoder, modulate, add AWGN at
// the coded Es/N0 (R*k*Eb/N0), generate per-modulation LLRs, decode
// with the Viterbi decoder, and return errors/infoBits over the
// decoded information bits. seed is 64-bit, widened from the
// distilled original's 32-bit coded-driver seed to match
// ComputeBERSeeded uniformly (spec §9 Open Question resolution).
//
// Every documented failure mode returns one of bercore.Reason's five
// sentinel values — the consolidated replacement for the distilled
// driver's seven undocumented negative magic numbers.
func ComputeBERCoded(modOrder int, snrDB float64, infoBits int64, seed uint64) float64 {
	k, err := modem.BitsPerSymbol(modOrder)
	if err != nil {
		return bercore.ReasonInvalidModulation.Sentinel()
	}
	if snrDB < minSNRDB || snrDB > maxSNRDB {
		return bercore.ReasonInvalidRange.Sentinel()
	}

	// 16-QAM packs 4 coded bits per symbol; an odd info-bit count makes
	// 2*(infoBits+6) not a multiple of 4, so drop one bit to stay aligned.
	if modOrder == 16 && infoBits%2 != 0 {
		infoBits--
	}
	if infoBits <= 0 {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	codedLen := 2 * (infoBits + int64(coding.TailLength))
	if codedLen <= 0 || codedLen > maxCodedBits {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	rng := rand.New(rand.NewSource(seed))
	origBits := randomBits(int(infoBits), rng)

	coded, err := coding.Encode(origBits)
	if err != nil {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	symbols, err := modem.Modulate(coded, modOrder)
	if err != nil {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	ebnoLin := math.Pow(10, snrDB/10)
	esnoLin := codeRate * float64(k) * ebnoLin
	n0 := 1 / esnoLin
	channel.AddAWGN(symbols, n0, rng)

	llrs := generateLLRs(symbols, modOrder, n0)

	decoded, err := coding.Decode(llrs)
	if err != nil {
		return bercore.ReasonUnderflow.Sentinel()
	}

	cmpLen := int64(len(decoded))
	if cmpLen > infoBits {
		cmpLen = infoBits
	}
	if cmpLen <= 0 {
		return bercore.ReasonUnderflow.Sentinel()
	}

	var errs int64
	for i := int64(0); i < cmpLen; i++ {
		if origBits[i] != decoded[i] {
			errs++
		}
	}
	return float64(errs) / float64(cmpLen)
}

// generateLLRs dispatches to the per-modulation LLR generator (§4.6),
// matching the bit-interleaving order used by modem.Modulate for each
// modulation so the decoder sees LLRs in the same order the encoder's
// coded bits were consumed.
func generateLLRs(symbols []complex128, modOrder int, n0 float64) []float64 {
	switch modOrder {
	case 2:
		return coding.LLRsBPSK(symbols, n0)
	case 4:
		return coding.LLRsQPSK(symbols, n0)
	default: // 16
		return coding.LLRsSixteenQAM(symbols, n0, sixteenQAMScale)
	}
}

var sixteenQAMScale = 1 / math.Sqrt(10)
