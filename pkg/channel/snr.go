package channel

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"berchain/pkg/bercore"
)

const (
	maxPilots = 1_000_000
	minSNRDB  = -50.0
	maxSNRDB  = 50.0
)

// EstimateSNR transmits numPilots all-ones pilot symbols through an
// AWGN channel set up at trueSNRDB (treated as Es/N0 with k=1, per
// §4.10), estimates the noise variance from the received pilots using
// gonum's stat.Mean over the per-pilot squared deviations, and returns
// the estimated SNR in dB. It returns bercore.SNRSentinel on any
// precondition violation.
func EstimateSNR(trueSNRDB float64, numPilots int, rng *rand.Rand) float64 {
	if numPilots <= 0 || numPilots > maxPilots {
		return bercore.SNRSentinel
	}
	if trueSNRDB < minSNRDB || trueSNRDB > maxSNRDB {
		return bercore.SNRSentinel
	}

	pilots := make([]complex128, numPilots)
	for i := range pilots {
		pilots[i] = complex(1, 0)
	}

	esnoLin := math.Pow(10, trueSNRDB/10)
	n0 := 1 / esnoLin
	AddAWGN(pilots, n0, rng)

	deviations := make([]float64, numPilots)
	for i, y := range pilots {
		d := y - complex(1, 0)
		deviations[i] = real(d)*real(d) + imag(d)*imag(d)
	}
	noiseVar := stat.Mean(deviations, nil)

	estEsnoLin := 1 / noiseVar
	return 10 * math.Log10(estEsnoLin)
}
