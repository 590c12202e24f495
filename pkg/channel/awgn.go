// Package channel models the AWGN channel (§4.3) and the pilot-based
// SNR estimator (§4.10). Randomness flows through
// golang.org/x/exp/rand, the same package the reference Aethernet
// codebase already reaches for in pkg/device/utils.go and
// pkg/layers/mac.go, paired here with gonum's distuv.Normal sampler
// instead of a hand-rolled Box-Muller transform.
package channel

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// AddAWGN adds independent N(0, n0/2) noise to the real and imaginary
// parts of every symbol in place, given the noise spectral density
// n0. Callers own rng; this function never seeds one itself, so two
// runs sharing an rng draw from the same stream while two runs with
// independent rngs are statistically independent (§5).
func AddAWGN(symbols []complex128, n0 float64, rng *rand.Rand) {
	sigma := math.Sqrt(n0 / 2)
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}

	for i, s := range symbols {
		symbols[i] = complex(real(s)+noise.Rand(), imag(s)+noise.Rand())
	}
}
