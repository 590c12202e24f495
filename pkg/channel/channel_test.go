package channel

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"berchain/pkg/bercore"
)

func TestAddAWGNIsDeterministicForFixedSeed(t *testing.T) {
	base := []complex128{complex(1, 0), complex(-1, 0), complex(0, 1)}

	run := func(seed uint64) []complex128 {
		syms := append([]complex128(nil), base...)
		rng := rand.New(rand.NewSource(seed))
		AddAWGN(syms, 0.1, rng)
		return syms
	}

	a := run(42)
	b := run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("symbol %d differs across runs with the same seed: %v vs %v", i, a[i], b[i])
		}
	}

	c := run(43)
	allEqual := true
	for i := range a {
		if a[i] != c[i] {
			allEqual = false
		}
	}
	if allEqual {
		t.Fatalf("different seeds produced identical noise sequences")
	}
}

func TestEstimateSNRSanity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, trueSNR := range []float64{0, 5, 10, 15} {
		est := EstimateSNR(trueSNR, 500, rng)
		if math.Abs(est-trueSNR) > 2.0 {
			t.Errorf("true SNR %v dB: estimate %v dB off by more than 2 dB", trueSNR, est)
		}
	}
}

func TestEstimateSNRRejectsInvalidInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := EstimateSNR(10, 0, rng); got != bercore.SNRSentinel {
		t.Errorf("zero pilots: got %v want %v", got, bercore.SNRSentinel)
	}
	if got := EstimateSNR(10, -1, rng); got != bercore.SNRSentinel {
		t.Errorf("negative pilots: got %v want %v", got, bercore.SNRSentinel)
	}
	if got := EstimateSNR(100, 10, rng); got != bercore.SNRSentinel {
		t.Errorf("out-of-range SNR: got %v want %v", got, bercore.SNRSentinel)
	}
	if got := EstimateSNR(10, 2_000_000, rng); got != bercore.SNRSentinel {
		t.Errorf("too many pilots: got %v want %v", got, bercore.SNRSentinel)
	}
}
