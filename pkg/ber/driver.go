// Package ber wires pkg/modem, pkg/channel and pkg/coding together
// into the uncoded and coded bit-error-rate drivers (C8/C9) and the
// closed-form theoretical BER used only for validation (C11).
// Semantics are grounded directly on original_source/ber.cpp's
// compute_ber/compute_ber_seeded/compute_ber_coded, rebuilt against
// berchain/pkg/bercore's consolidated sentinel vocabulary instead of
// the distillation's undocumented magic negative floats.
package ber

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/exp/rand"

	"berchain/pkg/bercore"
	"berchain/pkg/channel"
	"berchain/pkg/modem"
)

const (
	minSNRDB       = -50.0
	maxSNRDB       = 50.0
	maxUncodedBits = 100_000_000
)

// ComputeBER runs one uncoded BER trial with a fresh, process-randomness-seeded
// RNG. It is the unseeded convenience entry point; ComputeBERSeeded is the one
// sweeps and tests should use for reproducibility.
func ComputeBER(modOrder int, snrDB float64, numBits int64) float64 {
	return ComputeBERSeeded(modOrder, snrDB, numBits, freshSeed())
}

// freshSeed draws a seed from the OS CSPRNG, matching the reference
// driver's random_device-seeded unseeded entry point.
func freshSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing is not a scenario this simulation core
		// needs to recover from gracefully; a fixed fallback keeps the
		// unseeded entry point total.
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// ComputeBERSeeded is C8: generate numBits random bits (truncated down
// to a multiple of bits-per-symbol), modulate, add AWGN at the Es/N0
// implied by snrDB, demodulate, and return errors/numBits. It returns
// a bercore.Reason sentinel on invalid input, 0 for a zero-length
// request after truncation.
func ComputeBERSeeded(modOrder int, snrDB float64, numBits int64, seed uint64) float64 {
	k, err := modem.BitsPerSymbol(modOrder)
	if err != nil {
		return bercore.ReasonInvalidModulation.Sentinel()
	}
	if snrDB < minSNRDB || snrDB > maxSNRDB {
		return bercore.ReasonInvalidRange.Sentinel()
	}

	numBits -= numBits % int64(k)
	if numBits <= 0 {
		return 0
	}
	if numBits > maxUncodedBits {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	rng := rand.New(rand.NewSource(seed))
	bits := randomBits(int(numBits), rng)

	symbols, err := modem.Modulate(bits, modOrder)
	if err != nil {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	ebnoLin := math.Pow(10, snrDB/10)
	esnoLin := float64(k) * ebnoLin
	n0 := 1 / esnoLin
	channel.AddAWGN(symbols, n0, rng)

	rxBits, err := modem.Demodulate(symbols, modOrder)
	if err != nil {
		return bercore.ReasonInvalidInput.Sentinel()
	}

	errors := countMismatches(bits, rxBits)
	return float64(errors) / float64(numBits)
}

func randomBits(n int, rng *rand.Rand) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	return bits
}

func countMismatches(a, b []bool) int64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var errors int64
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			errors++
		}
	}
	return errors
}
