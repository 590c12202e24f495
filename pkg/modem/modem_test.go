package modem

import (
	"math"
	"reflect"
	"testing"
)

func closeEnough(a, b complex128) bool {
	const eps = 1e-9
	return math.Abs(real(a)-real(b)) < eps && math.Abs(imag(a)-imag(b)) < eps
}

func TestModulateBPSKIdentity(t *testing.T) {
	bits := []bool{false, true}
	syms, err := Modulate(bits, 2)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	want := []complex128{complex(1, 0), complex(-1, 0)}
	for i := range want {
		if !closeEnough(syms[i], want[i]) {
			t.Fatalf("symbol %d: got %v want %v", i, syms[i], want[i])
		}
	}

	out, err := Demodulate(syms, 2)
	if err != nil {
		t.Fatalf("Demodulate: %v", err)
	}
	if !reflect.DeepEqual(out, bits) {
		t.Fatalf("got %v want %v", out, bits)
	}
}

func TestModulateQPSKIdentity(t *testing.T) {
	bits := []bool{false, false, true, true}
	syms, err := Modulate(bits, 4)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	s := 1 / math.Sqrt2
	want := []complex128{complex(s, s), complex(-s, -s)}
	for i := range want {
		if !closeEnough(syms[i], want[i]) {
			t.Fatalf("symbol %d: got %v want %v", i, syms[i], want[i])
		}
	}

	out, err := Demodulate(syms, 4)
	if err != nil {
		t.Fatalf("Demodulate: %v", err)
	}
	if !reflect.DeepEqual(out, bits) {
		t.Fatalf("got %v want %v", out, bits)
	}
}

func TestModulateSixteenQAMIdentity(t *testing.T) {
	bits := []bool{false, false, false, false}
	syms, err := Modulate(bits, 16)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	s := 3 / math.Sqrt(10)
	if !closeEnough(syms[0], complex(s, s)) {
		t.Fatalf("got %v want %v", syms[0], complex(s, s))
	}

	out, err := Demodulate(syms, 16)
	if err != nil {
		t.Fatalf("Demodulate: %v", err)
	}
	if !reflect.DeepEqual(out, bits) {
		t.Fatalf("got %v want %v", out, bits)
	}
}

func TestModulateDemodulateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		order int
	}{
		{"BPSK", 2},
		{"QPSK", 4},
		{"SixteenQAM", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := BitsPerSymbol(tt.order)
			if err != nil {
				t.Fatalf("BitsPerSymbol: %v", err)
			}

			bits := make([]bool, k*37)
			for i := range bits {
				bits[i] = (i*7+3)%5 < 2
			}

			syms, err := Modulate(bits, tt.order)
			if err != nil {
				t.Fatalf("Modulate: %v", err)
			}
			out, err := Demodulate(syms, tt.order)
			if err != nil {
				t.Fatalf("Demodulate: %v", err)
			}
			if !reflect.DeepEqual(out, bits) {
				t.Fatalf("round trip mismatch:\n got %v\nwant %v", out, bits)
			}
		})
	}
}

func TestModulateInvalidOrder(t *testing.T) {
	if _, err := Modulate([]bool{true}, 8); err == nil {
		t.Fatalf("expected error for invalid modulation order")
	}
}

func TestModulateInsufficientBits(t *testing.T) {
	if _, err := Modulate([]bool{true, false, true}, 16); err == nil {
		t.Fatalf("expected error for insufficient bits")
	}
}

func TestModulateTruncatesTrailingBits(t *testing.T) {
	bits := []bool{false, true, false} // 3 bits, BPSK (k=1) keeps 3, QPSK (k=2) drops 1
	syms, err := Modulate(bits, 4)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	if len(syms) != 1 {
		t.Fatalf("expected 1 symbol after truncation, got %d", len(syms))
	}
}
