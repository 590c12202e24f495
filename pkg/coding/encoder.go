package coding

import "berchain/pkg/bercore"

// Encode runs infoBits through the K=7 rate-½ convolutional encoder,
// terminating the trellis with TailLength zero-input steps so the
// encoder state returns to 0. The returned slice has length
// 2*(len(infoBits)+TailLength).
func Encode(infoBits []bool) ([]bool, error) {
	if len(infoBits) <= 0 {
		return nil, bercore.New(bercore.ReasonInvalidInput, "info_len must be positive, got %d", len(infoBits))
	}

	t := trellis()
	coded := make([]bool, 2*(len(infoBits)+TailLength))

	state := uint8(0)
	idx := 0

	emit := func(input uint8) {
		tr := t.forward[state][input]
		coded[idx] = tr.output&2 != 0
		coded[idx+1] = tr.output&1 != 0
		idx += 2
		state = tr.nextState
	}

	for _, b := range infoBits {
		if b {
			emit(1)
		} else {
			emit(0)
		}
	}
	for i := 0; i < TailLength; i++ {
		emit(0)
	}

	return coded, nil
}
