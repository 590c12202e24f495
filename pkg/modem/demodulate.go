package modem

// Demodulate inverts Modulate by hard decision: for BPSK/QPSK, a sign
// test on each de-normalized axis; for 16-QAM, a 4-PAM quantizer
// followed by the inverse Gray lookup. An empty symbol slice yields an
// empty bit slice — there is no separate "zero-length" sentinel at
// this layer, that distinction belongs to the BER drivers.
func Demodulate(symbols []complex128, order int) ([]bool, error) {
	k, err := BitsPerSymbol(order)
	if err != nil {
		return nil, err
	}

	bits := make([]bool, len(symbols)*k)

	switch order {
	case 2:
		for i, s := range symbols {
			bits[i] = real(s) < 0
		}
	case 4:
		for i, s := range symbols {
			re := real(s) / scaleQPSK
			im := imag(s) / scaleQPSK
			bits[2*i] = re < 0
			bits[2*i+1] = im < 0
		}
	case 16:
		for i, s := range symbols {
			re := quantizeFourPAM(real(s) / scaleSixteenQAM)
			im := quantizeFourPAM(imag(s) / scaleSixteenQAM)
			msbRe, lsbRe := levelToBits(re)
			msbIm, lsbIm := levelToBits(im)
			bits[4*i] = msbRe
			bits[4*i+1] = msbIm
			bits[4*i+2] = lsbRe
			bits[4*i+3] = lsbIm
		}
	}

	return bits, nil
}
