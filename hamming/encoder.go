// Package hamming implements the Hamming single-error-correcting code.
// The encoder interleaves parity bits at the power-of-two codeword
// positions; the decoder recomputes the parity checks, reads the
// failed checks as a syndrome addressing the corrupted position, and
// corrects it. Exactly one flipped bit is guaranteed recoverable;
// more than one may be miscorrected or reported Uncorrectable,
// whichever the syndrome indicates.
package hamming

import (
	"github.com/yangl1996/error-control-codes/bitstring"
)

// EmptyDataError is returned when there are no bits to encode or
// decode.
type EmptyDataError struct{}

func (e EmptyDataError) Error() string {
	return "empty data"
}

// Encode produces the codeword for data: parity bits at positions
// 1, 2, 4, ... and the data bits, in order, everywhere else. The
// number of parity bits is the smallest r with 2^r >= len(data)+r+1.
func Encode(data bitstring.BitString) (bitstring.BitString, error) {
	if len(data) == 0 {
		return nil, EmptyDataError{}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	m := len(data)
	r := parityCount(m)
	n := m + r
	code := make(bitstring.BitString, n)

	next := 0
	for pos := 1; pos <= n; pos++ {
		if isParityPosition(pos) {
			continue
		}
		setBit(code, pos, data[next])
		next++
	}
	for i := 0; i < r; i++ {
		p := 1 << i
		var x byte
		for pos := 1; pos <= n; pos++ {
			if pos != p && pos&p != 0 {
				x ^= bitAt(code, pos)
			}
		}
		// even parity over the covered subset including p itself
		setBit(code, p, x)
	}
	return code, nil
}
