package hamming

import (
	"github.com/yangl1996/error-control-codes/bitstring"
)

// Status is the outcome of decoding a received codeword.
type Status int

const (
	// NoError means every parity check passed.
	NoError Status = iota
	// Corrected means the syndrome addressed a codeword position and
	// that bit was flipped. If more than one bit was corrupted the
	// correction may be wrong; the decoder cannot tell.
	Corrected
	// Uncorrectable means the syndrome addressed a position beyond the
	// codeword, which only multi-bit corruption can produce.
	Uncorrectable
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "no error"
	case Corrected:
		return "corrected"
	case Uncorrectable:
		return "uncorrectable"
	default:
		return "unknown"
	}
}

// Result is the outcome of Decode. Codeword is the corrected word for
// NoError and Corrected, and the received word untouched for
// Uncorrectable. ErrorPosition is the 1-indexed position that was
// flipped, 0 when none was.
type Result struct {
	Status        Status
	Codeword      bitstring.BitString
	Data          bitstring.BitString
	ErrorPosition int
}

// Decode recomputes the parity checks of received, forms the syndrome
// with check i contributing bit i, and corrects the addressed position
// if there is one.
func Decode(received bitstring.BitString) (Result, error) {
	if len(received) == 0 {
		return Result{}, EmptyDataError{}
	}
	if err := received.Validate(); err != nil {
		return Result{}, err
	}
	n := len(received)
	syndrome := computeSyndrome(received)

	res := Result{Codeword: received.Clone()}
	switch {
	case syndrome == 0:
		res.Status = NoError
	case syndrome <= n:
		res.Status = Corrected
		res.ErrorPosition = syndrome
		setBit(res.Codeword, syndrome, bitAt(res.Codeword, syndrome)^1)
	default:
		res.Status = Uncorrectable
	}
	res.Data = extractData(res.Codeword)
	return res, nil
}

// computeSyndrome XORs every covered subset; a failed check at parity
// position 2^i sets bit i of the syndrome, so the syndrome is the
// 1-indexed position of a single corrupted bit.
func computeSyndrome(code bitstring.BitString) int {
	n := len(code)
	r := parityCountForCode(n)
	syndrome := 0
	for i := 0; i < r; i++ {
		p := 1 << i
		var x byte
		for pos := 1; pos <= n; pos++ {
			if pos&p != 0 {
				x ^= bitAt(code, pos)
			}
		}
		if x != 0 {
			syndrome |= p
		}
	}
	return syndrome
}

func extractData(code bitstring.BitString) bitstring.BitString {
	var data bitstring.BitString
	for pos := 1; pos <= len(code); pos++ {
		if !isParityPosition(pos) {
			data = append(data, bitAt(code, pos))
		}
	}
	return data
}
