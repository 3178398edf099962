package checksum

import (
	"github.com/yangl1996/error-control-codes/bitstring"
)

// Status is the outcome of verifying a received word. Corruption is an
// ordinary result, not an error: a call that reports Corrupted has done
// its job.
type Status int

const (
	Valid Status = iota
	Corrupted
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Corrupted:
		return "corrupted"
	default:
		return "unknown"
	}
}

// Verify checks a received word consisting of the data bits followed by
// their blockWidth-bit checksum. The data part is blocked with the same
// zero-padding rule as Encode, the checksum block is added in, and the
// word is accepted iff the sum is all-ones. A word too short to hold
// any data under the scheme is Corrupted, not an error.
func Verify(received bitstring.BitString, blockWidth int) (Status, error) {
	if blockWidth <= 0 {
		return Corrupted, InvalidWidthError{blockWidth}
	}
	if len(received) == 0 {
		return Corrupted, EmptyDataError{}
	}
	if err := received.Validate(); err != nil {
		return Corrupted, err
	}
	if len(received) <= blockWidth {
		// no room for data bits before the checksum
		return Corrupted, nil
	}
	data := received[:len(received)-blockWidth]
	cks := received[len(received)-blockWidth:]
	sum := addEndAround(sumBlocks(data, blockWidth), cks)
	if sum.AllOnes() {
		return Valid, nil
	}
	return Corrupted, nil
}

// VerifySegments checks a received word produced by EncodeSegments:
// the data bits followed by one blockWidth-bit checksum per segment,
// concatenated in segment order. It returns one Status per segment.
// The total length must be an exact multiple of segmentLen+blockWidth;
// the short-final-segment case is only checkable by a caller that knows
// the original data length and can strip it before calling.
func VerifySegments(received bitstring.BitString, segmentLen, blockWidth int) ([]Status, error) {
	if blockWidth <= 0 {
		return nil, InvalidWidthError{blockWidth}
	}
	if segmentLen <= 0 || segmentLen%blockWidth != 0 {
		return nil, InvalidSegmentError{"segment length is not a positive multiple of block width"}
	}
	if len(received) == 0 {
		return nil, EmptyDataError{}
	}
	if err := received.Validate(); err != nil {
		return nil, err
	}
	if len(received)%(segmentLen+blockWidth) != 0 {
		return nil, InvalidSegmentError{"received length does not hold whole segments"}
	}
	count := len(received) / (segmentLen + blockWidth)
	dataLen := count * segmentLen
	data := received[:dataLen]
	sums := received[dataLen:]

	statuses := make([]Status, count)
	for i := 0; i < count; i++ {
		seg := data[i*segmentLen : (i+1)*segmentLen]
		cks := sums[i*blockWidth : (i+1)*blockWidth]
		sum := addEndAround(sumBlocks(seg, blockWidth), cks)
		if sum.AllOnes() {
			statuses[i] = Valid
		} else {
			statuses[i] = Corrupted
		}
	}
	return statuses, nil
}
