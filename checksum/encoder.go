// Package checksum implements a fixed-width block checksum using
// 1's-complement addition with end-around carry. The sender sums the
// data blocks, complements the sum, and appends the complement; the
// receiver sums everything including the appended block and accepts iff
// the result is all-ones. Detection only, no correction.
//
// A blockWidth of 1 is accepted but useless: every 1-bit sum wraps to
// the same residue, so corruption is never detected.
package checksum

import (
	"fmt"

	"github.com/yangl1996/error-control-codes/bitstring"
)

// InvalidWidthError is returned for a non-positive block width.
type InvalidWidthError struct {
	Width int
}

func (e InvalidWidthError) Error() string {
	return fmt.Sprintf("invalid block width %d", e.Width)
}

// EmptyDataError is returned when there are no data bits to checksum.
type EmptyDataError struct{}

func (e EmptyDataError) Error() string {
	return "empty data"
}

// InvalidSegmentError is returned by the segmented variants for a
// segment length that is not a positive multiple of the block width,
// or a received length that cannot hold whole segments.
type InvalidSegmentError struct {
	Reason string
}

func (e InvalidSegmentError) Error() string {
	return "invalid segment layout: " + e.Reason
}

// Encode computes the blockWidth-bit checksum of data. The data is
// split into blocks of blockWidth bits, zero-padding the final block on
// the right when the length does not divide evenly; the blocks are
// summed with end-around carry and the sum is complemented.
func Encode(data bitstring.BitString, blockWidth int) (bitstring.BitString, error) {
	if blockWidth <= 0 {
		return nil, InvalidWidthError{blockWidth}
	}
	if len(data) == 0 {
		return nil, EmptyDataError{}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	sum := sumBlocks(data, blockWidth)
	return complement(sum), nil
}

// EncodeSegments splits data into segments of segmentLen bits and
// checksums each independently with blockWidth-bit blocks, returning
// the per-segment checksums concatenated in order. segmentLen must be
// a positive multiple of blockWidth; a final short segment is
// zero-padded on the right like a short block.
func EncodeSegments(data bitstring.BitString, segmentLen, blockWidth int) (bitstring.BitString, error) {
	if blockWidth <= 0 {
		return nil, InvalidWidthError{blockWidth}
	}
	if segmentLen <= 0 || segmentLen%blockWidth != 0 {
		return nil, InvalidSegmentError{fmt.Sprintf("segment length %d is not a positive multiple of block width %d", segmentLen, blockWidth)}
	}
	if len(data) == 0 {
		return nil, EmptyDataError{}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	var out bitstring.BitString
	for i := 0; i < len(data); i += segmentLen {
		end := i + segmentLen
		if end > len(data) {
			end = len(data)
		}
		out = append(out, complement(sumBlocks(data[i:end], blockWidth))...)
	}
	return out, nil
}

// sumBlocks partitions bits into k-bit blocks, zero-padding the last
// block on the right, and folds them with end-around carry.
func sumBlocks(bits bitstring.BitString, k int) bitstring.BitString {
	sum := bitstring.Zero(k)
	for i := 0; i < len(bits); i += k {
		end := i + k
		if end > len(bits) {
			blk := make(bitstring.BitString, k)
			copy(blk, bits[i:])
			sum = addEndAround(sum, blk)
			break
		}
		sum = addEndAround(sum, bits[i:end])
	}
	return sum
}

// addEndAround adds two equal-width words; a carry out of the high end
// wraps back into the low end until none remains.
func addEndAround(a, b bitstring.BitString) bitstring.BitString {
	k := len(a)
	out := make(bitstring.BitString, k)
	carry := byte(0)
	for i := k - 1; i >= 0; i-- {
		s := a[i] + b[i] + carry
		out[i] = s & 1
		carry = s >> 1
	}
	for carry != 0 {
		carry = 0
		c := byte(1)
		for i := k - 1; i >= 0 && c != 0; i-- {
			s := out[i] + c
			out[i] = s & 1
			c = s >> 1
		}
		carry = c
	}
	return out
}

func complement(bits bitstring.BitString) bitstring.BitString {
	out := make(bitstring.BitString, len(bits))
	for i, v := range bits {
		out[i] = v ^ 1
	}
	return out
}
