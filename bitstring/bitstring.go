// Package bitstring provides the bit sequence type shared by the
// checksum, crc, and hamming codecs. A BitString stores one bit per
// element, holding the value 0 or 1 (not the characters '0' and '1').
// All operations are pure; a method never retains or mutates its
// receiver unless documented otherwise.
package bitstring

import "fmt"

// BitString is an ordered sequence of bits. The zero value is an empty
// sequence.
type BitString []byte

// InvalidBitError is returned when a digit is not 0 or 1.
type InvalidBitError struct {
	Pos   int
	Value byte
}

func (e InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit %d at position %d", e.Value, e.Pos)
}

// InvalidCharError is returned by Parse for a character other than
// '0' or '1'.
type InvalidCharError struct {
	Pos  int
	Char rune
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// OutOfRangeError is returned when a bit index falls outside the
// sequence. Indexing never wraps or truncates.
type OutOfRangeError struct {
	Pos int
	Len int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("bit index %d out of range for length %d", e.Pos, e.Len)
}

// Parse converts a string of '0' and '1' characters into a BitString.
func Parse(s string) (BitString, error) {
	b := make(BitString, len(s))
	for i, c := range s {
		switch c {
		case '0':
			b[i] = 0
		case '1':
			b[i] = 1
		default:
			return nil, InvalidCharError{i, c}
		}
	}
	return b, nil
}

// MustParse is Parse that panics on error, for constants and tests.
func MustParse(s string) BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the sequence as '0' and '1' characters. Digits outside
// {0, 1} render as '?'; use Validate to reject them.
func (b BitString) String() string {
	buf := make([]byte, len(b))
	for i, v := range b {
		switch v {
		case 0:
			buf[i] = '0'
		case 1:
			buf[i] = '1'
		default:
			buf[i] = '?'
		}
	}
	return string(buf)
}

// Validate checks that every digit is 0 or 1.
func (b BitString) Validate() error {
	for i, v := range b {
		if v != 0 && v != 1 {
			return InvalidBitError{i, v}
		}
	}
	return nil
}

// Clone returns a copy that shares no storage with b.
func (b BitString) Clone() BitString {
	if b == nil {
		return nil
	}
	c := make(BitString, len(b))
	copy(c, b)
	return c
}

// Equals reports whether b and o hold the same bits.
func (b BitString) Equals(o BitString) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Flip inverts the bit at 0-indexed position i in place.
func (b BitString) Flip(i int) error {
	if i < 0 || i >= len(b) {
		return OutOfRangeError{i, len(b)}
	}
	b[i] ^= 1
	return nil
}

// Flipped returns a copy of b with the bit at 0-indexed position i
// inverted.
func (b BitString) Flipped(i int) (BitString, error) {
	c := b.Clone()
	if err := c.Flip(i); err != nil {
		return nil, err
	}
	return c, nil
}

// Zero returns an all-zero sequence of length n.
func Zero(n int) BitString {
	return make(BitString, n)
}

// Ones returns an all-one sequence of length n.
func Ones(n int) BitString {
	b := make(BitString, n)
	for i := range b {
		b[i] = 1
	}
	return b
}

// AllZero reports whether every bit is 0. True for the empty sequence.
func (b BitString) AllZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// AllOnes reports whether every bit is 1. True for the empty sequence.
func (b BitString) AllOnes() bool {
	for _, v := range b {
		if v != 1 {
			return false
		}
	}
	return true
}

// Concat returns the concatenation of the given sequences as a new
// BitString.
func Concat(parts ...BitString) BitString {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(BitString, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
