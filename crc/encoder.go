// Package crc implements a cyclic redundancy check over raw bit
// sequences: the remainder of mod-2 polynomial long division of the
// data (shifted up by the generator degree) by a generator polynomial.
// The generator is a BitString with the most significant coefficient
// first; its leading bit must be 1 and its degree at least 1.
package crc

import (
	"github.com/yangl1996/error-control-codes/bitstring"
)

// Common generator polynomials, most significant coefficient first.
var (
	// CRC3GSM is x^3+x+1, used by GSM.
	CRC3GSM = bitstring.MustParse("1011")
	// CRC4ITU is x^4+x+1, from ITU-T G.704.
	CRC4ITU = bitstring.MustParse("10011")
	// CRC8ATM is x^8+x^2+x+1, the ATM HEC polynomial.
	CRC8ATM = bitstring.MustParse("100000111")
)

// InvalidGeneratorError is returned for a degenerate generator
// polynomial.
type InvalidGeneratorError struct {
	Reason string
}

func (e InvalidGeneratorError) Error() string {
	return "invalid generator polynomial: " + e.Reason
}

// EmptyDataError is returned when there are no data bits to encode.
type EmptyDataError struct{}

func (e EmptyDataError) Error() string {
	return "empty data"
}

func validateGenerator(generator bitstring.BitString) error {
	if len(generator) == 0 {
		return InvalidGeneratorError{"empty"}
	}
	if err := generator.Validate(); err != nil {
		return err
	}
	if generator[0] != 1 {
		return InvalidGeneratorError{"leading coefficient is 0"}
	}
	if len(generator) == 1 {
		return InvalidGeneratorError{"degree 0 produces no check bits"}
	}
	return nil
}

// divide reduces work in place by the generator, sweeping left to
// right and XORing the generator wherever the leading bit is 1. It
// returns the final len(generator)-1 bits, aliasing work.
func divide(work, generator bitstring.BitString) bitstring.BitString {
	r := len(generator) - 1
	for i := 0; i+r < len(work); i++ {
		if work[i] == 0 {
			continue
		}
		for j, g := range generator {
			work[i+j] ^= g
		}
	}
	return work[len(work)-r:]
}

// Checksum computes the CRC value of data: the remainder of dividing
// data followed by degree-many zero bits by the generator.
func Checksum(data, generator bitstring.BitString) (bitstring.BitString, error) {
	if err := validateGenerator(generator); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, EmptyDataError{}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	r := len(generator) - 1
	work := make(bitstring.BitString, len(data)+r)
	copy(work, data)
	return divide(work, generator), nil
}

// Encode returns the codeword: the data bits followed by their CRC
// value.
func Encode(data, generator bitstring.BitString) (bitstring.BitString, error) {
	cks, err := Checksum(data, generator)
	if err != nil {
		return nil, err
	}
	return bitstring.Concat(data, cks), nil
}
