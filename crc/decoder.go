package crc

import (
	"github.com/yangl1996/error-control-codes/bitstring"
)

// Status is the outcome of verifying a received word.
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

// Verify divides the received word by the generator and accepts iff the
// remainder is all-zero. A received word shorter than the generator
// cannot be validated and is reported Corrupted rather than failing.
func Verify(received, generator bitstring.BitString) (Status, error) {
	if err := validateGenerator(generator); err != nil {
		return Corrupted, err
	}
	if err := received.Validate(); err != nil {
		return Corrupted, err
	}
	if len(received) < len(generator) {
		return Corrupted, nil
	}
	work := received.Clone()
	if divide(work, generator).AllZero() {
		return Valid, nil
	}
	return Corrupted, nil
}
