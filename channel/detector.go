package channel

import (
	"github.com/yangl1996/error-control-codes/bitstring"
	"github.com/yangl1996/error-control-codes/checksum"
	"github.com/yangl1996/error-control-codes/crc"
	"github.com/yangl1996/error-control-codes/hamming"
)

// Detector adapts one error-control scheme for an experiment: Encode
// produces the transmitted word and Check reports whether a received
// word is clean under the scheme.
type Detector interface {
	Encode(data bitstring.BitString) (bitstring.BitString, error)
	Check(received bitstring.BitString) (bool, error)
}

// ChecksumDetector runs the 1's-complement block checksum.
type ChecksumDetector struct {
	BlockWidth int
}

func (d ChecksumDetector) Encode(data bitstring.BitString) (bitstring.BitString, error) {
	cks, err := checksum.Encode(data, d.BlockWidth)
	if err != nil {
		return nil, err
	}
	return bitstring.Concat(data, cks), nil
}

func (d ChecksumDetector) Check(received bitstring.BitString) (bool, error) {
	status, err := checksum.Verify(received, d.BlockWidth)
	if err != nil {
		return false, err
	}
	return status == checksum.Valid, nil
}

// CRCDetector runs the polynomial CRC with a fixed generator.
type CRCDetector struct {
	Generator bitstring.BitString
}

func (d CRCDetector) Encode(data bitstring.BitString) (bitstring.BitString, error) {
	return crc.Encode(data, d.Generator)
}

func (d CRCDetector) Check(received bitstring.BitString) (bool, error) {
	status, err := crc.Verify(received, d.Generator)
	if err != nil {
		return false, err
	}
	return status == crc.Valid, nil
}

// HammingDetector runs the Hamming code. Check reports true only for a
// word whose syndrome is zero; a corrected word still counts as a
// detected corruption here, since the experiment asks whether the
// channel tampered with the word at all.
type HammingDetector struct{}

func (d HammingDetector) Encode(data bitstring.BitString) (bitstring.BitString, error) {
	return hamming.Encode(data)
}

func (d HammingDetector) Check(received bitstring.BitString) (bool, error) {
	res, err := hamming.Decode(received)
	if err != nil {
		return false, err
	}
	return res.Status == hamming.NoError, nil
}
