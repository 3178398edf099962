package hamming

import (
	"fmt"

	"github.com/yangl1996/error-control-codes/bitstring"
)

// InvalidBlockError is returned for a block layout the codec cannot
// work with.
type InvalidBlockError struct {
	Reason string
}

func (e InvalidBlockError) Error() string {
	return "invalid block layout: " + e.Reason
}

// BlockResult is the outcome of DecodeBlocks. Status aggregates the
// per-block statuses: Uncorrectable if any block is, else Corrected if
// any block is, else NoError. Data is the concatenated recovered data
// including any zero padding added by EncodeBlocks; the caller strips
// it using the original length.
type BlockResult struct {
	Status Status
	Blocks []Result
	Data   bitstring.BitString
}

// EncodeBlocks splits data into blocks of blockSize bits, zero-padding
// the last block on the right, and Hamming encodes each block
// independently. A single flipped bit per block stays correctable no
// matter how long the data is.
func EncodeBlocks(data bitstring.BitString, blockSize int) (bitstring.BitString, error) {
	if blockSize <= 0 {
		return nil, InvalidBlockError{fmt.Sprintf("block size %d", blockSize)}
	}
	if len(data) == 0 {
		return nil, EmptyDataError{}
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	var out bitstring.BitString
	for i := 0; i < len(data); i += blockSize {
		blk := make(bitstring.BitString, blockSize)
		copy(blk, data[i:])
		code, err := Encode(blk)
		if err != nil {
			return nil, err
		}
		out = append(out, code...)
	}
	return out, nil
}

// DecodeBlocks decodes a word produced by EncodeBlocks with the same
// blockSize, decoding each fixed-width codeword independently.
func DecodeBlocks(received bitstring.BitString, blockSize int) (BlockResult, error) {
	if blockSize <= 0 {
		return BlockResult{}, InvalidBlockError{fmt.Sprintf("block size %d", blockSize)}
	}
	if len(received) == 0 {
		return BlockResult{}, EmptyDataError{}
	}
	codeLen := blockSize + parityCount(blockSize)
	if len(received)%codeLen != 0 {
		return BlockResult{}, InvalidBlockError{fmt.Sprintf("length %d does not hold whole %d-bit codewords", len(received), codeLen)}
	}
	res := BlockResult{}
	for i := 0; i < len(received); i += codeLen {
		blk, err := Decode(received[i : i+codeLen])
		if err != nil {
			return BlockResult{}, err
		}
		res.Blocks = append(res.Blocks, blk)
		res.Data = append(res.Data, blk.Data...)
		switch blk.Status {
		case Uncorrectable:
			res.Status = Uncorrectable
		case Corrected:
			if res.Status != Uncorrectable {
				res.Status = Corrected
			}
		}
	}
	return res, nil
}
