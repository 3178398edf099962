package hamming

// Bit positions follow the textbook convention: the codeword is
// 1-indexed and parity bits sit at the power-of-two positions. This
// file is the only place that translates between 1-indexed positions
// and 0-indexed storage; everything else works in 1-indexed terms.

// isParityPosition reports whether the 1-indexed position pos is
// reserved for a parity bit.
func isParityPosition(pos int) bool {
	return pos > 0 && pos&(pos-1) == 0
}

// parityCount returns the number of parity bits for m data bits: the
// smallest r with 2^r >= m+r+1.
func parityCount(m int) int {
	r := 0
	for 1<<r < m+r+1 {
		r++
	}
	return r
}

// parityCountForCode returns the number of parity checks covering an
// n-bit codeword: the smallest r with 2^r >= n+1, so that every
// position 1..n is covered by some check.
func parityCountForCode(n int) int {
	r := 0
	for 1<<r < n+1 {
		r++
	}
	return r
}

// bitAt reads the bit at 1-indexed position pos.
func bitAt(code []byte, pos int) byte {
	return code[pos-1]
}

// setBit writes the bit at 1-indexed position pos.
func setBit(code []byte, pos int, v byte) {
	code[pos-1] = v
}
