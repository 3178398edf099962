// Package channel simulates a memoryless binary symmetric channel and
// measures how well the codecs detect what it corrupts. It is a test
// and experiment harness; the codec packages never depend on it.
package channel

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"

	"github.com/dchest/siphash"

	"github.com/yangl1996/error-control-codes/bitstring"
)

// Channel flips bits with a seeded RNG so every run is reproducible.
type Channel struct {
	r *rand.Rand
}

// New creates a channel seeded with the given value.
func New(seed int64) *Channel {
	return &Channel{rand.New(rand.NewSource(seed))}
}

// InvalidRateError is returned for a bit error rate outside [0, 1].
type InvalidRateError struct {
	Rate float64
}

func (e InvalidRateError) Error() string {
	return fmt.Sprintf("invalid bit error rate %v", e.Rate)
}

// InvalidCountError is returned when the requested number of flips
// does not fit the word.
type InvalidCountError struct {
	Count int
	Len   int
}

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("cannot flip %d bits of a %d-bit word", e.Count, e.Len)
}

// Flip sends bits through the channel, flipping each independently
// with probability ber. It returns the noisy copy and the 0-indexed
// positions that were flipped; the input is never modified.
func (c *Channel) Flip(bits bitstring.BitString, ber float64) (bitstring.BitString, []int, error) {
	if ber < 0 || ber > 1 {
		return nil, nil, InvalidRateError{ber}
	}
	if err := bits.Validate(); err != nil {
		return nil, nil, err
	}
	out := bits.Clone()
	var flipped []int
	for i := range out {
		if c.r.Float64() < ber {
			out[i] ^= 1
			flipped = append(flipped, i)
		}
	}
	return out, flipped, nil
}

// FlipN flips exactly n distinct random positions, sampling without
// replacement. The returned positions are sorted.
func (c *Channel) FlipN(bits bitstring.BitString, n int) (bitstring.BitString, []int, error) {
	if n < 0 || n > len(bits) {
		return nil, nil, InvalidCountError{n, len(bits)}
	}
	if err := bits.Validate(); err != nil {
		return nil, nil, err
	}
	idx := make([]int, len(bits))
	for i := range idx {
		idx[i] = i
	}
	out := bits.Clone()
	flipped := make([]int, 0, n)
	for i := 0; i < n; i++ {
		j := c.r.Intn(len(idx)-i) + i
		idx[i], idx[j] = idx[j], idx[i]
		out[idx[i]] ^= 1
		flipped = append(flipped, idx[i])
	}
	sort.Ints(flipped)
	return out, flipped, nil
}

const (
	seedKey0 = 567
	seedKey1 = 890
)

// TrialSeed derives the RNG seed for one trial of an experiment with a
// keyed hash, so trial t is reproducible without replaying trials
// 0..t-1.
func TrialSeed(seed uint64, trial int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(trial))
	return int64(siphash.Hash(seedKey0, seedKey1, buf[:]))
}
