// Package bloomfilter implements a Bloom filter over strings.
//
// The filter is sized once from a target false-positive probability p and an
// expected element count n:
//
//	m = ceil(-n * log2(p) / (log2(2) * log2(2)))
//	k = floor((m / n) * log2(2))
//
// Each item maps to k bit positions: one from xxhash, one from 32-bit
// murmur3, and k-2 more drawn from a splitmix64 sequence seeded with the
// murmur3 hash.
package bloomfilter

import (
	"fmt"
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// New creates a filter for expectedElements items at falsePositiveProbability.
// Configurations that derive fewer than one hash round are rejected with
// ErrDegenerateHashCount rather than clamped.
func New(falsePositiveProbability float64, expectedElements uint32) (*Filter, error) {
	if expectedElements == 0 {
		return nil, ErrInvalidElementCount
	}
	p := falsePositiveProbability
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return nil, fmt.Errorf("%w: p=%v", ErrInvalidProbability, p)
	}

	m := BitArraySize(p, expectedElements)
	if m > MaxBitArraySize || uint64(uint(m)) != m {
		return nil, fmt.Errorf("%w: m=%d", ErrSizeOverflow, m)
	}
	k := HashRounds(m, expectedElements)
	if k < 1 {
		return nil, fmt.Errorf("%w: p=%v n=%d m=%d", ErrDegenerateHashCount, p, expectedElements, m)
	}

	filter := &Filter{
		expectedElements:         expectedElements,
		falsePositiveProbability: p,
		bitArraySize:             m,
		hashRounds:               k,
		bits:                     bitset.New(uint(m)),
	}
	return filter, nil
}

// Add inserts item. Adding the same item again leaves the bits unchanged.
func (filter *Filter) Add(item string) error {
	if isBlank(item) {
		return ErrBlankInput
	}
	for _, i := range filter.hashIndexes(item) {
		filter.bits.Set(uint(i))
	}
	filter.count++
	return nil
}

// Contains reports whether item is possibly in the set. A false answer is
// definite; a true answer is wrong with roughly the configured probability
// once the filter holds its expected number of items.
func (filter *Filter) Contains(item string) (bool, error) {
	if isBlank(item) {
		return false, ErrBlankInput
	}
	for _, i := range filter.hashIndexes(item) {
		if !filter.bits.Test(uint(i)) {
			return false, nil
		}
	}
	return true, nil
}

func (filter *Filter) hashIndexes(item string) []uint64 {
	out := make([]uint64, filter.hashRounds)
	indexes(out, []byte(item), filter.bitArraySize)
	return out
}

func isBlank(item string) bool {
	return strings.TrimSpace(item) == ""
}

// BitArraySize returns m, the number of bits in the filter.
func (filter *Filter) BitArraySize() uint64 {
	return filter.bitArraySize
}

// HashRounds returns k, the number of bits set per item.
func (filter *Filter) HashRounds() uint32 {
	return filter.hashRounds
}

func (filter *Filter) ExpectedElements() uint32 {
	return filter.expectedElements
}

func (filter *Filter) FalsePositiveProbability() float64 {
	return filter.falsePositiveProbability
}

// Count returns the number of successful Add calls, duplicates included.
func (filter *Filter) Count() uint64 {
	return filter.count
}

// BitsSet returns the number of set bits.
func (filter *Filter) BitsSet() uint64 {
	return uint64(filter.bits.Count())
}

// SizeBytes returns the memory held by the bit array.
func (filter *Filter) SizeBytes() int {
	return int((filter.bitArraySize + 63) / 64 * 8)
}

// EstimatedFalsePositiveRate returns the expected false-positive rate given
// the number of items added so far. Duplicate adds inflate the estimate.
func (filter *Filter) EstimatedFalsePositiveRate() float64 {
	return FalsePositiveRate(filter.bitArraySize, filter.hashRounds, filter.count)
}
