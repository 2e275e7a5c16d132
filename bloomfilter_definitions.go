package bloomfilter

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a Bloom filter over strings sized from a target false-positive
// probability and an expected element count. It is not safe for concurrent
// mutation.
type Filter struct {
	expectedElements         uint32
	falsePositiveProbability float64

	bitArraySize uint64 // m
	hashRounds   uint32 // k

	bits  *bitset.BitSet
	count uint64
}

// MaxBitArraySize bounds the number of bits a single filter may allocate (128 GiB).
const MaxBitArraySize uint64 = 1 << 40

var (
	// ErrConfig is wrapped by every error New returns.
	ErrConfig = errors.New("bloom: invalid configuration")

	// ErrInput is wrapped by every error Add and Contains return.
	ErrInput = errors.New("bloom: invalid input")

	ErrInvalidElementCount = fmt.Errorf("%w: expected elements must be positive", ErrConfig)
	ErrInvalidProbability  = fmt.Errorf("%w: false positive probability must be in (0,1)", ErrConfig)

	// ErrDegenerateHashCount is returned when the derived number of hash
	// rounds is zero, which happens once m < n (roughly p > 0.5).
	ErrDegenerateHashCount = fmt.Errorf("%w: derived hash rounds below 1", ErrConfig)

	ErrSizeOverflow = fmt.Errorf("%w: bit array size overflows supported range", ErrConfig)

	ErrBlankInput = fmt.Errorf("%w: item is empty or whitespace", ErrInput)
)
