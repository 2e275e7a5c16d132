package bloomfilter

import "math"

// BitArraySize returns m = ceil(-n * log2(p) / (log2(2) * log2(2))).
//
// The caller is responsible for ensuring n > 0 and 0 < p < 1; New checks
// both. Because the logarithms are base 2 this allocates about -log2(p)
// bits per item, fewer than the -ln(p)/ln(2)^2 of an optimally sized
// filter, so the rate actually reached at n items is above p; see
// FalsePositiveRate.
func BitArraySize(p float64, n uint32) uint64 {
	ln2 := math.Log2(2)
	m := math.Ceil(-1 * float64(n) * math.Log2(p) / (ln2 * ln2))
	return uint64(m)
}

// HashRounds returns k = floor((m / n) * log2(2)). It is zero whenever m < n.
func HashRounds(m uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	k := math.Floor((float64(m) / float64(n)) * math.Log2(2))
	return uint32(k)
}

// FalsePositiveRate estimates the false-positive probability of an m-bit
// filter with k hash rounds holding n distinct items: (1 - e^(-k*n/m))^k.
func FalsePositiveRate(m uint64, k uint32, n uint64) float64 {
	if m == 0 || k == 0 || n == 0 {
		return 0
	}
	kn := float64(k) * float64(n)
	return math.Pow(1-math.Exp(-kn/float64(m)), float64(k))
}
