package bloomfilter

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func primaryHash(item []byte) uint64 {
	return xxhash.Sum64(item)
}

// secondaryHash is independent of primaryHash; it also seeds the expansion.
func secondaryHash(item []byte) uint32 {
	return murmur3.Sum32(item)
}

// indexes fills out with len(out) bit positions in [0, m) for item.
// Slot 0 comes from the primary hash, slot 1 from the secondary hash, and
// the remaining slots from a splitmix64 sequence seeded with the secondary
// hash. Positions may repeat.
func indexes(out []uint64, item []byte, m uint64) {
	if len(out) == 0 {
		return
	}
	out[0] = primaryHash(item) % m
	if len(out) == 1 {
		return
	}
	h2 := secondaryHash(item)
	out[1] = uint64(h2) % m

	seed := uint64(h2)
	for i := 2; i < len(out); i++ {
		out[i] = splitmix64(&seed) % m
	}
}
