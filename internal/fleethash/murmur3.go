package fleethash

// Murmur3 is an alternate Func, kept for operators who want to swap the
// identifier hash without recompiling against a different module: unlike
// Stable it has no external dependency, trading a small amount of
// avalanche quality for that. flexctl exposes it behind --hash=murmur3.
type Murmur3 struct {
	seed uint64
}

var _ Func = Murmur3{}

// NewMurmur3 returns a Murmur3 hasher seeded with seed. Two pickers built
// with different seeds will disagree on every score, so a fleet's seed is
// a deployment-wide constant, not a per-process one.
func NewMurmur3(seed uint64) Murmur3 {
	return Murmur3{seed: seed}
}

const (
	murmur3C1 = uint64(0x87c37b91114253d5)
	murmur3C2 = uint64(0x4cf5ad432745937f)
)

// Hash64 hashes an opaque 64-bit id. The id is encoded as its own 8-byte
// little-endian body, so Murmur3 collapses to its single-block path.
func (h Murmur3) Hash64(id uint64) uint64 {
	buf := [8]byte{
		byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24),
		byte(id >> 32), byte(id >> 40), byte(id >> 48), byte(id >> 56),
	}
	return h.HashBytes(buf[:])
}

// HashBytes runs the MurmurHash3 x64 finalizer-mixed body over key.
func (h Murmur3) HashBytes(key []byte) uint64 {
	length := len(key)
	hash := h.seed

	nblocks := length / 8
	for i := 0; i < nblocks; i++ {
		k := uint64(key[i*8]) | uint64(key[i*8+1])<<8 |
			uint64(key[i*8+2])<<16 | uint64(key[i*8+3])<<24 |
			uint64(key[i*8+4])<<32 | uint64(key[i*8+5])<<40 |
			uint64(key[i*8+6])<<48 | uint64(key[i*8+7])<<56

		k *= murmur3C1
		k = rotl(k, 31)
		k *= murmur3C2

		hash ^= k
		hash = rotl(hash, 27)
		hash = hash*5 + 0x52dce729
	}

	tail := key[nblocks*8:]
	k2 := uint64(0)
	switch length & 7 {
	case 7:
		k2 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k2 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k2 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k2 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k2 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k2 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k2 ^= uint64(tail[0])
		k2 *= murmur3C1
		k2 = rotl(k2, 31)
		k2 *= murmur3C2
		hash ^= k2
	}

	hash ^= uint64(length)
	hash ^= hash >> 33
	hash *= 0xff51afd7ed558ccd
	hash ^= hash >> 33
	hash *= 0xc4ceb9fe1a85ec53
	hash ^= hash >> 33

	return hash
}
